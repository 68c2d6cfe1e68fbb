package capability

import (
	"errors"
	"strings"
)

// Scheme selects the wire format of the plain capability.
type Scheme int

const (
	// SchemeLegacy omits the capability type byte.
	SchemeLegacy Scheme = iota
	// SchemeTagged prefixes CapabilityType.
	SchemeTagged
)

// Type bytes prefixed to typed capability inputs. They continue the
// numbering of the merkletree type tags.
const (
	CapabilityType       byte = 3
	WriterCapabilityType byte = 4
)

// ErrUnknownScheme is returned by ParseScheme for unrecognized names.
var ErrUnknownScheme = errors.New("[capability] unknown capability scheme")

func (s Scheme) String() string {
	switch s {
	case SchemeLegacy:
		return "legacy"
	case SchemeTagged:
		return "tagged"
	default:
		return "unknown"
	}
}

// ParseScheme parses the configuration name of a scheme.
// The empty string selects SchemeLegacy.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "", "legacy":
		return SchemeLegacy, nil
	case "tagged":
		return SchemeTagged, nil
	default:
		return 0, ErrUnknownScheme
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	if s != SchemeLegacy && s != SchemeTagged {
		return nil, ErrUnknownScheme
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
