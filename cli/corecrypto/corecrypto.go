// Executable corecrypto. It generates keys and configuration, and
// exposes the log hashing, capability and namespaced signing
// primitives for scripting and debugging.
package main

import (
	"github.com/corelog/corecrypto/cli"
	"github.com/corelog/corecrypto/cli/corecrypto/internal/cmd"
)

func main() {
	cli.ExecuteRoot(cmd.RootCmd)
}
