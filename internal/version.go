// Package internal holds values shared by the executables that are not
// part of the public API.
package internal

// Version is the current release of corecrypto.
const Version = "0.3.0"
