// Package digest computes a fast, non-cryptographic fingerprint for an
// encoded CBE document. It is an ambient/domain-stack concern: the core
// grammar engine in encoder/decoder never imports it.
package digest

import "github.com/cespare/xxhash/v2"

// Checksum returns the xxHash64 fingerprint of an encoded document.
//
// It is used by the envelope package to detect corruption of an at-rest
// document and by cmd/cbedump's --checksum flag.
func Checksum(doc []byte) uint64 {
	return xxhash.Sum64(doc)
}
