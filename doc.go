// Package blake2 is the module root for a BLAKE2b secure hashing
// implementation. BLAKE2b is optimized for 64-bit platforms and produces
// digests of any size between 1 and 64 bytes, keyed or unkeyed.
//
// The hashing engine lives in the blake2b subpackage; this package exists
// only to hold module-level documentation and the cmd/ collaborators that
// consume blake2b's public contract.
package blake2
