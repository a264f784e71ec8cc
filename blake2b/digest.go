package blake2b

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Digest512 is a self-describing content-addressable digest string of the
// form "blake2b:<hex>", analogous to the opencontainers/go-digest Digest
// string type and grounded on the same shape as the registry/distribution
// digest package this repo's ambient stack borrows from.
type Digest512 string

// algorithmName is the fixed algorithm prefix for every Digest512; BLAKE2s
// and any other variant are out of scope for this package.
const algorithmName = "blake2b"

// ErrDigestInvalidFormat is returned by ParseDigest512 when the string is
// not of the form "blake2b:<hex>" with a hex payload of even length.
var ErrDigestInvalidFormat = fmt.Errorf("blake2b: invalid digest format")

// NewDigest512 formats the bytes already produced by a finalized Digest
// (via Sum) as a Digest512 string.
func NewDigest512(sum []byte) Digest512 {
	return Digest512(fmt.Sprintf("%s:%x", algorithmName, sum))
}

// ParseDigest512 validates and returns s as a Digest512. An error is
// returned if the algorithm prefix is missing or the hex payload is
// malformed.
func ParseDigest512(s string) (Digest512, error) {
	i := strings.Index(s, ":")
	if i < 0 || s[:i] != algorithmName {
		return "", ErrDigestInvalidFormat
	}
	if _, err := hex.DecodeString(s[i+1:]); err != nil {
		return "", ErrDigestInvalidFormat
	}
	return Digest512(s), nil
}

// Algorithm returns the algorithm portion of the digest ("blake2b"). It
// panics if d is not in the "alg:hex" format; use ParseDigest512 on
// untrusted input first.
func (d Digest512) Algorithm() string {
	return string(d[:d.sepIndex()])
}

// Hex returns the hex-encoded digest payload.
func (d Digest512) Hex() string {
	return string(d[d.sepIndex()+1:])
}

// Validate reports whether d is a well-formed Digest512.
func (d Digest512) Validate() error {
	_, err := ParseDigest512(string(d))
	return err
}

func (d Digest512) String() string {
	return string(d)
}

func (d Digest512) sepIndex() int {
	i := strings.Index(string(d), ":")
	if i < 0 {
		panic("blake2b: invalid digest: " + string(d))
	}
	return i
}

// FromBytes512 hashes data unkeyed with the given output length and
// returns the result as a Digest512.
func FromBytes512(outlen int, data []byte) (Digest512, error) {
	sum, err := Sum512(nil, data, outlen)
	if err != nil {
		return "", err
	}
	return NewDigest512(sum), nil
}

// FromReader512 hashes everything read from r, unkeyed, with the given
// output length, and returns the result as a Digest512. It mirrors the
// io.TeeReader-free streaming shape of Digest.Write: data is absorbed in
// whatever chunks the reader yields.
func FromReader512(outlen int, r io.Reader) (Digest512, error) {
	d, err := NewDigest(nil, outlen)
	if err != nil {
		return "", err
	}

	buf := make([]byte, BlockSize*8)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			d.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return NewDigest512(d.Sum(nil)), nil
}
