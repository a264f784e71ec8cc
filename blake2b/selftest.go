package blake2b

// This file implements the BLAKE2 reference "grand self-test": a
// deterministic pseudo-random message/key generator feeding a matrix of
// (outlen, inlen) combinations into a running 256-bit accumulator. It
// consumes only the four public operations (NewDigest, Write, Sum, Sum512)
// and is never called from the compression core or streaming driver
// themselves.

// SelfTestDigest is the expected final 32-byte accumulator digest of
// RunSelfTest, taken from the RFC 7693-style reference self-test vector.
var SelfTestDigest = [32]byte{
	0xc2, 0x3a, 0x78, 0x00, 0xd9, 0x81, 0x23, 0xbd,
	0x10, 0xf5, 0x06, 0xc6, 0x1e, 0x29, 0xda, 0x56,
	0x03, 0xd7, 0x63, 0xb8, 0xbb, 0xad, 0x2e, 0x73,
	0x7f, 0x5e, 0x76, 0x5a, 0x7b, 0xcc, 0xd4, 0x75,
}

// SelfTestOutputLengths and SelfTestInputLengths fix the matrix RunSelfTest
// walks, per the reference self-test.
var (
	SelfTestOutputLengths = [4]int{20, 32, 48, 64}
	SelfTestInputLengths  = [6]int{0, 3, 128, 129, 255, 1024}
)

// selfTestSequence fills buf with a deterministic pseudo-random byte
// sequence seeded by seed, using the Fibonacci-style generator from the
// BLAKE2 reference self-test: a running 32-bit sum, with each output byte
// taken from its top byte.
func selfTestSequence(buf []byte, seed uint32) {
	a := uint32(0xDEAD4BAD) * seed
	b := uint32(1)

	for i := range buf {
		t := a + b
		a = b
		b = t
		buf[i] = byte(t >> 24)
	}
}

// RunSelfTest reproduces the BLAKE2b reference self-test: for every
// (outlen, inlen) pair in SelfTestOutputLengths x SelfTestInputLengths, it
// hashes a deterministic message unkeyed and then keyed (key length =
// outlen), feeding each resulting digest into a running 256-bit BLAKE2b
// accumulator in the order produced. It returns the final accumulator
// digest, which must equal SelfTestDigest for a correct implementation.
func RunSelfTest() ([32]byte, error) {
	acc, err := NewDigest(nil, 32)
	if err != nil {
		return [32]byte{}, err
	}

	for _, outlen := range SelfTestOutputLengths {
		for _, inlen := range SelfTestInputLengths {
			in := make([]byte, inlen)
			selfTestSequence(in, uint32(inlen))

			unkeyed, err := Sum512(nil, in, outlen)
			if err != nil {
				return [32]byte{}, err
			}
			acc.Write(unkeyed)

			key := make([]byte, outlen)
			selfTestSequence(key, uint32(outlen))

			keyed, err := Sum512(key, in, outlen)
			if err != nil {
				return [32]byte{}, err
			}
			acc.Write(keyed)
		}
	}

	var out [32]byte
	copy(out[:], acc.Sum(nil))
	return out, nil
}
