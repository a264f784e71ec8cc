package blake2b

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSelfTestMatchesReferenceDigest(t *testing.T) {
	got, err := RunSelfTest()
	require.NoError(t, err)
	assert.Equal(t, SelfTestDigest, got)
}

func TestSelfTestSequenceIsDeterministic(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)

	selfTestSequence(a, 42)
	selfTestSequence(b, 42)

	assert.Equal(t, a, b)
}

func TestSelfTestSequenceVariesBySeed(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)

	selfTestSequence(a, 20)
	selfTestSequence(b, 64)

	assert.NotEqual(t, a, b)
}
