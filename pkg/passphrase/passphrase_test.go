package passphrase

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g, err := NewGenerator(3)
	require.NoError(t, err)

	p, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, strings.Split(p, Separator), 3)

	// Fresh entropy per call: two draws colliding would mean a broken source
	q, err := g.Generate()
	require.NoError(t, err)
	r, err := g.Generate()
	require.NoError(t, err)
	assert.False(t, p == q && q == r, "three identical passphrases in a row")

	for _, w := range strings.Split(p, Separator) {
		assert.Contains(t, wordlist, w)
	}
}

func TestNewGenerator_BadWordCount(t *testing.T) {
	_, err := NewGenerator(0)
	assert.Error(t, err)
	_, err = NewGenerator(-1)
	assert.Error(t, err)
}

func TestGenerator_EntropyFailure(t *testing.T) {
	orig := randInt
	t.Cleanup(func() { randInt = orig })
	randInt = func(int64) (int64, error) { return 0, errors.New("entropy exhausted") }

	g, err := NewGenerator(3)
	require.NoError(t, err)
	_, err = g.Generate()
	assert.Error(t, err)
}

func TestValidate_ExactMatch(t *testing.T) {
	assert.True(t, Validate("orbit-maple-seven", "orbit-maple-seven"))
	assert.False(t, Validate("orbit-maple-seven", "orbit-Maple-seven"))
	assert.False(t, Validate("orbit-maple-seven", "orbit-maple-seven "))
	assert.False(t, Validate("orbit-maple-seven", "orbit maple seven"))
	assert.False(t, Validate("", ""))
}
