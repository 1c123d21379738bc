package passphrase

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// DefaultWordCount is the number of words in a recovery passphrase
	DefaultWordCount = 12

	// Separator joins the words of a passphrase
	Separator = "-"
)

var randInt = func(max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// Generator produces fresh recovery passphrases. Each call draws new entropy;
// a generated value is never handed out twice.
type Generator struct {
	wordCount int
}

// NewGenerator creates a generator with the given word count
func NewGenerator(wordCount int) (*Generator, error) {
	if wordCount <= 0 {
		return nil, errors.New("word count must be positive")
	}
	return &Generator{wordCount: wordCount}, nil
}

// Generate returns a fresh hyphen-joined passphrase, e.g. "orbit-maple-seven"
func (g *Generator) Generate() (string, error) {
	words := make([]string, g.wordCount)
	for i := range words {
		idx, err := randInt(int64(len(wordlist)))
		if err != nil {
			return "", fmt.Errorf("failed to draw passphrase entropy: %w", err)
		}
		words[i] = wordlist[idx]
	}
	return strings.Join(words, Separator), nil
}

// Validate compares the shown passphrase against the user's entry. The policy
// is exact string equality: case- and whitespace-sensitive, no normalization.
func Validate(shown, entered string) bool {
	return shown != "" && shown == entered
}
