package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberFormat(t *testing.T) {
	gen := NewNumberGenerator()
	pattern := regexp.MustCompile(`^INV-\d{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, gen.Next("INV"))
	}
}

func TestNumberEntropy(t *testing.T) {
	gen := NewNumberGenerator()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[gen.Next("PAY")] = true
	}
	// 1000 draws from a 10^6 space should rarely repeat; a heavily
	// colliding generator would land far below this floor.
	assert.Greater(t, len(seen), 900)
}
