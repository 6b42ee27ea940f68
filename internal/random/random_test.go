package random

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	testCases := []struct {
		name     string
		alphabet string
		n        int
	}{
		{name: "lowercase", alphabet: Lowercase, n: 8},
		{name: "alphanumeric", alphabet: Alphanumeric, n: 32},
		{name: "empty", alphabet: Alphanumeric, n: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := String(Default(), tc.alphabet, tc.n)
			assert.Len(t, actual, tc.n)
			for _, r := range actual {
				assert.True(t, strings.ContainsRune(tc.alphabet, r), "unexpected rune %q", r)
			}
		})
	}
}

func TestSeeded(t *testing.T) {
	first := String(NewSeeded(42), Alphanumeric, 16)
	second := String(NewSeeded(42), Alphanumeric, 16)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, String(NewSeeded(43), Alphanumeric, 16))
}

func TestSeededConcurrent(t *testing.T) {
	src := NewSeeded(7)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, isLetter(Letter(src)))
			}
		}()
	}
	wg.Wait()
}

func isLetter(b byte) bool { return b >= 'a' && b <= 'z' }
