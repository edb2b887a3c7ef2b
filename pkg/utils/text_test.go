package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveExcerpt(t *testing.T) {
	assert.Equal(t, "", DeriveExcerpt(""))
	assert.Equal(t, "short text", DeriveExcerpt("short text"))

	exact := strings.Repeat("x", 150)
	assert.Equal(t, exact, DeriveExcerpt(exact))

	long := strings.Repeat("x", 151)
	assert.Equal(t, strings.Repeat("x", 150)+"...", DeriveExcerpt(long))

	// rune boundaries, not bytes
	multibyte := strings.Repeat("é", 200)
	assert.Equal(t, strings.Repeat("é", 150)+"...", DeriveExcerpt(multibyte))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t"))
	assert.Equal(t, 1, CountWords("hello"))
	assert.Equal(t, 4, CountWords("one  two\nthree\tfour"))
	assert.Equal(t, 2, CountWords("  leading trailing  "))
}
