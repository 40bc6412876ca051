package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.Len(t, strings.Split(encoded, "."), 2)

	assert.NoError(t, VerifyPassword("correct horse battery staple", encoded))
	assert.Error(t, VerifyPassword("wrong password", encoded))
}

func TestHashPassword_BlankRefused(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same input")
	require.NoError(t, err)
	second, err := HashPassword("same input")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedEncoding(t *testing.T) {
	assert.Error(t, VerifyPassword("anything", "not-a-valid-hash"))
	assert.Error(t, VerifyPassword("anything", "only.twoparts.three"))
	assert.Error(t, VerifyPassword("anything", "!!!.###"))
}
