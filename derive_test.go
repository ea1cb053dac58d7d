package main

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBase64(t *testing.T, s string) string {
	t.Helper()
	decoded, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	return string(decoded)
}

func TestDeriveGroupHash(t *testing.T) {
	tests := []struct {
		name    string
		group   string
		letters LetterCodeMap
		want    string
	}{
		{"two letters", "AB", LetterCodeMap{"A": 5, "B": 7}, "5|7"},
		{"repeated letters", "bear", LetterCodeMap{"b": 1, "e": 2, "a": 3, "r": 4}, "1|2|3|4"},
		{"underscore and large codes", "b_b", LetterCodeMap{"b": 100012, "_": 100013}, "100012|100013|100012"},
		{"single letter", "x", LetterCodeMap{"x": 0}, "0"},
		{"unused entries ignored", "ab", LetterCodeMap{"a": 1, "b": 2, "z": 26}, "1|2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := DeriveGroupHash(tt.group, tt.letters)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decodeBase64(t, hash))
		})
	}
}

func TestDeriveGroupHashUnknownLetter(t *testing.T) {
	_, err := DeriveGroupHash("bearx", LetterCodeMap{"b": 1, "e": 2, "a": 3, "r": 4})
	assert.ErrorIs(t, err, ErrUnknownLetter)
}

func TestDeriveGroupHashIsCaseSensitive(t *testing.T) {
	_, err := DeriveGroupHash("B", LetterCodeMap{"b": 1})
	assert.ErrorIs(t, err, ErrUnknownLetter)
}

func TestDeriveIdentityHash(t *testing.T) {
	ua := "Mozilla/5.0 (X11; Linux x86_64)"
	hash := DeriveIdentityHash(ua, "||bear||", "Linux x86_64")

	assert.Equal(t, ua+"||bear||"+"Linux x86_64", decodeBase64(t, hash))
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("uaidos")), DeriveIdentityHash("ua", "id", "os"))
}
