package pagination

import (
	"encoding/base64"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	changedAt := time.Date(2024, 3, 1, 14, 30, 45, 123456789, time.UTC)

	token := EncodeCursor(changedAt, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, changedAt.Equal(decodedAt), "Timestamp should match after decode")
	assert.Equal(t, int64(42), decodedID)

	// Zero values survive the round trip as well.
	zeroAt, zeroID, err := DecodeCursor(EncodeCursor(time.Time{}, 0))
	require.NoError(t, err)
	assert.True(t, zeroAt.IsZero())
	assert.Zero(t, zeroID)
}

func TestEncodeCursorNormalizesToUTC(t *testing.T) {
	madrid := time.FixedZone("CET", 3600)
	local := time.Date(2024, 3, 1, 1, 0, 0, 0, madrid)

	decodedAt, _, err := DecodeCursor(EncodeCursor(local, 7))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
	assert.Equal(t, time.UTC, decodedAt.Location())
}

func TestCursorIsQuerySafe(t *testing.T) {
	for id := int64(0); id < 64; id++ {
		token := EncodeCursor(time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC), id*7919)
		assert.Equal(t, token, url.QueryEscape(token), "token %q must not need escaping", token)
	}
}

func TestDecodeCursorErrors(t *testing.T) {
	testCases := []struct {
		name    string
		token   string
		message string
	}{
		{name: "not base64", token: "this is not base64!", message: "base64 decode"},
		{name: "missing separator", token: base64.RawURLEncoding.EncodeToString([]byte("2024-03-01T00:00:00Z")), message: "split"},
		{name: "bad time", token: base64.RawURLEncoding.EncodeToString([]byte("notatime|12")), message: "time parse"},
		{name: "bad id", token: base64.RawURLEncoding.EncodeToString([]byte("2024-03-01T00:00:00Z|twelve")), message: "id parse"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeCursor(tc.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestEncodeMultiFieldToken(t *testing.T) {
	fields := []string{"field1", "field2", "field3"}
	decodedFields, err := DecodeMultiFieldToken(EncodeMultiFieldToken(fields...))
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, fields, decodedFields, "Fields should match after decode")

	// When splitting an empty string with strings.Split, we get a slice with one empty string
	decodedEmpty, err := DecodeMultiFieldToken(EncodeMultiFieldToken())
	assert.NoError(t, err)
	assert.Equal(t, []string{""}, decodedEmpty)
}
