package pagination_test

import (
	"testing"
	"time"

	"github.com/driveyield/backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 1, 15, 10, 30, 0, 123456789, time.UTC)
	entryID := "e7a3c9e2-0c1f-4f6e-8a2f-1f2d3c4b5a69"

	token := pagination.EncodeEntryToken(createdAt, entryID)
	require.NotEmpty(t, token)

	gotTime, gotID, err := pagination.DecodeEntryToken(token)
	require.NoError(t, err)
	assert.True(t, gotTime.Equal(createdAt))
	assert.Equal(t, entryID, gotID)
}

func TestDecodeEntryToken_Invalid(t *testing.T) {
	t.Run("not base64", func(t *testing.T) {
		_, _, err := pagination.DecodeEntryToken("not-a-token!!!")
		assert.Error(t, err)
	})

	t.Run("wrong field count", func(t *testing.T) {
		token := pagination.EncodeMultiFieldToken("only-one-field")
		_, _, err := pagination.DecodeEntryToken(token)
		assert.Error(t, err)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		token := pagination.EncodeMultiFieldToken("yesterday", "some-id")
		_, _, err := pagination.DecodeEntryToken(token)
		assert.Error(t, err)
	})
}

func TestMultiFieldTokenRoundTrip(t *testing.T) {
	fields := []string{"a", "b", "c"}
	token := pagination.EncodeMultiFieldToken(fields...)

	got, err := pagination.DecodeMultiFieldToken(token)
	require.NoError(t, err)
	assert.Equal(t, fields, got)
}
