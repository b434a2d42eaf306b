package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	txDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	entryID := "5f0c3c8e-8f5e-4a61-9d43-2b7f0b6f4a10"

	token := EncodeToken(txDate, entryID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, txDate, decodedDate)
	assert.Equal(t, entryID, decodedID)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeToken(EncodeToken(time.Now(), "")[:4])
	assert.Error(t, err)

	_, _, err = DecodeToken("bm8tc2VwYXJhdG9y") // "no-separator"
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")
}

func TestAfter(t *testing.T) {
	d1 := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	d0 := d1.AddDate(0, 0, -1)

	assert.True(t, After(d0, "z", d1, "a"), "older date is on a later page")
	assert.True(t, After(d1, "a", d1, "b"), "same date, smaller id is on a later page")
	assert.False(t, After(d1, "b", d1, "b"), "the cursor itself is excluded")
	assert.False(t, After(d1, "c", d1, "b"))
}
