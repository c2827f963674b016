package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	txnDate := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "7f9c35a1-4f2e-4c68-9a3d-0b2f9a1c3d4e"

	token := EncodeToken(txnDate, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, txnDate, decodedDate, "Transaction date should match after decode")
	assert.Equal(t, id, decodedID, "Row ID should match after decode")

	// IDs containing the separator keep everything after the first one intact
	weirdID := "abc|def"
	weirdToken := EncodeToken(txnDate, weirdID)
	_, decodedWeirdID, err := DecodeToken(weirdToken)
	assert.NoError(t, err)
	assert.Equal(t, weirdID, decodedWeirdID)
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // encoded date without separator
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Invalid date portion
	badDate := base64.StdEncoding.EncodeToString([]byte("notadate|some-id"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "date parse", "Error should mention date parsing issue")
}
