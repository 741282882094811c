package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co.in"))
	assert.True(t, ValidateEmail("  padded@example.com  "))

	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("12345678"))
	assert.True(t, ValidatePassword("a much longer password"))

	assert.False(t, ValidatePassword("1234567"))
	assert.False(t, ValidatePassword(""))
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.True(t, ValidateRating(rating))
	}
	assert.False(t, ValidateRating(0))
	assert.False(t, ValidateRating(6))
	assert.False(t, ValidateRating(-1))
}
