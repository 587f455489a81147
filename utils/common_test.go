package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2025-06-15"))
	assert.True(t, IsValidDate("2024-02-29"))

	assert.False(t, IsValidDate(""))
	assert.False(t, IsValidDate("15-06-2025"))
	assert.False(t, IsValidDate("2025-13-01"))
	assert.False(t, IsValidDate("2025-02-30"))
	assert.False(t, IsValidDate("someday"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("9876543210"))
	assert.True(t, IsValidPhone("+91 98765 43210"))
	assert.True(t, IsValidPhone("(022) 4567890"))

	assert.False(t, IsValidPhone(""))
	assert.False(t, IsValidPhone("12345"))
	assert.False(t, IsValidPhone("98765abc10"))
}
