package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"national vietnamese mobile", "0901234567", "+84901234567"},
		{"international form", "+84 90 123 4567", "+84901234567"},
		{"surrounding spaces", "  0901234567 ", "+84901234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw, "VN")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone_Invalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "123"} {
		_, err := NormalizePhone(raw, "VN")
		assert.ErrorIs(t, err, ErrInvalidPhone, raw)
	}
	assert.False(t, IsValidPhone("12", "VN"))
}
