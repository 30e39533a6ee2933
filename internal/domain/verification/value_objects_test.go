//go:build unit

package verification_test

import (
	"bytes"
	"testing"

	"solar-dispatch/internal/domain/verification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1234", want: "1234"},
		{in: " 12-34 ", want: "1234"},
		{in: "123456", want: "1234"},
		{in: "a1b2", want: "12"},
		{in: "１２３４", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, verification.Sanitize(tt.in))
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, ok := range []string{"0000", "1234", "9999"} {
		assert.NoError(t, verification.ValidateFormat(ok), ok)
	}
	for _, bad := range []string{"", "123", "12345", "12a4", " 123"} {
		assert.ErrorIs(t, verification.ValidateFormat(bad), verification.ErrInvalidCodeFormat, bad)
	}
}

func TestGenerateCode(t *testing.T) {
	t.Run("always four digits", func(t *testing.T) {
		for range 200 {
			code, err := verification.GenerateCode(nil)
			require.NoError(t, err)
			require.NoError(t, verification.ValidateFormat(code))
		}
	})

	t.Run("short reader fails", func(t *testing.T) {
		_, err := verification.GenerateCode(bytes.NewReader(nil))
		require.Error(t, err)
	})
}
