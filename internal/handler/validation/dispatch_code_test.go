//go:build unit

package validation_test

import (
	"testing"

	"solar-dispatch/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeInput struct {
	Code string `binding:"required,dispatchcode"`
}

func TestDispatchCodeTag(t *testing.T) {
	require.NoError(t, validation.Register())
	require.NoError(t, validation.Register(), "second registration is a no-op")

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "four digits", input: "0427", valid: true},
		{name: "separators stripped", input: "04-27", valid: true},
		{name: "extra digits truncated", input: "042799", valid: true},
		{name: "too short", input: "042", valid: false},
		{name: "letters only", input: "abcd", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(codeInput{Code: tt.input})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
