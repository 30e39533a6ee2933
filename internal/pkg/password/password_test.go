//go:build unit

package password_test

import (
	"strings"
	"testing"

	"solar-dispatch/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPasswordWithCost("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "correct horse"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong horse"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "correct horse"), password.ErrInvalidPassword)
}

func TestHashRejects(t *testing.T) {
	_, err := password.HashPasswordWithCost("", bcrypt.MinCost)
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	_, err = password.HashPasswordWithCost(strings.Repeat("x", 73), bcrypt.MinCost)
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}
