package verification

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"solar-dispatch/internal/pkg/errs"
)

// CodeLength is the number of digits in a dispatch code.
const CodeLength = 4

var (
	ErrInvalidCodeFormat = errs.Mark(errs.New("code must be exactly 4 digits"), errs.ErrValidation)
	ErrIssuerRequired    = errs.Mark(errs.New("code issuer is required"), errs.ErrValidation)
)

const digits = "0123456789"

// Sanitize strips everything but ASCII digits and truncates to CodeLength.
func Sanitize(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == CodeLength {
			break
		}
	}
	return b.String()
}

func ValidateFormat(code string) error {
	if len(code) != CodeLength {
		return ErrInvalidCodeFormat
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return ErrInvalidCodeFormat
		}
	}
	return nil
}

// GenerateCode draws CodeLength uniform digits from r, or crypto/rand when r is nil.
func GenerateCode(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	b := make([]byte, CodeLength)
	upper := big.NewInt(int64(len(digits)))
	for i := range b {
		n, err := rand.Int(r, upper)
		if err != nil {
			return "", errs.Wrap(err, "read random digit")
		}
		b[i] = digits[n.Int64()]
	}
	return string(b), nil
}
