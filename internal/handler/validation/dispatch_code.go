package validation

import (
	"sync"

	"solar-dispatch/internal/domain/verification"
	"solar-dispatch/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DispatchCodeTag accepts any input that sanitizes to a well-formed code.
const DispatchCodeTag = "dispatchcode"

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the custom binding tags on gin's validator. Safe to call
// more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errs.New("gin binding engine is not go-playground/validator")
			return
		}
		registerErr = v.RegisterValidation(DispatchCodeTag, dispatchCode)
	})
	return registerErr
}

func dispatchCode(fl validator.FieldLevel) bool {
	return verification.ValidateFormat(verification.Sanitize(fl.Field().String())) == nil
}
