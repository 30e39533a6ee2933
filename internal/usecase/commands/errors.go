package commands

import (
	"solar-dispatch/internal/domain/dispatch"
	"solar-dispatch/internal/domain/verification"
	"solar-dispatch/internal/pkg/errs"
)

var (
	ErrInvalidCodeFormat = verification.ErrInvalidCodeFormat
	ErrTeamNameRequired  = errs.Mark(errs.New("construction team name is required"), errs.ErrValidation)
	ErrWinnerRequired    = errs.Mark(errs.New("draw winner is required"), errs.ErrValidation)

	ErrCodeNotFound    = errs.Mark(errs.New("verification code not found"), errs.ErrNotFound)
	ErrCodeExpired     = errs.Mark(errs.New("verification code expired"), errs.ErrConflict)
	ErrCodeAlreadyUsed = errs.Mark(errs.New("verification code already used"), errs.ErrConflict)
	ErrCodeReserved    = errs.Mark(errs.New("verification code is held by another draw"), errs.ErrConflict)
	ErrCodeGeneration  = errs.New("verification code generation failed")

	ErrEmptyPool       = dispatch.ErrEmptyPool
	ErrAlreadyAssigned = errs.Mark(errs.New("customer already assigned to a construction team"), errs.ErrConflict)

	ErrPersistence = errs.Mark(errs.New("persisting change failed"), errs.ErrDatabaseOperationFailed)
)

// reasonError maps a failed resolution to the lifecycle error the caller sees.
func reasonError(r verification.Reason) error {
	switch r {
	case verification.ReasonExpired:
		return ErrCodeExpired
	case verification.ReasonAlreadyUsed:
		return ErrCodeAlreadyUsed
	default:
		return ErrCodeNotFound
	}
}
