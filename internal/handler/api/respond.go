package api

import (
	"net/http"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/domain/dispatch"
	"solar-dispatch/internal/domain/material"
	"solar-dispatch/internal/handler/httperr"
	"solar-dispatch/internal/handler/middleware"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/notify"
	"solar-dispatch/internal/usecase/commands"
	"solar-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.New("authenticated user missing from context")

type notifiable interface {
	SetNotifications(msgs []notify.Message)
}

// respond writes body together with the toasts recorded for this request.
func respond(c *gin.Context, status int, body notifiable) {
	body.SetNotifications(middleware.Notifications(c))
	c.JSON(status, body)
}

func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortWithUsecaseError(c *gin.Context, err error) {
	status, msg := classify(err)
	httperr.AbortWithError(c, status, err, msg, nil)
}

// classify maps usecase errors to HTTP. Specific sentinels are checked before
// the generic categories they are marked with.
func classify(err error) (int, string) {
	switch {
	case errs.Is(err, commands.ErrCodeExpired):
		return http.StatusGone, "Verification code expired"
	case errs.Is(err, commands.ErrCodeAlreadyUsed):
		return http.StatusConflict, "Verification code already used"
	case errs.Is(err, commands.ErrCodeReserved):
		return http.StatusConflict, "Verification code is held by another draw"
	case errs.Is(err, commands.ErrCodeNotFound):
		return http.StatusNotFound, "Verification code not found"
	case errs.Is(err, commands.ErrAlreadyAssigned):
		return http.StatusConflict, "Customer already assigned"
	case errs.Is(err, customer.ErrCustomerNotFound):
		return http.StatusNotFound, "Customer not found"
	case errs.Is(err, commands.ErrInvalidCodeFormat):
		return http.StatusBadRequest, "Verification code must be 4 digits"
	case errs.Is(err, commands.ErrTeamNameRequired):
		return http.StatusBadRequest, "Construction team name is required"
	case errs.Is(err, dispatch.ErrUnknownTown):
		return http.StatusBadRequest, "Unknown town"
	case errs.Is(err, material.ErrInvalidTransition):
		return http.StatusBadRequest, "Invalid material transition"
	case errs.Is(err, material.ErrUnknownLine), errs.Is(err, material.ErrUnknownAction):
		return http.StatusBadRequest, "Unknown material line or action"
	case errs.Is(err, queries.ErrInvalidCursor):
		return http.StatusBadRequest, "Invalid cursor"
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, "Conflict"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
