package api

import (
	"net/http"

	reqdto "solar-dispatch/internal/handler/dto/request"
	resdto "solar-dispatch/internal/handler/dto/response"
	"solar-dispatch/internal/handler/httperr"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/usecase/commands"
	"solar-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DispatchHandler struct {
	codes     commands.VerificationCommands
	dispatch  commands.DispatchCommands
	blocklist commands.BlocklistCommands
	codeQ     queries.VerificationCodeQueries
	dispatchQ queries.DispatchQueries
}

func NewDispatchHandler(
	codes commands.VerificationCommands,
	dispatch commands.DispatchCommands,
	blocklist commands.BlocklistCommands,
	codeQ queries.VerificationCodeQueries,
	dispatchQ queries.DispatchQueries,
) *DispatchHandler {
	return &DispatchHandler{
		codes:     codes,
		dispatch:  dispatch,
		blocklist: blocklist,
		codeQ:     codeQ,
		dispatchQ: dispatchQ,
	}
}

// @Summary Issue verification code
// @Description Issue a single-use dispatch code. Omit blocked_salesmen to snapshot the saved block list.
// @Tags dispatch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateCodeRequest false "Blocked salesmen snapshot"
// @Success 201 {object} resdto.GeneratedCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/dispatch/codes [post]
func (h *DispatchHandler) GenerateCode(c *gin.Context) {
	issuerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.GenerateCodeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	result, err := h.codes.Generate(c.Request.Context(), issuerID, req.BlockedSalesmen)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromGenerateResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	respond(c, http.StatusCreated, res)
}

// @Summary List issued codes
// @Description Issued verification codes, newest first, with keyset pagination
// @Tags dispatch
// @Produce json
// @Security BearerAuth
// @Param mine query bool false "Only codes issued by the caller"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.CodeListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/dispatch/codes [get]
func (h *DispatchHandler) ListCodes(c *gin.Context) {
	callerID, ok := actorID(c)
	if !ok {
		return
	}
	var q reqdto.ListCodesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var issuedBy *uuid.UUID
	if q.Mine {
		issuedBy = &callerID
	}
	var cursor *queries.Cursor
	if q.After != "" {
		cursor = &queries.Cursor{After: q.After}
	}

	items, next, err := h.codeQ.ListIssued(c.Request.Context(), issuedBy, cursor, q.Limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if items == nil {
		items = []*queries.CodeView{}
	}
	res := &resdto.CodeListResponse{Codes: items}
	if next != nil {
		res.NextCursor = next.After
	}
	respond(c, http.StatusOK, res)
}

// @Summary Check verification code
// @Description Reports whether a code is usable without consuming or reserving it
// @Tags dispatch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCodeRequest true "Code to check"
// @Success 200 {object} resdto.ValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/dispatch/codes/validate [post]
func (h *DispatchHandler) ValidateCode(c *gin.Context) {
	var req reqdto.ValidateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Verification code must be 4 digits", nil)
		return
	}

	result, err := h.codes.ValidateOnly(c.Request.Context(), req.Code)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromValidationResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	respond(c, http.StatusOK, res)
}

// @Summary Current block list
// @Tags dispatch
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BlocklistResponse
// @Failure 401 {object} httperr.Response
// @Router /api/dispatch/blocked-salesmen [get]
func (h *DispatchHandler) GetBlockedSalesmen(c *gin.Context) {
	salesmen, err := h.dispatchQ.BlockedSalesmen(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond(c, http.StatusOK, &resdto.BlocklistResponse{Salesmen: salesmen})
}

// @Summary Replace block list
// @Description Overwrites the saved block list. Codes already issued keep their own snapshot.
// @Tags dispatch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplaceBlocklistRequest true "Salesmen to block"
// @Success 200 {object} resdto.BlocklistResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/dispatch/blocked-salesmen [put]
func (h *DispatchHandler) ReplaceBlockedSalesmen(c *gin.Context) {
	callerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.ReplaceBlocklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	stored, err := h.blocklist.Replace(c.Request.Context(), req.Salesmen, callerID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond(c, http.StatusOK, &resdto.BlocklistResponse{Salesmen: stored})
}

// @Summary Eligible pool summary
// @Description Counts customers a draw could pick under the saved block list, grouped by town
// @Tags dispatch
// @Produce json
// @Security BearerAuth
// @Param town query string false "Limit to one town"
// @Success 200 {object} resdto.PoolResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/dispatch/pool [get]
func (h *DispatchHandler) Pool(c *gin.Context) {
	var q reqdto.PoolQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	summary, err := h.dispatchQ.PoolSummary(c.Request.Context(), q.Town)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond(c, http.StatusOK, &resdto.PoolResponse{PoolSummaryView: summary})
}

// @Summary Draw a customer
// @Description Reserves the code, draws one eligible customer, assigns the team and burns the code.
// @Description An empty pool answers 200 with drawn=false and leaves the code usable.
// @Tags dispatch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DrawRequest true "Draw request"
// @Success 201 {object} resdto.DrawResponse
// @Success 200 {object} resdto.DrawResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/dispatch/draws [post]
func (h *DispatchHandler) Draw(c *gin.Context) {
	callerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.dispatch.Draw(c.Request.Context(), req.ToCommand(callerID))
	if err != nil {
		if errs.Is(err, commands.ErrEmptyPool) {
			respond(c, http.StatusOK, resdto.EmptyDraw())
			return
		}
		abortWithUsecaseError(c, err)
		return
	}

	respond(c, http.StatusCreated, resdto.FromDrawResult(result))
}
