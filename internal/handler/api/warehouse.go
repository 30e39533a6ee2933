package api

import (
	"net/http"

	reqdto "solar-dispatch/internal/handler/dto/request"
	resdto "solar-dispatch/internal/handler/dto/response"
	"solar-dispatch/internal/handler/httperr"
	"solar-dispatch/internal/usecase/commands"
	"solar-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WarehouseHandler struct {
	materials commands.MaterialCommands
	q         queries.WarehouseQueries
}

func NewWarehouseHandler(materials commands.MaterialCommands, q queries.WarehouseQueries) *WarehouseHandler {
	return &WarehouseHandler{materials: materials, q: q}
}

// @Summary List customers
// @Description Warehouse dashboard rows, most recently updated first
// @Tags warehouse
// @Produce json
// @Security BearerAuth
// @Param q query string false "Substring of name, phone, address or salesman"
// @Param town query string false "Town"
// @Param line query string false "Material line, required with state"
// @Param state query string false "Material state on line"
// @Success 200 {object} resdto.CustomerListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/warehouse/customers [get]
func (h *WarehouseHandler) ListCustomers(c *gin.Context) {
	var q reqdto.ListCustomersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	items, err := h.q.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond(c, http.StatusOK, &resdto.CustomerListResponse{Customers: items, Total: len(items)})
}

// @Summary Get customer
// @Tags warehouse
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/warehouse/customers/{id} [get]
func (h *WarehouseHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond(c, http.StatusOK, &resdto.CustomerResponse{Customer: view})
}

// @Summary Material transition
// @Description Applies outbound, inbound, reset, return or toggle to one material line
// @Tags warehouse
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param line path string true "Material line"
// @Param request body reqdto.MaterialTransitionRequest true "Action"
// @Success 200 {object} resdto.MaterialTransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/warehouse/customers/{id}/materials/{line} [post]
func (h *WarehouseHandler) TransitionMaterial(c *gin.Context) {
	callerID, ok := actorID(c)
	if !ok {
		return
	}
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.MaterialTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.materials.Transition(c.Request.Context(), req.ToCommand(customerID, c.Param("line"), callerID))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromTransitionResult(result))
}
