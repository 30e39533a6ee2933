package request

import (
	"solar-dispatch/internal/usecase/commands"
	"solar-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListCustomersQuery struct {
	Search string `form:"q" binding:"omitempty,max=100"`
	Town   string `form:"town" binding:"omitempty,max=32"`
	Line   string `form:"line" binding:"required_with=State"`
	State  string `form:"state" binding:"omitempty,oneof=none outbound inbound returned"`
}

func (q ListCustomersQuery) ToFilter() queries.WarehouseFilter {
	return queries.WarehouseFilter{
		Search: q.Search,
		Town:   q.Town,
		Line:   q.Line,
		State:  q.State,
	}
}

type MaterialTransitionRequest struct {
	Action string `json:"action" binding:"required,oneof=outbound inbound reset return toggle"`
}

func (r MaterialTransitionRequest) ToCommand(customerID uuid.UUID, line string, actorID uuid.UUID) commands.TransitionRequest {
	return commands.TransitionRequest{
		CustomerID: customerID,
		Line:       line,
		Action:     r.Action,
		ActorID:    actorID,
	}
}
