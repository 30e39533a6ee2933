package request

import (
	"solar-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
)

// GenerateCodeRequest leaves BlockedSalesmen out to snapshot the saved block
// list; an explicit empty array blocks nobody.
type GenerateCodeRequest struct {
	BlockedSalesmen []string `json:"blocked_salesmen" binding:"omitempty,max=200,dive,max=64"`
}

type ValidateCodeRequest struct {
	Code string `json:"code" binding:"required,dispatchcode"`
}

type ReplaceBlocklistRequest struct {
	Salesmen []string `json:"salesmen" binding:"required,max=200,dive,max=64"`
}

type DrawRequest struct {
	Code      string `json:"code" binding:"required,dispatchcode"`
	TeamName  string `json:"team_name" binding:"required,max=100"`
	TeamPhone string `json:"team_phone" binding:"omitempty,max=32"`
	Town      string `json:"town" binding:"omitempty,max=32"`
}

func (r DrawRequest) ToCommand(actorID uuid.UUID) commands.DrawRequest {
	return commands.DrawRequest{
		Code:      r.Code,
		TeamName:  r.TeamName,
		TeamPhone: r.TeamPhone,
		Town:      r.Town,
		ActorID:   actorID,
	}
}

type ListCodesQuery struct {
	// Mine limits the list to codes the caller issued.
	Mine  bool   `form:"mine"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}

type PoolQuery struct {
	Town string `form:"town" binding:"omitempty,max=32"`
}
