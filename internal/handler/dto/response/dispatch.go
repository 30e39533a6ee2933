package response

import (
	"time"

	"solar-dispatch/internal/usecase/commands"
	"solar-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GeneratedCodeResponse struct {
	CodeID          uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	BlockedSalesmen []string  `json:"blocked_salesmen"`
	ExpiresAt       time.Time `json:"expires_at"`
	Notified
}

func FromGenerateResult(r *commands.GenerateResult) (*GeneratedCodeResponse, error) {
	res := &GeneratedCodeResponse{}
	if err := copier.CopyWithOption(res, r, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.BlockedSalesmen == nil {
		res.BlockedSalesmen = []string{}
	}
	return res, nil
}

type CodeListResponse struct {
	Codes      []*queries.CodeView `json:"codes"`
	NextCursor string              `json:"next_cursor,omitempty"`
	Notified
}

type ValidationResponse struct {
	Valid           bool       `json:"valid"`
	CodeID          *uuid.UUID `json:"code_id,omitempty"`
	BlockedSalesmen []string   `json:"blocked_salesmen,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	Notified
}

func FromValidationResult(r *commands.ValidationResult) (*ValidationResponse, error) {
	res := &ValidationResponse{}
	if err := copier.CopyWithOption(res, r, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return nil, err
	}
	res.CodeID = nil
	if r.Valid {
		id := r.CodeID
		res.CodeID = &id
	}
	return res, nil
}

type BlocklistResponse struct {
	Salesmen []string `json:"salesmen"`
	Notified
}

type PoolResponse struct {
	*queries.PoolSummaryView
	Notified
}

// DrawResponse reports Drawn=false with no winner when the pool was empty.
type DrawResponse struct {
	Drawn       bool                  `json:"drawn"`
	Winner      *queries.CustomerView `json:"winner,omitempty"`
	RevealTicks []uuid.UUID           `json:"reveal_ticks"`
	PoolSize    int                   `json:"pool_size"`
	CodeID      *uuid.UUID            `json:"code_id,omitempty"`
	Warning     string                `json:"warning,omitempty"`
	Notified
}

func FromDrawResult(r *commands.DrawResult) *DrawResponse {
	codeID := r.CodeID
	ticks := r.RevealTicks
	if ticks == nil {
		ticks = []uuid.UUID{}
	}
	return &DrawResponse{
		Drawn:       true,
		Winner:      queries.ToCustomerView(r.Winner),
		RevealTicks: ticks,
		PoolSize:    r.PoolSize,
		CodeID:      &codeID,
		Warning:     r.Warning,
	}
}

func EmptyDraw() *DrawResponse {
	return &DrawResponse{RevealTicks: []uuid.UUID{}}
}
