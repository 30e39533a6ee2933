package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
}

// CodeView is an issued verification code as the dispatch manager sees it.
type CodeView struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"code"`
	IssuedBy        uuid.UUID  `json:"issued_by"`
	BlockedSalesmen []string   `json:"blocked_salesmen"`
	Status          string     `json:"status"`
	Used            bool       `json:"used"`
	UsedBy          *uuid.UUID `json:"used_by,omitempty"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
	ReservedBy      *uuid.UUID `json:"reserved_by,omitempty"`
	ReservedUntil   *time.Time `json:"reserved_until,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ExpiresAt       time.Time  `json:"expires_at"`
}

type MaterialLineView struct {
	Line         string  `json:"line"`
	State        string  `json:"state"`
	OutboundDate *string `json:"outbound_date,omitempty"`
	InboundDate  *string `json:"inbound_date,omitempty"`
}

// CustomerView is a warehouse dashboard row.
type CustomerView struct {
	ID                    uuid.UUID          `json:"id"`
	Name                  string             `json:"name"`
	Phone                 string             `json:"phone"`
	Address               string             `json:"address"`
	Town                  string             `json:"town,omitempty"`
	Salesman              string             `json:"salesman"`
	ConstructionTeam      *string            `json:"construction_team,omitempty"`
	ConstructionTeamPhone *string            `json:"construction_team_phone,omitempty"`
	DispatchDate          *string            `json:"dispatch_date,omitempty"`
	Materials             []MaterialLineView `json:"materials"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

type TownCountView struct {
	// Town is empty for addresses outside the gazetteer.
	Town  string `json:"town"`
	Count int    `json:"count"`
}

type PoolSummaryView struct {
	Total           int             `json:"total"`
	Towns           []TownCountView `json:"towns"`
	BlockedSalesmen []string        `json:"blocked_salesmen"`
}
