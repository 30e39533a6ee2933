//go:build unit || e2e

package builder

import (
	"time"

	"solar-dispatch/internal/domain/verification"

	"github.com/google/uuid"
)

type CodeBuilder struct {
	p verification.Params
}

// NewCodeBuilder starts from an unused code issued an hour before now.
func NewCodeBuilder(now time.Time) *CodeBuilder {
	created := now.Add(-time.Hour)
	return &CodeBuilder{p: verification.Params{
		ID:              uuid.New(),
		Code:            "1234",
		IssuedBy:        uuid.New(),
		BlockedSalesmen: []string{},
		CreatedAt:       created,
		ExpiresAt:       created.Add(24 * time.Hour),
	}}
}

func (b *CodeBuilder) WithCode(code string) *CodeBuilder {
	b.p.Code = code
	return b
}

func (b *CodeBuilder) WithBlocked(salesmen ...string) *CodeBuilder {
	b.p.BlockedSalesmen = salesmen
	return b
}

func (b *CodeBuilder) CreatedAt(t time.Time) *CodeBuilder {
	b.p.CreatedAt = t
	b.p.ExpiresAt = t.Add(24 * time.Hour)
	return b
}

func (b *CodeBuilder) Expired(now time.Time) *CodeBuilder {
	return b.CreatedAt(now.Add(-25 * time.Hour))
}

func (b *CodeBuilder) UsedBy(id uuid.UUID, at time.Time) *CodeBuilder {
	b.p.Used = true
	b.p.UsedBy = &id
	b.p.UsedAt = &at
	return b
}

func (b *CodeBuilder) ReservedBy(id uuid.UUID, until time.Time) *CodeBuilder {
	b.p.ReservedBy = &id
	b.p.ReservedUntil = &until
	return b
}

func (b *CodeBuilder) Build() *verification.Code {
	return verification.Reconstruct(b.p)
}
