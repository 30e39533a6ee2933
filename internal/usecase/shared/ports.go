package shared

import (
	"solar-dispatch/internal/domain/customer"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

// CustomerCache is the in-memory copy of customer records the warehouse
// dashboard works against. Writes go through it optimistically and are rolled
// back with Restore when persisting fails.
type CustomerCache interface {
	Loaded() bool
	All() []*customer.Customer
	Get(id uuid.UUID) (*customer.Customer, bool)
	Put(c *customer.Customer)
	ReplaceAll(cs []*customer.Customer)
	// Restore puts previous back only while expected is still the cached
	// value, so a newer write is never clobbered by an older rollback.
	Restore(id uuid.UUID, expected, previous *customer.Customer) bool
}

// Metrics receives dispatch-core counters.
type Metrics interface {
	CodeIssued(outcome string)
	CodeValidated(outcome string)
	DrawCompleted(outcome string)
	MaterialTransition(line, action, outcome string)
	CodesCleanedUp(n int64)
}

type NopMetrics struct{}

func (NopMetrics) CodeIssued(string)                         {}
func (NopMetrics) CodeValidated(string)                      {}
func (NopMetrics) DrawCompleted(string)                      {}
func (NopMetrics) MaterialTransition(string, string, string) {}
func (NopMetrics) CodesCleanedUp(int64)                      {}
