package customer

import (
	"strings"
	"time"

	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/ptr"

	"github.com/google/uuid"
)

// ReturnedSentinel in an outbound column marks a cancelled material order.
const ReturnedSentinel = "RETURNED"

var ErrCustomerNotFound = errs.Mark(errs.New("customer not found"), errs.ErrNotFound)

// Customer is an immutable snapshot of a customer record. Mutations go through
// Apply, which returns a new value, so cached snapshots can be swapped and
// restored without copying.
type Customer struct {
	id        uuid.UUID
	name      string
	phone     string
	address   string
	salesman  string
	values    map[Field]*string
	createdAt time.Time
	updatedAt time.Time
}

type Params struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Address   string
	Salesman  string
	Values    map[Field]*string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func Reconstruct(p Params) *Customer {
	values := make(map[Field]*string, len(p.Values))
	for f, v := range p.Values {
		if !f.IsValid() || v == nil {
			continue
		}
		s := *v
		values[f] = &s
	}
	return &Customer{
		id:        p.ID,
		name:      p.Name,
		phone:     p.Phone,
		address:   p.Address,
		salesman:  p.Salesman,
		values:    values,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) Salesman() string     { return c.salesman }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// Value returns the stored value of a patchable column, nil when unset.
func (c *Customer) Value(f Field) *string {
	v, ok := c.values[f]
	if !ok || v == nil {
		return nil
	}
	s := *v
	return &s
}

func (c *Customer) ConstructionTeam() *string      { return c.Value(FieldConstructionTeam) }
func (c *Customer) ConstructionTeamPhone() *string { return c.Value(FieldConstructionTeamPhone) }
func (c *Customer) DispatchDate() *string          { return c.Value(FieldDispatchDate) }

// IsAssigned reports whether a construction team has been written.
func (c *Customer) IsAssigned() bool {
	return !ptr.Blank(c.values[FieldConstructionTeam])
}

// HasShippedSquareSteel reports whether square steel left the warehouse and
// was not cancelled.
func (c *Customer) HasShippedSquareSteel() bool {
	v := c.values[FieldSquareSteelOutbound]
	return !ptr.Blank(v) && strings.TrimSpace(*v) != ReturnedSentinel
}

// Apply returns a copy of c with p written over it. updatedAt is left for the
// store to assign.
func (c *Customer) Apply(p Patch) *Customer {
	next := &Customer{
		id:        c.id,
		name:      c.name,
		phone:     c.phone,
		address:   c.address,
		salesman:  c.salesman,
		values:    make(map[Field]*string, len(c.values)+len(p)),
		createdAt: c.createdAt,
		updatedAt: c.updatedAt,
	}
	for f, v := range c.values {
		next.values[f] = v
	}
	for f, v := range p {
		if v == nil {
			delete(next.values, f)
			continue
		}
		s := *v
		next.values[f] = &s
	}
	return next
}

// NormalizeSalesmen drops blank entries and duplicates while keeping order.
// Entries are otherwise kept as given because matching is exact.
func NormalizeSalesmen(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
