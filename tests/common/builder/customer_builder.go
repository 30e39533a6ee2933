//go:build unit || e2e

package builder

import (
	"time"

	"solar-dispatch/internal/domain/customer"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Address   string
	Salesman  string
	Values    map[customer.Field]*string
	UpdatedAt time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:        uuid.New(),
		Name:      "张三",
		Phone:     "13800000000",
		Address:   "城关镇东街1号",
		Salesman:  "王五",
		Values:    map[customer.Field]*string{},
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Eligible returns a customer a draw can pick: square steel shipped and no team.
func Eligible() *CustomerBuilder {
	return NewCustomerBuilder().WithValue(customer.FieldSquareSteelOutbound, "2024-01-01")
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.Name = name
	return b
}

func (b *CustomerBuilder) WithAddress(address string) *CustomerBuilder {
	b.Address = address
	return b
}

func (b *CustomerBuilder) WithSalesman(salesman string) *CustomerBuilder {
	b.Salesman = salesman
	return b
}

func (b *CustomerBuilder) WithValue(f customer.Field, v string) *CustomerBuilder {
	b.Values[f] = &v
	return b
}

func (b *CustomerBuilder) AssignedTo(team string) *CustomerBuilder {
	return b.WithValue(customer.FieldConstructionTeam, team)
}

func (b *CustomerBuilder) Build() *customer.Customer {
	return customer.Reconstruct(customer.Params{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Address:   b.Address,
		Salesman:  b.Salesman,
		Values:    b.Values,
		CreatedAt: b.UpdatedAt,
		UpdatedAt: b.UpdatedAt,
	})
}
