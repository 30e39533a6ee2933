package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/domain/dispatch"
	"solar-dispatch/internal/domain/material"
	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/usecase/shared"
)

//go:generate mockgen -source=warehouse.go -destination=../../../tests/mock/queries/warehouse_mock.go -package=queriesmock

type WarehouseFilter struct {
	// Search matches name, phone, address or salesman by substring.
	Search string
	Town   string
	// Line and State together keep customers whose line is in that state.
	Line  string
	State string
}

type WarehouseQueries interface {
	List(ctx context.Context, filter WarehouseFilter) ([]*CustomerView, error)
	Get(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type warehouseQueriesImpl struct {
	uow   shared.UnitOfWork
	cache shared.CustomerCache
}

func NewWarehouseQueries(uow shared.UnitOfWork, cache shared.CustomerCache) WarehouseQueries {
	return &warehouseQueriesImpl{uow: uow, cache: cache}
}

func (q *warehouseQueriesImpl) List(ctx context.Context, filter WarehouseFilter) ([]*CustomerView, error) {
	all, err := q.customers(ctx)
	if err != nil {
		return nil, err
	}

	var line material.Line
	if filter.Line != "" {
		if line, err = material.ParseLine(filter.Line); err != nil {
			return nil, err
		}
	}
	var town dispatch.Town
	if filter.Town != "" {
		if town, err = dispatch.ParseTown(filter.Town); err != nil {
			return nil, err
		}
	}
	search := strings.TrimSpace(filter.Search)

	out := make([]*CustomerView, 0, len(all))
	for _, c := range all {
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		if town != "" {
			if derived, _ := dispatch.DeriveTown(c.Address()); derived != town {
				continue
			}
		}
		if line != "" && filter.State != "" && string(material.StateOf(c, line)) != filter.State {
			continue
		}
		out = append(out, ToCustomerView(c))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (q *warehouseQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	if c, ok := q.cache.Get(id); ok {
		return ToCustomerView(c), nil
	}

	var c *customer.Customer
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		c, err = tx.Customers().GetByID(ctx, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}
	q.cache.Put(c)
	return ToCustomerView(c), nil
}

// customers refreshes the cache from the database. When the database cannot
// be reached the last loaded snapshot is served instead.
func (q *warehouseQueriesImpl) customers(ctx context.Context) ([]*customer.Customer, error) {
	var all []*customer.Customer
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		all, err = tx.Customers().GetAll(ctx)
		return err
	})
	if err != nil {
		if q.cache.Loaded() {
			slog.WarnContext(ctx, "serving cached customers", "error", err.Error())
			return q.cache.All(), nil
		}
		return nil, err
	}
	q.cache.ReplaceAll(all)
	return all, nil
}

func matchesSearch(c *customer.Customer, s string) bool {
	for _, v := range []string{c.Name(), c.Phone(), c.Address(), c.Salesman()} {
		if strings.Contains(v, s) {
			return true
		}
	}
	return false
}

func ToCustomerView(c *customer.Customer) *CustomerView {
	town, _ := dispatch.DeriveTown(c.Address())
	view := &CustomerView{
		ID:                    c.ID(),
		Name:                  c.Name(),
		Phone:                 c.Phone(),
		Address:               c.Address(),
		Town:                  string(town),
		Salesman:              c.Salesman(),
		ConstructionTeam:      c.ConstructionTeam(),
		ConstructionTeamPhone: c.ConstructionTeamPhone(),
		DispatchDate:          c.DispatchDate(),
		Materials:             make([]MaterialLineView, 0, len(material.AllLines)),
		UpdatedAt:             c.UpdatedAt(),
	}
	for _, l := range material.AllLines {
		lv := MaterialLineView{
			Line:         string(l),
			State:        string(material.StateOf(c, l)),
			OutboundDate: c.Value(l.OutboundField()),
		}
		if f := l.InboundField(); f != "" {
			lv.InboundDate = c.Value(f)
		}
		view.Materials = append(view.Materials, lv)
	}
	return view
}
