package queries

import (
	"context"
	"strings"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/domain/dispatch"
	"solar-dispatch/internal/usecase/shared"
)

//go:generate mockgen -source=dispatch.go -destination=../../../tests/mock/queries/dispatch_mock.go -package=queriesmock

type DispatchQueries interface {
	// PoolSummary counts customers a draw could pick right now under the
	// current block list, grouped by town. An empty town means every town.
	PoolSummary(ctx context.Context, town string) (*PoolSummaryView, error)
	BlockedSalesmen(ctx context.Context) ([]string, error)
}

type dispatchQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewDispatchQueries(uow shared.UnitOfWork) DispatchQueries {
	return &dispatchQueriesImpl{uow: uow}
}

func (q *dispatchQueriesImpl) PoolSummary(ctx context.Context, town string) (*PoolSummaryView, error) {
	var townFilter *dispatch.Town
	if t := strings.TrimSpace(town); t != "" {
		parsed, err := dispatch.ParseTown(t)
		if err != nil {
			return nil, err
		}
		townFilter = &parsed
	}

	var (
		all     []*customer.Customer
		blocked []string
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if all, err = tx.Customers().GetAll(ctx); err != nil {
			return err
		}
		blocked, err = tx.Blocklist().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	pool := dispatch.FilterEligible(all, blocked, townFilter)
	summary := dispatch.SummarizeByTown(pool)

	towns := make([]TownCountView, 0, len(summary))
	for _, tc := range summary {
		towns = append(towns, TownCountView{Town: string(tc.Town), Count: tc.Count})
	}
	if blocked == nil {
		blocked = []string{}
	}
	return &PoolSummaryView{Total: len(pool), Towns: towns, BlockedSalesmen: blocked}, nil
}

func (q *dispatchQueriesImpl) BlockedSalesmen(ctx context.Context) ([]string, error) {
	var blocked []string
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		blocked, err = tx.Blocklist().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if blocked == nil {
		blocked = []string{}
	}
	return blocked, nil
}
