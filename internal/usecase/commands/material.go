package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/domain/material"
	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/pkg/clock"
	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/notify"
	"solar-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=material.go -destination=../../../tests/mock/commands/material_mock.go -package=commandsmock

type TransitionRequest struct {
	CustomerID uuid.UUID
	Line       string
	Action     string
	ActorID    uuid.UUID
}

type TransitionResult struct {
	Customer *customer.Customer
	Line     material.Line
	State    material.State
}

type MaterialCommands interface {
	Transition(ctx context.Context, req TransitionRequest) (*TransitionResult, error)
}

type materialCommandsImpl struct {
	uow     shared.UnitOfWork
	cache   shared.CustomerCache
	clock   clock.Clock
	loc     *time.Location
	notify  notify.Sink
	metrics shared.Metrics
	logger  *slog.Logger
}

func NewMaterialCommands(
	uow shared.UnitOfWork,
	cache shared.CustomerCache,
	clk clock.Clock,
	cfg config.Config,
	sink notify.Sink,
	metrics shared.Metrics,
	logger *slog.Logger,
) MaterialCommands {
	if metrics == nil {
		metrics = shared.NopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &materialCommandsImpl{
		uow:     uow,
		cache:   cache,
		clock:   clk,
		loc:     cfg.App.Location(),
		notify:  sink,
		metrics: metrics,
		logger:  logger,
	}
}

// Transition applies the action to the cached record first and persists it
// afterwards. The stored row is re-read inside the transaction and the patch
// is recomputed from it, so a stale cache never decides what gets written.
// When persisting fails the cache is put back to the freshest pre-image.
func (m *materialCommandsImpl) Transition(ctx context.Context, req TransitionRequest) (*TransitionResult, error) {
	line, err := material.ParseLine(req.Line)
	if err != nil {
		return nil, err
	}
	action, err := material.ParseAction(req.Action)
	if err != nil {
		return nil, err
	}

	pre, err := m.preImage(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	today := clock.Today(m.clock, m.loc)
	patch, next, err := material.Transition(pre, line, action, today)
	if err != nil {
		return nil, m.rejected(ctx, pre, line, action, err)
	}

	optimistic := pre.Apply(patch)
	m.cache.Put(optimistic)

	var current, stored *customer.Customer
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		current, err = tx.Customers().GetByID(ctx, req.CustomerID)
		if err != nil {
			return err
		}
		patch, next, err = material.Transition(current, line, action, today)
		if err != nil {
			return err
		}
		stored, err = tx.Customers().Update(ctx, req.CustomerID, patch)
		if err != nil {
			return err
		}
		customerID := req.CustomerID
		return tx.Audit().Append(ctx, shared.AuditEntry{
			ActorID:    req.ActorID,
			Action:     shared.AuditMaterialTransition,
			CustomerID: &customerID,
			Detail:     map[string]any{"line": string(line), "action": string(action), "state": string(next)},
			CreatedAt:  m.clock.Now(),
		})
	})
	if err != nil {
		rollback := pre
		if current != nil {
			rollback = current
		}
		m.cache.Restore(req.CustomerID, optimistic, rollback)
		if errs.Is(err, material.ErrInvalidTransition) {
			return nil, m.rejected(ctx, current, line, action, err)
		}
		m.metrics.MaterialTransition(string(line), string(action), "failed")
		m.logger.Error("material transition not persisted, cache rolled back",
			"customer_id", req.CustomerID, "line", line, "action", action, "error", err.Error())
		m.notify.Error(ctx, fmt.Sprintf("Failed to save %s update for %s", line, pre.Name()))
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, customer.ErrCustomerNotFound)
		}
		return nil, errs.Mark(err, ErrPersistence)
	}

	m.cache.Put(stored)
	m.metrics.MaterialTransition(string(line), string(action), "ok")
	m.notify.Success(ctx, fmt.Sprintf("%s: %s is now %s", stored.Name(), line, next))

	return &TransitionResult{Customer: stored, Line: line, State: next}, nil
}

func (m *materialCommandsImpl) rejected(ctx context.Context, c *customer.Customer, line material.Line, action material.Action, err error) error {
	m.metrics.MaterialTransition(string(line), string(action), "rejected")
	m.notify.Error(ctx, fmt.Sprintf("Cannot %s %s from state %s", action, line, material.StateOf(c, line)))
	return err
}

func (m *materialCommandsImpl) preImage(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	if c, ok := m.cache.Get(id); ok {
		return c, nil
	}

	var c *customer.Customer
	err := m.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		c, err = tx.Customers().GetByID(ctx, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, customer.ErrCustomerNotFound)
		}
		return nil, errs.Mark(err, ErrPersistence)
	}
	m.cache.Put(c)
	return c, nil
}
