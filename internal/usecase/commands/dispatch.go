package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/domain/dispatch"
	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/pkg/clock"
	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/notify"
	"solar-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=dispatch.go -destination=../../../tests/mock/commands/dispatch_mock.go -package=commandsmock

type DrawRequest struct {
	Code      string
	TeamName  string
	TeamPhone string
	// Town limits the pool to one town when set; empty means all towns.
	Town    string
	ActorID uuid.UUID
}

type DrawResult struct {
	Winner      *customer.Customer
	RevealTicks []uuid.UUID
	PoolSize    int
	CodeID      uuid.UUID
	// Warning is set when the customer was assigned but the code could not
	// be burned.
	Warning string
}

type CommitRequest struct {
	Winner    *customer.Customer
	TeamName  string
	TeamPhone string
	CodeID    uuid.UUID
	ActorID   uuid.UUID
}

type CommitResult struct {
	Customer *customer.Customer
	Warning  string
}

type DispatchCommands interface {
	Draw(ctx context.Context, req DrawRequest) (*DrawResult, error)
	// Commit assigns the winner to the team and burns the code. A failure to
	// burn the code is reported as a warning, never rolled back.
	Commit(ctx context.Context, req CommitRequest) (*CommitResult, error)
}

type dispatchCommandsImpl struct {
	uow     shared.UnitOfWork
	codes   VerificationCommands
	cache   shared.CustomerCache
	engine  *dispatch.Engine
	clock   clock.Clock
	loc     *time.Location
	notify  notify.Sink
	metrics shared.Metrics
	logger  *slog.Logger
}

func NewDispatchCommands(
	uow shared.UnitOfWork,
	codes VerificationCommands,
	cache shared.CustomerCache,
	engine *dispatch.Engine,
	clk clock.Clock,
	cfg config.Config,
	sink notify.Sink,
	metrics shared.Metrics,
	logger *slog.Logger,
) DispatchCommands {
	if metrics == nil {
		metrics = shared.NopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &dispatchCommandsImpl{
		uow:     uow,
		codes:   codes,
		cache:   cache,
		engine:  engine,
		clock:   clk,
		loc:     cfg.App.Location(),
		notify:  sink,
		metrics: metrics,
		logger:  logger,
	}
}

func (d *dispatchCommandsImpl) Draw(ctx context.Context, req DrawRequest) (*DrawResult, error) {
	teamName := strings.TrimSpace(req.TeamName)
	if teamName == "" {
		d.notify.Error(ctx, "Construction team name is required")
		return nil, ErrTeamNameRequired
	}

	var townFilter *dispatch.Town
	if t := strings.TrimSpace(req.Town); t != "" {
		town, err := dispatch.ParseTown(t)
		if err != nil {
			d.notify.Error(ctx, fmt.Sprintf("Unknown town %q", t))
			return nil, err
		}
		townFilter = &town
	}

	reserved, err := d.codes.Reserve(ctx, req.Code, req.ActorID)
	if err != nil {
		d.metrics.DrawCompleted("code_rejected")
		d.notify.Error(ctx, codeErrorMessage(err))
		return nil, err
	}

	all, err := d.loadCustomers(ctx)
	if err != nil {
		d.release(ctx, reserved.CodeID, req.ActorID)
		d.metrics.DrawCompleted("failed")
		d.notify.Error(ctx, "Failed to load customers")
		return nil, err
	}

	pool := dispatch.FilterEligible(all, reserved.BlockedSalesmen, townFilter)
	result, err := d.engine.Draw(pool)
	if err != nil {
		d.release(ctx, reserved.CodeID, req.ActorID)
		if errs.Is(err, dispatch.ErrEmptyPool) {
			d.metrics.DrawCompleted("empty_pool")
			d.notify.Info(ctx, "No eligible customers to draw from")
		}
		return nil, err
	}

	committed, err := d.Commit(ctx, CommitRequest{
		Winner:    result.Winner,
		TeamName:  teamName,
		TeamPhone: strings.TrimSpace(req.TeamPhone),
		CodeID:    reserved.CodeID,
		ActorID:   req.ActorID,
	})
	if err != nil {
		d.release(ctx, reserved.CodeID, req.ActorID)
		d.metrics.DrawCompleted("commit_failed")
		return nil, err
	}

	outcome := "ok"
	if committed.Warning != "" {
		outcome = "ok_code_not_burned"
	}
	d.metrics.DrawCompleted(outcome)

	return &DrawResult{
		Winner:      committed.Customer,
		RevealTicks: result.RevealTicks,
		PoolSize:    len(pool),
		CodeID:      reserved.CodeID,
		Warning:     committed.Warning,
	}, nil
}

func (d *dispatchCommandsImpl) Commit(ctx context.Context, req CommitRequest) (*CommitResult, error) {
	if req.Winner == nil {
		return nil, ErrWinnerRequired
	}
	teamName := strings.TrimSpace(req.TeamName)
	if teamName == "" {
		return nil, ErrTeamNameRequired
	}
	if req.Winner.IsAssigned() {
		d.notify.Error(ctx, "Customer was already assigned, please draw again")
		return nil, ErrAlreadyAssigned
	}

	customerID := req.Winner.ID()
	today := clock.Today(d.clock, d.loc)

	var assigned *customer.Customer
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Customers().GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if current.IsAssigned() {
			return ErrAlreadyAssigned
		}

		assigned, err = tx.Customers().AssignConstructionTeam(ctx, customerID, teamName, req.TeamPhone, today)
		if err != nil {
			return err
		}

		codeID := req.CodeID
		return tx.Audit().Append(ctx, shared.AuditEntry{
			ActorID:    req.ActorID,
			Action:     shared.AuditDrawAssigned,
			CustomerID: &customerID,
			CodeID:     &codeID,
			Detail:     map[string]any{"team": teamName, "team_phone": req.TeamPhone, "dispatch_date": today},
			CreatedAt:  d.clock.Now(),
		})
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrAlreadyAssigned), infra.IsKind(err, infra.KindConflict):
			d.notify.Error(ctx, "Customer was already assigned, please draw again")
			return nil, errs.Mark(err, ErrAlreadyAssigned)
		case infra.IsKind(err, infra.KindNotFound):
			d.notify.Error(ctx, "Customer no longer exists, please draw again")
			return nil, errs.Mark(err, customer.ErrCustomerNotFound)
		default:
			d.logger.Error("assignment failed", "customer_id", customerID, "error", err.Error())
			d.notify.Error(ctx, "Failed to save assignment")
			return nil, errs.Mark(err, ErrPersistence)
		}
	}

	d.cache.Put(assigned)

	result := &CommitResult{Customer: assigned}
	if err := d.codes.MarkAsUsed(ctx, req.CodeID, req.ActorID); err != nil {
		result.Warning = fmt.Sprintf("customer assigned but verification code was not marked used: %v", err)
		d.logger.Warn("verification code not burned after assignment",
			"customer_id", customerID, "code_id", req.CodeID, "error", err.Error())
		d.notify.Info(ctx, fmt.Sprintf("%s assigned to %s. Warning: the verification code could not be marked used", assigned.Name(), teamName))
		return result, nil
	}

	d.notify.Success(ctx, fmt.Sprintf("%s assigned to %s", assigned.Name(), teamName))
	return result, nil
}

func (d *dispatchCommandsImpl) loadCustomers(ctx context.Context) ([]*customer.Customer, error) {
	var all []*customer.Customer
	err := d.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		all, err = tx.Customers().GetAll(ctx)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}
	d.cache.ReplaceAll(all)
	return all, nil
}

func (d *dispatchCommandsImpl) release(ctx context.Context, codeID, actorID uuid.UUID) {
	if err := d.codes.Release(ctx, codeID, actorID); err != nil {
		d.logger.Warn("failed to release code reservation", "code_id", codeID, "error", err.Error())
	}
}

func codeErrorMessage(err error) string {
	switch {
	case errs.Is(err, ErrCodeNotFound):
		return "Verification code not found"
	case errs.Is(err, ErrCodeExpired):
		return "Verification code expired, please request a new one"
	case errs.Is(err, ErrCodeAlreadyUsed):
		return "Verification code already used, please request a new one"
	case errs.Is(err, ErrCodeReserved):
		return "Verification code is being used by another draw"
	case errs.Is(err, errs.ErrValidation):
		return "Verification code must be 4 digits"
	default:
		return "Failed to check verification code"
	}
}
