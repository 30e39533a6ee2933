package commands

import (
	"context"
	"fmt"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/pkg/clock"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/notify"
	"solar-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=blocklist.go -destination=../../../tests/mock/commands/blocklist_mock.go -package=commandsmock

type BlocklistCommands interface {
	// Replace overwrites the current block list and returns the stored entries.
	Replace(ctx context.Context, salesmen []string, actorID uuid.UUID) ([]string, error)
}

type blocklistCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	notify notify.Sink
}

func NewBlocklistCommands(uow shared.UnitOfWork, clk clock.Clock, sink notify.Sink) BlocklistCommands {
	return &blocklistCommandsImpl{uow: uow, clock: clk, notify: sink}
}

func (b *blocklistCommandsImpl) Replace(ctx context.Context, salesmen []string, actorID uuid.UUID) ([]string, error) {
	normalized := customer.NormalizeSalesmen(salesmen)

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Blocklist().Replace(ctx, normalized, actorID); err != nil {
			return err
		}
		return tx.Audit().Append(ctx, shared.AuditEntry{
			ActorID:   actorID,
			Action:    shared.AuditBlocklistReplaced,
			Detail:    map[string]any{"salesmen": normalized},
			CreatedAt: b.clock.Now(),
		})
	})
	if err != nil {
		b.notify.Error(ctx, "Failed to save blocked salesmen")
		return nil, errs.Mark(err, ErrPersistence)
	}

	b.notify.Success(ctx, fmt.Sprintf("%d salesmen blocked", len(normalized)))
	return normalized, nil
}
