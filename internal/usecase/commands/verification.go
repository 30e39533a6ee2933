package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"solar-dispatch/internal/domain/verification"
	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/pkg/clock"
	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/notify"
	"solar-dispatch/internal/pkg/patch"
	"solar-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/commands/verification_mock.go -package=commandsmock

// maxGenerateAttempts bounds retries when a drawn string collides with an active code.
const maxGenerateAttempts = 10

const defaultReservationTTL = 2 * time.Minute

var errCodeSpaceExhausted = errs.New("no free code string after max attempts")

type GenerateResult struct {
	CodeID          uuid.UUID
	Code            string
	BlockedSalesmen []string
	ExpiresAt       time.Time
}

type ValidationResult struct {
	Valid           bool
	CodeID          uuid.UUID
	BlockedSalesmen []string
	Reason          verification.Reason
	ExpiresAt       *time.Time
}

type ReservedCode struct {
	CodeID          uuid.UUID
	Code            string
	BlockedSalesmen []string
	ReservedUntil   time.Time
}

type VerificationCommands interface {
	// Generate issues a code. A nil blockedSalesmen snapshots the current
	// persisted block list; a non-nil one is stored as given.
	Generate(ctx context.Context, issuerID uuid.UUID, blockedSalesmen []string) (*GenerateResult, error)
	// ValidateOnly resolves a typed code without side effects.
	ValidateOnly(ctx context.Context, input string) (*ValidationResult, error)
	MarkAsUsed(ctx context.Context, codeID, userID uuid.UUID) error
	Reserve(ctx context.Context, input string, actorID uuid.UUID) (*ReservedCode, error)
	Release(ctx context.Context, codeID, actorID uuid.UUID) error
	CleanupExpired(ctx context.Context) (int64, error)
}

type verificationCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	cfg     config.DispatchConfig
	notify  notify.Sink
	metrics shared.Metrics
	logger  *slog.Logger
	random  io.Reader
}

func NewVerificationCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, sink notify.Sink, metrics shared.Metrics, logger *slog.Logger) VerificationCommands {
	return newVerificationCommands(uow, clk, cfg.Dispatch, sink, metrics, logger, nil)
}

// NewVerificationCommandsWithRandom fixes the digit source, for tests.
func NewVerificationCommandsWithRandom(uow shared.UnitOfWork, clk clock.Clock, cfg config.DispatchConfig, sink notify.Sink, metrics shared.Metrics, logger *slog.Logger, random io.Reader) VerificationCommands {
	return newVerificationCommands(uow, clk, cfg, sink, metrics, logger, random)
}

func newVerificationCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.DispatchConfig, sink notify.Sink, metrics shared.Metrics, logger *slog.Logger, random io.Reader) *verificationCommandsImpl {
	if metrics == nil {
		metrics = shared.NopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	cfg.ReservationTTL = patch.Positive(cfg.ReservationTTL, defaultReservationTTL)
	return &verificationCommandsImpl{
		uow:     uow,
		clock:   clk,
		cfg:     cfg,
		notify:  sink,
		metrics: metrics,
		logger:  logger,
		random:  random,
	}
}

func (v *verificationCommandsImpl) Generate(ctx context.Context, issuerID uuid.UUID, blockedSalesmen []string) (*GenerateResult, error) {
	now := v.clock.Now()

	var created *verification.Code
	err := v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Codes().LockIssuance(ctx); err != nil {
			return err
		}

		snapshot := blockedSalesmen
		if snapshot == nil {
			current, err := tx.Blocklist().List(ctx)
			if err != nil {
				return err
			}
			snapshot = current
		}

		for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
			s, err := verification.GenerateCode(v.random)
			if err != nil {
				return err
			}
			taken, err := tx.Codes().ExistsActive(ctx, s, now)
			if err != nil {
				return err
			}
			if taken {
				continue
			}

			code, err := verification.NewCode(s, issuerID, snapshot, now, v.cfg.CodeTTL)
			if err != nil {
				return err
			}
			if err := tx.Codes().Create(ctx, code); err != nil {
				return err
			}
			codeID := code.ID()
			if err := tx.Audit().Append(ctx, shared.AuditEntry{
				ActorID:   issuerID,
				Action:    shared.AuditCodeIssued,
				CodeID:    &codeID,
				Detail:    map[string]any{"blocked_salesmen": code.BlockedSalesmen(), "expires_at": code.ExpiresAt()},
				CreatedAt: now,
			}); err != nil {
				return err
			}
			created = code
			return nil
		}
		return errCodeSpaceExhausted
	})
	if err != nil {
		v.metrics.CodeIssued("failed")
		v.logger.Error("verification code generation failed", "issuer_id", issuerID, "error", err.Error())
		v.notify.Error(ctx, "Failed to generate verification code")
		if errs.Is(err, errs.ErrValidation) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrCodeGeneration)
	}

	v.metrics.CodeIssued("ok")
	v.notify.Success(ctx, fmt.Sprintf("Verification code %s issued", created.Code()))
	return &GenerateResult{
		CodeID:          created.ID(),
		Code:            created.Code(),
		BlockedSalesmen: created.BlockedSalesmen(),
		ExpiresAt:       created.ExpiresAt(),
	}, nil
}

func (v *verificationCommandsImpl) ValidateOnly(ctx context.Context, input string) (*ValidationResult, error) {
	s := verification.Sanitize(input)
	if err := verification.ValidateFormat(s); err != nil {
		v.metrics.CodeValidated("bad_format")
		return nil, err
	}

	resolution, err := v.resolve(ctx, s)
	if err != nil {
		return nil, err
	}

	if !resolution.Valid {
		v.metrics.CodeValidated(string(resolution.Reason))
		return &ValidationResult{Reason: resolution.Reason}, nil
	}

	v.metrics.CodeValidated("valid")
	expiresAt := resolution.Code.ExpiresAt()
	return &ValidationResult{
		Valid:           true,
		CodeID:          resolution.Code.ID(),
		BlockedSalesmen: resolution.Code.BlockedSalesmen(),
		ExpiresAt:       &expiresAt,
	}, nil
}

func (v *verificationCommandsImpl) MarkAsUsed(ctx context.Context, codeID, userID uuid.UUID) error {
	now := v.clock.Now()
	err := v.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Codes().MarkUsed(ctx, codeID, userID, now)
	})
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrCodeNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrCodeAlreadyUsed)
	default:
		return errs.Mark(err, ErrPersistence)
	}
}

func (v *verificationCommandsImpl) Reserve(ctx context.Context, input string, actorID uuid.UUID) (*ReservedCode, error) {
	s := verification.Sanitize(input)
	if err := verification.ValidateFormat(s); err != nil {
		return nil, err
	}

	now := v.clock.Now()
	resolution, err := v.resolve(ctx, s)
	if err != nil {
		return nil, err
	}
	if !resolution.Valid {
		return nil, reasonError(resolution.Reason)
	}

	code := resolution.Code
	if code.IsReserved(now) {
		return nil, ErrCodeReserved
	}

	until := now.Add(v.cfg.ReservationTTL)
	err = v.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Codes().Reserve(ctx, code.ID(), actorID, now, until)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Lost a race between resolve and reserve; report what won it.
			return nil, v.conflictReason(ctx, code.ID(), err)
		}
		return nil, errs.Mark(err, ErrPersistence)
	}

	return &ReservedCode{
		CodeID:          code.ID(),
		Code:            code.Code(),
		BlockedSalesmen: code.BlockedSalesmen(),
		ReservedUntil:   until,
	}, nil
}

func (v *verificationCommandsImpl) Release(ctx context.Context, codeID, actorID uuid.UUID) error {
	err := v.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Codes().Release(ctx, codeID, actorID)
	})
	if err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	return nil
}

// CleanupExpired deletes codes whose expiry lies beyond the retention window
// and clears reservations that timed out.
func (v *verificationCommandsImpl) CleanupExpired(ctx context.Context) (int64, error) {
	now := v.clock.Now()
	cutoff := now.Add(-v.cfg.CodeRetention)

	var deleted, released int64
	err := v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if deleted, err = tx.Codes().DeleteExpiredBefore(ctx, cutoff); err != nil {
			return err
		}
		released, err = tx.Codes().ReleaseStaleReservations(ctx, now)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrPersistence)
	}

	v.metrics.CodesCleanedUp(deleted)
	v.logger.Info("verification code cleanup finished", "deleted", deleted, "reservations_released", released, "cutoff", cutoff)
	return deleted, nil
}

func (v *verificationCommandsImpl) resolve(ctx context.Context, s string) (verification.Resolution, error) {
	var codes []*verification.Code
	err := v.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		codes, err = tx.Codes().FindByCode(ctx, s)
		return err
	})
	if err != nil {
		return verification.Resolution{}, errs.Mark(err, ErrPersistence)
	}
	return verification.Resolve(codes, v.clock.Now()), nil
}

func (v *verificationCommandsImpl) conflictReason(ctx context.Context, codeID uuid.UUID, cause error) error {
	var current *verification.Code
	err := v.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		current, err = tx.Codes().FindByID(ctx, codeID)
		return err
	})
	if err != nil {
		return errs.Mark(cause, ErrCodeReserved)
	}
	switch {
	case current.Used():
		return errs.Mark(cause, ErrCodeAlreadyUsed)
	case current.IsExpired(v.clock.Now()):
		return errs.Mark(cause, ErrCodeExpired)
	default:
		return errs.Mark(cause, ErrCodeReserved)
	}
}
