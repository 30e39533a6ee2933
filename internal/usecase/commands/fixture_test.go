//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"solar-dispatch/internal/pkg/clock"
	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/pkg/notify"
	"solar-dispatch/internal/usecase/shared"
	sharedmock "solar-dispatch/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// fixedNow is 10:00 on 2024-03-01 in Asia/Shanghai.
var fixedNow = time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)

const today = "2024-03-01"

type fixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	customers *sharedmock.MockCustomerRepository
	codes     *sharedmock.MockVerificationCodeRepository
	blocklist *sharedmock.MockBlocklistRepository
	audit     *sharedmock.MockAuditRepository
	metrics   *sharedmock.MockMetrics

	clock  *clock.MockClock
	cfg    config.Config
	sink   notify.Sink
	rec    *notify.Recorder
	ctx    context.Context
	logger *slog.Logger
}

// newFixture runs every unit of work against one mocked transaction.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		customers: sharedmock.NewMockCustomerRepository(ctrl),
		codes:     sharedmock.NewMockVerificationCodeRepository(ctrl),
		blocklist: sharedmock.NewMockBlocklistRepository(ctrl),
		audit:     sharedmock.NewMockAuditRepository(ctrl),
		metrics:   sharedmock.NewMockMetrics(ctrl),
		clock:     clock.NewMockClock(fixedNow),
		cfg:       config.NewTestConfig(),
		rec:       notify.NewRecorder(),
		logger:    slog.New(slog.DiscardHandler),
	}
	f.sink = notify.NewContextSink(f.logger)
	f.ctx = notify.WithRecorder(context.Background(), f.rec)

	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, f.tx)
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()

	f.tx.EXPECT().Customers().Return(f.customers).AnyTimes()
	f.tx.EXPECT().Codes().Return(f.codes).AnyTimes()
	f.tx.EXPECT().Blocklist().Return(f.blocklist).AnyTimes()
	f.tx.EXPECT().Audit().Return(f.audit).AnyTimes()

	return f
}

// allowMetrics accepts any counter call. Tests asserting a specific outcome
// set their expectation before calling it.
func (f *fixture) allowMetrics() {
	f.metrics.EXPECT().CodeIssued(gomock.Any()).AnyTimes()
	f.metrics.EXPECT().CodeValidated(gomock.Any()).AnyTimes()
	f.metrics.EXPECT().DrawCompleted(gomock.Any()).AnyTimes()
	f.metrics.EXPECT().MaterialTransition(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.metrics.EXPECT().CodesCleanedUp(gomock.Any()).AnyTimes()
}

func (f *fixture) levels() []notify.Level {
	msgs := f.rec.Messages()
	out := make([]notify.Level, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Level)
	}
	return out
}

func auditAction(action shared.AuditAction) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		e, ok := x.(shared.AuditEntry)
		return ok && e.Action == action
	})
}
