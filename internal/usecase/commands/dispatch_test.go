//go:build unit

package commands_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/domain/dispatch"
	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/infra/cache"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/notify"
	"solar-dispatch/internal/pkg/ptr"
	"solar-dispatch/internal/usecase/commands"
	"solar-dispatch/internal/usecase/shared"
	"solar-dispatch/tests/common/builder"
	commandsmock "solar-dispatch/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scripted replays fixed rolls, wrapped into range.
type scripted struct {
	rolls []int
}

func (s *scripted) IntN(n int) int {
	if len(s.rolls) == 0 {
		return 0
	}
	r := s.rolls[0] % n
	s.rolls = s.rolls[1:]
	return r
}

type dispatchFixture struct {
	*fixture
	codeCmds *commandsmock.MockVerificationCommands
	cache    *cache.CustomerCache
	cmds     commands.DispatchCommands

	actor  uuid.UUID
	codeID uuid.UUID
}

func newDispatchFixture(t *testing.T, rolls ...int) *dispatchFixture {
	t.Helper()
	f := newFixture(t)
	df := &dispatchFixture{
		fixture:  f,
		codeCmds: commandsmock.NewMockVerificationCommands(gomock.NewController(t)),
		cache:    cache.NewCustomerCache(),
		actor:    uuid.New(),
		codeID:   uuid.New(),
	}
	engine := dispatch.NewEngine(&scripted{rolls: rolls}, 2)
	df.cmds = commands.NewDispatchCommands(f.uow, df.codeCmds, df.cache, engine, f.clock, f.cfg, f.sink, f.metrics, f.logger)
	return df
}

func (df *dispatchFixture) reserves(blocked ...string) {
	df.codeCmds.EXPECT().Reserve(gomock.Any(), "1234", df.actor).Return(&commands.ReservedCode{
		CodeID:          df.codeID,
		Code:            "1234",
		BlockedSalesmen: blocked,
		ReservedUntil:   fixedNow.Add(2 * time.Minute),
	}, nil)
}

// assigns expects the guarded write for c and returns what the store would.
func (df *dispatchFixture) assigns(c *customer.Customer, team, phone string) *customer.Customer {
	stored := c.Apply(customer.Patch{}.
		Set(customer.FieldConstructionTeam, team).
		Set(customer.FieldConstructionTeamPhone, phone).
		Set(customer.FieldDispatchDate, today))
	df.customers.EXPECT().GetByID(gomock.Any(), c.ID()).Return(c, nil)
	df.customers.EXPECT().AssignConstructionTeam(gomock.Any(), c.ID(), team, phone, today).Return(stored, nil)
	df.audit.EXPECT().Append(gomock.Any(), auditAction(shared.AuditDrawAssigned)).Return(nil)
	return stored
}

func (df *dispatchFixture) request() commands.DrawRequest {
	return commands.DrawRequest{
		Code:      "1234",
		TeamName:  " 北城施工队 ",
		TeamPhone: "13900000000",
		ActorID:   df.actor,
	}
}

func TestDraw(t *testing.T) {
	t.Run("assigns the winner and burns the code", func(t *testing.T) {
		df := newDispatchFixture(t, 1, 0, 0)
		winner := builder.Eligible().WithName("张三").Build()
		blockedOne := builder.Eligible().WithSalesman("李四").Build()
		notShipped := builder.NewCustomerBuilder().Build()
		assigned := builder.Eligible().AssignedTo("南城施工队").Build()

		df.reserves("李四")
		df.customers.EXPECT().GetAll(gomock.Any()).
			Return([]*customer.Customer{blockedOne, notShipped, winner, assigned}, nil)
		stored := df.assigns(winner, "北城施工队", "13900000000")
		df.codeCmds.EXPECT().MarkAsUsed(gomock.Any(), df.codeID, df.actor).Return(nil)
		df.metrics.EXPECT().DrawCompleted("ok")

		got, err := df.cmds.Draw(df.ctx, df.request())

		require.NoError(t, err)
		assert.Same(t, stored, got.Winner)
		assert.Equal(t, 1, got.PoolSize)
		assert.Equal(t, df.codeID, got.CodeID)
		assert.Equal(t, []uuid.UUID{winner.ID(), winner.ID()}, got.RevealTicks)
		assert.Empty(t, got.Warning)
		assert.Equal(t, "北城施工队", ptr.Deref(got.Winner.ConstructionTeam()))
		assert.Equal(t, today, ptr.Deref(got.Winner.DispatchDate()))

		cached, ok := df.cache.Get(winner.ID())
		require.True(t, ok)
		assert.Same(t, stored, cached)
		assert.Equal(t, []notify.Level{notify.LevelSuccess}, df.levels())
	})

	t.Run("winner is the roll after the reveal ticks", func(t *testing.T) {
		df := newDispatchFixture(t, 0, 0, 2)
		first := builder.Eligible().WithName("甲").Build()
		second := builder.Eligible().WithName("乙").Build()
		third := builder.Eligible().WithName("丙").Build()

		df.allowMetrics()
		df.reserves()
		df.customers.EXPECT().GetAll(gomock.Any()).Return([]*customer.Customer{first, second, third}, nil)
		df.assigns(third, "北城施工队", "13900000000")
		df.codeCmds.EXPECT().MarkAsUsed(gomock.Any(), df.codeID, df.actor).Return(nil)

		got, err := df.cmds.Draw(df.ctx, df.request())

		require.NoError(t, err)
		assert.Equal(t, third.ID(), got.Winner.ID())
		assert.Equal(t, 3, got.PoolSize)
		assert.Equal(t, []uuid.UUID{first.ID(), first.ID()}, got.RevealTicks)
	})

	t.Run("town filter narrows the pool", func(t *testing.T) {
		df := newDispatchFixture(t)
		wuquan := builder.Eligible().WithAddress("舞泉镇西街3号").Build()
		wucheng := builder.Eligible().WithAddress("吴城镇南村").Build()

		df.allowMetrics()
		df.reserves()
		df.customers.EXPECT().GetAll(gomock.Any()).Return([]*customer.Customer{wuquan, wucheng}, nil)
		df.assigns(wucheng, "北城施工队", "13900000000")
		df.codeCmds.EXPECT().MarkAsUsed(gomock.Any(), df.codeID, df.actor).Return(nil)

		req := df.request()
		req.Town = "吴城镇"
		got, err := df.cmds.Draw(df.ctx, req)

		require.NoError(t, err)
		assert.Equal(t, wucheng.ID(), got.Winner.ID())
		assert.Equal(t, 1, got.PoolSize)
	})

	t.Run("empty pool releases the code without burning it", func(t *testing.T) {
		df := newDispatchFixture(t)

		df.reserves("李四")
		df.customers.EXPECT().GetAll(gomock.Any()).Return([]*customer.Customer{
			builder.Eligible().WithSalesman("李四").Build(),
			builder.NewCustomerBuilder().WithValue(customer.FieldSquareSteelOutbound, customer.ReturnedSentinel).Build(),
		}, nil)
		df.codeCmds.EXPECT().Release(gomock.Any(), df.codeID, df.actor).Return(nil)
		df.metrics.EXPECT().DrawCompleted("empty_pool")

		got, err := df.cmds.Draw(df.ctx, df.request())

		assert.Nil(t, got)
		assert.True(t, errs.Is(err, commands.ErrEmptyPool))
		assert.Equal(t, []notify.Level{notify.LevelInfo}, df.levels())
	})

	t.Run("rejected code stops before loading customers", func(t *testing.T) {
		df := newDispatchFixture(t)

		df.codeCmds.EXPECT().Reserve(gomock.Any(), "1234", df.actor).Return(nil, commands.ErrCodeReserved)
		df.metrics.EXPECT().DrawCompleted("code_rejected")

		_, err := df.cmds.Draw(df.ctx, df.request())

		assert.True(t, errs.Is(err, commands.ErrCodeReserved))
		require.Len(t, df.rec.Messages(), 1)
		assert.Equal(t, "Verification code is being used by another draw", df.rec.Messages()[0].Message)
	})

	t.Run("blank team name", func(t *testing.T) {
		df := newDispatchFixture(t)
		req := df.request()
		req.TeamName = "   "

		_, err := df.cmds.Draw(df.ctx, req)

		assert.True(t, errs.Is(err, commands.ErrTeamNameRequired))
	})

	t.Run("unknown town", func(t *testing.T) {
		df := newDispatchFixture(t)
		req := df.request()
		req.Town = "城关镇"

		_, err := df.cmds.Draw(df.ctx, req)

		assert.True(t, errs.Is(err, dispatch.ErrUnknownTown))
	})

	t.Run("code that cannot be burned becomes a warning", func(t *testing.T) {
		df := newDispatchFixture(t)
		var logs bytes.Buffer
		df.cmds = commands.NewDispatchCommands(df.uow, df.codeCmds, df.cache, dispatch.NewEngine(&scripted{}, 2),
			df.clock, df.cfg, df.sink, df.metrics, slog.New(slog.NewTextHandler(&logs, nil)))
		winner := builder.Eligible().Build()

		df.reserves()
		df.customers.EXPECT().GetAll(gomock.Any()).Return([]*customer.Customer{winner}, nil)
		stored := df.assigns(winner, "北城施工队", "13900000000")
		df.codeCmds.EXPECT().MarkAsUsed(gomock.Any(), df.codeID, df.actor).Return(commands.ErrPersistence)
		df.metrics.EXPECT().DrawCompleted("ok_code_not_burned")

		got, err := df.cmds.Draw(df.ctx, df.request())

		require.NoError(t, err)
		assert.Same(t, stored, got.Winner)
		assert.NotEmpty(t, got.Warning)
		assert.Equal(t, []notify.Level{notify.LevelInfo}, df.levels())
		assert.Equal(t, 1, strings.Count(logs.String(), "level=WARN"), logs.String())
	})

	t.Run("winner assigned concurrently releases the code", func(t *testing.T) {
		df := newDispatchFixture(t)
		winner := builder.Eligible().Build()
		takenMeanwhile := builder.Eligible().With(func(b *builder.CustomerBuilder) { b.ID = winner.ID() }).
			AssignedTo("南城施工队").Build()

		df.reserves()
		df.customers.EXPECT().GetAll(gomock.Any()).Return([]*customer.Customer{winner}, nil)
		df.customers.EXPECT().GetByID(gomock.Any(), winner.ID()).Return(takenMeanwhile, nil)
		df.codeCmds.EXPECT().Release(gomock.Any(), df.codeID, df.actor).Return(nil)
		df.metrics.EXPECT().DrawCompleted("commit_failed")

		_, err := df.cmds.Draw(df.ctx, df.request())

		assert.True(t, errs.Is(err, commands.ErrAlreadyAssigned))
		assert.Equal(t, []notify.Level{notify.LevelError}, df.levels())
	})

	t.Run("load failure releases the code", func(t *testing.T) {
		df := newDispatchFixture(t)

		df.reserves()
		df.customers.EXPECT().GetAll(gomock.Any()).Return(nil, infra.WrapRepoErr("list", assert.AnError))
		df.codeCmds.EXPECT().Release(gomock.Any(), df.codeID, df.actor).Return(nil)
		df.metrics.EXPECT().DrawCompleted("failed")

		_, err := df.cmds.Draw(df.ctx, df.request())

		assert.True(t, errs.Is(err, commands.ErrPersistence))
	})
}

func TestCommit(t *testing.T) {
	t.Run("guarded write lost to another assignment", func(t *testing.T) {
		df := newDispatchFixture(t)
		winner := builder.Eligible().Build()

		df.customers.EXPECT().GetByID(gomock.Any(), winner.ID()).Return(winner, nil)
		df.customers.EXPECT().AssignConstructionTeam(gomock.Any(), winner.ID(), "北城施工队", "", today).
			Return(nil, infra.WrapRepoErr("customer already assigned", nil, infra.KindConflict))

		_, err := df.cmds.Commit(df.ctx, commands.CommitRequest{
			Winner:   winner,
			TeamName: "北城施工队",
			CodeID:   df.codeID,
			ActorID:  df.actor,
		})

		assert.True(t, errs.Is(err, commands.ErrAlreadyAssigned))
		_, cached := df.cache.Get(winner.ID())
		assert.False(t, cached)
	})

	t.Run("already assigned snapshot is refused up front", func(t *testing.T) {
		df := newDispatchFixture(t)

		_, err := df.cmds.Commit(df.ctx, commands.CommitRequest{
			Winner:   builder.Eligible().AssignedTo("南城施工队").Build(),
			TeamName: "北城施工队",
		})

		assert.True(t, errs.Is(err, commands.ErrAlreadyAssigned))
	})

	t.Run("winner deleted meanwhile", func(t *testing.T) {
		df := newDispatchFixture(t)
		winner := builder.Eligible().Build()

		df.customers.EXPECT().GetByID(gomock.Any(), winner.ID()).
			Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))

		_, err := df.cmds.Commit(df.ctx, commands.CommitRequest{Winner: winner, TeamName: "北城施工队"})

		assert.True(t, errs.Is(err, customer.ErrCustomerNotFound))
	})

	t.Run("missing winner", func(t *testing.T) {
		df := newDispatchFixture(t)

		_, err := df.cmds.Commit(df.ctx, commands.CommitRequest{TeamName: "北城施工队"})

		assert.True(t, errs.Is(err, commands.ErrWinnerRequired))
	})
}
