//go:build unit

package commands_test

import (
	"context"
	"testing"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/domain/material"
	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/infra/cache"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/notify"
	"solar-dispatch/internal/pkg/ptr"
	"solar-dispatch/internal/usecase/commands"
	"solar-dispatch/internal/usecase/shared"
	"solar-dispatch/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type materialFixture struct {
	*fixture
	cache *cache.CustomerCache
	cmds  commands.MaterialCommands
	actor uuid.UUID
}

func newMaterialFixture(t *testing.T) *materialFixture {
	t.Helper()
	f := newFixture(t)
	mf := &materialFixture{fixture: f, cache: cache.NewCustomerCache(), actor: uuid.New()}
	mf.cmds = commands.NewMaterialCommands(f.uow, mf.cache, f.clock, f.cfg, f.sink, f.metrics, f.logger)
	return mf
}

func (mf *materialFixture) request(id uuid.UUID, line material.Line, action material.Action) commands.TransitionRequest {
	return commands.TransitionRequest{CustomerID: id, Line: string(line), Action: string(action), ActorID: mf.actor}
}

func TestTransition(t *testing.T) {
	shipToday := customer.Patch{}.
		Set(customer.FieldSquareSteelOutbound, today).
		Clear(customer.FieldSquareSteelInbound)

	t.Run("cached record is updated and persisted", func(t *testing.T) {
		mf := newMaterialFixture(t)
		pre := builder.NewCustomerBuilder().Build()
		mf.cache.ReplaceAll([]*customer.Customer{pre})
		stored := pre.Apply(shipToday)

		mf.customers.EXPECT().GetByID(gomock.Any(), pre.ID()).Return(pre, nil)
		mf.customers.EXPECT().Update(gomock.Any(), pre.ID(), shipToday).Return(stored, nil)
		mf.audit.EXPECT().Append(gomock.Any(), auditAction(shared.AuditMaterialTransition)).Return(nil)
		mf.metrics.EXPECT().MaterialTransition("square_steel", "outbound", "ok")

		got, err := mf.cmds.Transition(mf.ctx, mf.request(pre.ID(), material.LineSquareSteel, material.ActionOutbound))

		require.NoError(t, err)
		assert.Equal(t, material.StateOutbound, got.State)
		assert.Same(t, stored, got.Customer)
		cached, _ := mf.cache.Get(pre.ID())
		assert.Same(t, stored, cached)
		assert.Equal(t, []notify.Level{notify.LevelSuccess}, mf.levels())
	})

	t.Run("cache miss loads the record first", func(t *testing.T) {
		mf := newMaterialFixture(t)
		mf.allowMetrics()
		pre := builder.NewCustomerBuilder().Build()
		stored := pre.Apply(shipToday)

		mf.customers.EXPECT().GetByID(gomock.Any(), pre.ID()).Return(pre, nil).Times(2)
		mf.customers.EXPECT().Update(gomock.Any(), pre.ID(), shipToday).Return(stored, nil)
		mf.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		got, err := mf.cmds.Transition(mf.ctx, mf.request(pre.ID(), material.LineSquareSteel, material.ActionOutbound))

		require.NoError(t, err)
		assert.Equal(t, today, ptr.Deref(got.Customer.Value(customer.FieldSquareSteelOutbound)))
	})

	t.Run("failed write rolls the cache back", func(t *testing.T) {
		mf := newMaterialFixture(t)
		pre := builder.NewCustomerBuilder().Build()
		mf.cache.ReplaceAll([]*customer.Customer{pre})
		mf.customers.EXPECT().GetByID(gomock.Any(), pre.ID()).Return(pre, nil)

		mf.customers.EXPECT().Update(gomock.Any(), pre.ID(), shipToday).
			DoAndReturn(func(context.Context, uuid.UUID, customer.Patch) (*customer.Customer, error) {
				// The optimistic value is visible while the write is in flight.
				inFlight, _ := mf.cache.Get(pre.ID())
				assert.Equal(t, today, ptr.Deref(inFlight.Value(customer.FieldSquareSteelOutbound)))
				return nil, infra.WrapRepoErr("failed to update customer", assert.AnError)
			})
		mf.metrics.EXPECT().MaterialTransition("square_steel", "outbound", "failed")

		_, err := mf.cmds.Transition(mf.ctx, mf.request(pre.ID(), material.LineSquareSteel, material.ActionOutbound))

		assert.True(t, errs.Is(err, commands.ErrPersistence))
		cached, _ := mf.cache.Get(pre.ID())
		assert.Same(t, pre, cached)
		assert.Equal(t, []notify.Level{notify.LevelError}, mf.levels())
	})

	t.Run("rollback keeps a newer cached value", func(t *testing.T) {
		mf := newMaterialFixture(t)
		mf.allowMetrics()
		pre := builder.NewCustomerBuilder().Build()
		newer := pre.Apply(customer.Patch{}.Set(customer.FieldInverterOutbound, today))
		mf.cache.ReplaceAll([]*customer.Customer{pre})
		mf.customers.EXPECT().GetByID(gomock.Any(), pre.ID()).Return(pre, nil)

		mf.customers.EXPECT().Update(gomock.Any(), pre.ID(), shipToday).
			DoAndReturn(func(context.Context, uuid.UUID, customer.Patch) (*customer.Customer, error) {
				mf.cache.Put(newer)
				return nil, infra.WrapRepoErr("failed to update customer", assert.AnError)
			})

		_, err := mf.cmds.Transition(mf.ctx, mf.request(pre.ID(), material.LineSquareSteel, material.ActionOutbound))

		require.Error(t, err)
		cached, _ := mf.cache.Get(pre.ID())
		assert.Same(t, newer, cached)
	})

	t.Run("customer removed before the write", func(t *testing.T) {
		mf := newMaterialFixture(t)
		mf.allowMetrics()
		pre := builder.NewCustomerBuilder().Build()
		mf.cache.ReplaceAll([]*customer.Customer{pre})

		mf.customers.EXPECT().GetByID(gomock.Any(), pre.ID()).
			Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))

		_, err := mf.cmds.Transition(mf.ctx, mf.request(pre.ID(), material.LineSquareSteel, material.ActionOutbound))

		assert.True(t, errs.Is(err, customer.ErrCustomerNotFound))
		cached, _ := mf.cache.Get(pre.ID())
		assert.Same(t, pre, cached)
	})

	t.Run("stored row decides the write when the cache is stale", func(t *testing.T) {
		mf := newMaterialFixture(t)
		pre := builder.NewCustomerBuilder().Build()
		mf.cache.ReplaceAll([]*customer.Customer{pre})
		shipped := pre.Apply(customer.Patch{}.Set(customer.FieldInverterOutbound, "2024-01-02"))
		unship := customer.Patch{}.Clear(customer.FieldInverterOutbound)
		stored := shipped.Apply(unship)

		mf.customers.EXPECT().GetByID(gomock.Any(), pre.ID()).Return(shipped, nil)
		mf.customers.EXPECT().Update(gomock.Any(), pre.ID(), unship).Return(stored, nil)
		mf.audit.EXPECT().Append(gomock.Any(), auditAction(shared.AuditMaterialTransition)).Return(nil)
		mf.metrics.EXPECT().MaterialTransition("inverter", "toggle", "ok")

		got, err := mf.cmds.Transition(mf.ctx, mf.request(pre.ID(), material.LineInverter, material.ActionToggle))

		require.NoError(t, err)
		assert.Equal(t, material.StateNone, got.State)
		cached, _ := mf.cache.Get(pre.ID())
		assert.Same(t, stored, cached)
	})

	t.Run("stored row rejects what the stale cache allowed", func(t *testing.T) {
		mf := newMaterialFixture(t)
		pre := builder.NewCustomerBuilder().Build()
		mf.cache.ReplaceAll([]*customer.Customer{pre})
		returned := pre.Apply(customer.Patch{}.Set(customer.FieldSquareSteelOutbound, customer.ReturnedSentinel))

		mf.customers.EXPECT().GetByID(gomock.Any(), pre.ID()).Return(returned, nil)
		mf.metrics.EXPECT().MaterialTransition("square_steel", "outbound", "rejected")

		_, err := mf.cmds.Transition(mf.ctx, mf.request(pre.ID(), material.LineSquareSteel, material.ActionOutbound))

		assert.True(t, errs.Is(err, material.ErrInvalidTransition))
		cached, _ := mf.cache.Get(pre.ID())
		assert.Same(t, returned, cached)
		assert.Equal(t, []notify.Level{notify.LevelError}, mf.levels())
	})

	t.Run("invalid transition never touches the store", func(t *testing.T) {
		mf := newMaterialFixture(t)
		pre := builder.NewCustomerBuilder().Build()
		mf.cache.ReplaceAll([]*customer.Customer{pre})
		mf.metrics.EXPECT().MaterialTransition("square_steel", "inbound", "rejected")

		_, err := mf.cmds.Transition(mf.ctx, mf.request(pre.ID(), material.LineSquareSteel, material.ActionInbound))

		assert.True(t, errs.Is(err, material.ErrInvalidTransition))
		cached, _ := mf.cache.Get(pre.ID())
		assert.Same(t, pre, cached)
	})

	t.Run("unknown record", func(t *testing.T) {
		mf := newMaterialFixture(t)
		id := uuid.New()
		mf.customers.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))

		_, err := mf.cmds.Transition(mf.ctx, mf.request(id, material.LineInverter, material.ActionToggle))

		assert.True(t, errs.Is(err, customer.ErrCustomerNotFound))
	})

	t.Run("unknown line or action", func(t *testing.T) {
		mf := newMaterialFixture(t)

		_, err := mf.cmds.Transition(mf.ctx, commands.TransitionRequest{CustomerID: uuid.New(), Line: "steel", Action: "outbound"})
		assert.True(t, errs.Is(err, material.ErrUnknownLine))

		_, err = mf.cmds.Transition(mf.ctx, commands.TransitionRequest{CustomerID: uuid.New(), Line: "inverter", Action: "ship"})
		assert.True(t, errs.Is(err, material.ErrUnknownAction))
	})
}

func TestReplaceBlocklist(t *testing.T) {
	actor := uuid.New()

	t.Run("stores the normalized list", func(t *testing.T) {
		f := newFixture(t)
		want := []string{"李四", "赵六"}

		f.blocklist.EXPECT().Replace(gomock.Any(), want, actor).Return(nil)
		f.audit.EXPECT().Append(gomock.Any(), auditAction(shared.AuditBlocklistReplaced)).Return(nil)

		got, err := commands.NewBlocklistCommands(f.uow, f.clock, f.sink).
			Replace(f.ctx, []string{"李四", " ", "李四", "赵六"}, actor)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, []notify.Level{notify.LevelSuccess}, f.levels())
	})

	t.Run("write failure", func(t *testing.T) {
		f := newFixture(t)
		f.blocklist.EXPECT().Replace(gomock.Any(), []string{}, actor).Return(infra.WrapRepoErr("replace", assert.AnError))

		_, err := commands.NewBlocklistCommands(f.uow, f.clock, f.sink).Replace(f.ctx, nil, actor)

		assert.True(t, errs.Is(err, commands.ErrPersistence))
		assert.Equal(t, []notify.Level{notify.LevelError}, f.levels())
	})
}
