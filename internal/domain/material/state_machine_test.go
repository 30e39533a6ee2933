//go:build unit

package material_test

import (
	"testing"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/domain/material"
	"solar-dispatch/internal/pkg/ptr"
	"solar-dispatch/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = "2024-03-15"

func TestStateOf(t *testing.T) {
	tests := []struct {
		name string
		c    *builder.CustomerBuilder
		line material.Line
		want material.State
	}{
		{name: "nothing stored", c: builder.NewCustomerBuilder(), line: material.LineSquareSteel, want: material.StateNone},
		{name: "outbound", c: builder.Eligible(), line: material.LineSquareSteel, want: material.StateOutbound},
		{
			name: "inbound",
			c:    builder.Eligible().WithValue(customer.FieldSquareSteelInbound, "2024-02-01"),
			line: material.LineSquareSteel,
			want: material.StateInbound,
		},
		{
			name: "returned",
			c:    builder.NewCustomerBuilder().WithValue(customer.FieldComponentOutbound, customer.ReturnedSentinel),
			line: material.LineComponent,
			want: material.StateReturned,
		},
		{
			name: "inbound without outbound is none",
			c:    builder.NewCustomerBuilder().WithValue(customer.FieldComponentInbound, "2024-02-01"),
			line: material.LineComponent,
			want: material.StateNone,
		},
		{
			name: "toggle shipped",
			c:    builder.NewCustomerBuilder().WithValue(customer.FieldInverterOutbound, "2024-02-01"),
			line: material.LineInverter,
			want: material.StateOutbound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, material.StateOf(tt.c.Build(), tt.line))
		})
	}
}

func TestTransition_Tracked(t *testing.T) {
	out := customer.FieldSquareSteelOutbound
	in := customer.FieldSquareSteelInbound
	none := builder.NewCustomerBuilder
	shipped := func() *builder.CustomerBuilder { return builder.NewCustomerBuilder().WithValue(out, "2024-01-01") }
	inbound := func() *builder.CustomerBuilder { return shipped().WithValue(in, "2024-02-01") }
	returned := func() *builder.CustomerBuilder { return builder.NewCustomerBuilder().WithValue(out, customer.ReturnedSentinel) }

	tests := []struct {
		name      string
		c         *builder.CustomerBuilder
		action    material.Action
		wantPatch customer.Patch
		wantState material.State
		wantErr   bool
	}{
		{name: "none to outbound", c: none(), action: material.ActionOutbound,
			wantPatch: customer.Patch{out: ptr.Of(today), in: nil}, wantState: material.StateOutbound},
		{name: "inbound to outbound restamps", c: inbound(), action: material.ActionOutbound,
			wantPatch: customer.Patch{out: ptr.Of(today), in: nil}, wantState: material.StateOutbound},
		{name: "outbound to outbound", c: shipped(), action: material.ActionOutbound, wantErr: true},
		{name: "returned to outbound", c: returned(), action: material.ActionOutbound, wantErr: true},
		{name: "outbound to inbound keeps date", c: shipped(), action: material.ActionInbound,
			wantPatch: customer.Patch{out: ptr.Of("2024-01-01"), in: ptr.Of(today)}, wantState: material.StateInbound},
		{name: "none to inbound", c: none(), action: material.ActionInbound, wantErr: true},
		{name: "returned to inbound", c: returned(), action: material.ActionInbound, wantErr: true},
		{name: "reset from inbound", c: inbound(), action: material.ActionReset,
			wantPatch: customer.Patch{out: nil, in: nil}, wantState: material.StateNone},
		{name: "reset from none", c: none(), action: material.ActionReset,
			wantPatch: customer.Patch{out: nil, in: nil}, wantState: material.StateNone},
		{name: "return from inbound", c: inbound(), action: material.ActionReturn,
			wantPatch: customer.Patch{out: ptr.Of(customer.ReturnedSentinel), in: nil}, wantState: material.StateReturned},
		{name: "return from none", c: none(), action: material.ActionReturn,
			wantPatch: customer.Patch{out: ptr.Of(customer.ReturnedSentinel), in: nil}, wantState: material.StateReturned},
		{name: "return twice", c: returned(), action: material.ActionReturn, wantErr: true},
		{name: "toggle on tracked line", c: none(), action: material.ActionToggle, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, state, err := material.Transition(tt.c.Build(), material.LineSquareSteel, tt.action, today)

			if tt.wantErr {
				require.ErrorIs(t, err, material.ErrInvalidTransition)
				assert.Nil(t, patch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, state)
			if diff := cmp.Diff(tt.wantPatch, patch); diff != "" {
				t.Errorf("patch mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransition_Toggle(t *testing.T) {
	f := customer.FieldCopperWireOutbound
	off := builder.NewCustomerBuilder
	on := func() *builder.CustomerBuilder { return builder.NewCustomerBuilder().WithValue(f, "2024-01-01") }

	tests := []struct {
		name      string
		c         *builder.CustomerBuilder
		action    material.Action
		wantPatch customer.Patch
		wantState material.State
		wantErr   bool
	}{
		{name: "toggle on", c: off(), action: material.ActionToggle, wantPatch: customer.Patch{f: ptr.Of(today)}, wantState: material.StateOutbound},
		{name: "toggle off", c: on(), action: material.ActionToggle, wantPatch: customer.Patch{f: nil}, wantState: material.StateNone},
		{name: "outbound when off", c: off(), action: material.ActionOutbound, wantPatch: customer.Patch{f: ptr.Of(today)}, wantState: material.StateOutbound},
		{name: "outbound when on", c: on(), action: material.ActionOutbound, wantErr: true},
		{name: "reset", c: on(), action: material.ActionReset, wantPatch: customer.Patch{f: nil}, wantState: material.StateNone},
		{name: "inbound", c: on(), action: material.ActionInbound, wantErr: true},
		{name: "return", c: on(), action: material.ActionReturn, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, state, err := material.Transition(tt.c.Build(), material.LineCopperWire, tt.action, today)

			if tt.wantErr {
				require.ErrorIs(t, err, material.ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, state)
			if diff := cmp.Diff(tt.wantPatch, patch); diff != "" {
				t.Errorf("patch mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// none -[outbound]-> outbound -[return]-> returned
func TestTransition_OutboundThenReturn(t *testing.T) {
	c := builder.NewCustomerBuilder().Build()

	patch, state, err := material.Transition(c, material.LineSquareSteel, material.ActionOutbound, "2024-01-01")
	require.NoError(t, err)
	require.Equal(t, material.StateOutbound, state)
	c = c.Apply(patch)

	patch, state, err = material.Transition(c, material.LineSquareSteel, material.ActionReturn, today)
	require.NoError(t, err)
	c = c.Apply(patch)

	assert.Equal(t, material.StateReturned, state)
	assert.Equal(t, customer.ReturnedSentinel, *c.Value(customer.FieldSquareSteelOutbound))
	assert.Nil(t, c.Value(customer.FieldSquareSteelInbound))
	assert.False(t, c.HasShippedSquareSteel())
}

func TestParse(t *testing.T) {
	l, err := material.ParseLine("aluminum_wire")
	require.NoError(t, err)
	assert.Equal(t, material.KindToggle, l.Kind())
	assert.Empty(t, l.InboundField())

	_, err = material.ParseLine("cement")
	assert.ErrorIs(t, err, material.ErrUnknownLine)

	_, err = material.ParseAction("ship")
	assert.ErrorIs(t, err, material.ErrUnknownAction)

	_, _, err = material.Transition(builder.NewCustomerBuilder().Build(), material.Line("cement"), material.ActionReset, today)
	assert.ErrorIs(t, err, material.ErrUnknownLine)
}
