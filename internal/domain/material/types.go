package material

import (
	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/pkg/errs"
)

var (
	ErrUnknownLine       = errs.Mark(errs.New("unknown material line"), errs.ErrValidation)
	ErrUnknownAction     = errs.Mark(errs.New("unknown material action"), errs.ErrValidation)
	ErrInvalidTransition = errs.Mark(errs.New("invalid material transition"), errs.ErrValidation)
)

type Line string

const (
	LineSquareSteel     Line = "square_steel"
	LineComponent       Line = "component"
	LineInverter        Line = "inverter"
	LineDistributionBox Line = "distribution_box"
	LineCopperWire      Line = "copper_wire"
	LineAluminumWire    Line = "aluminum_wire"
)

// Kind separates lines with a full outbound/inbound/returned lifecycle from
// accessory lines that only record whether they shipped.
type Kind int

const (
	KindTracked Kind = iota + 1
	KindToggle
)

type lineSpec struct {
	kind     Kind
	outbound customer.Field
	inbound  customer.Field
}

var lines = map[Line]lineSpec{
	LineSquareSteel:     {kind: KindTracked, outbound: customer.FieldSquareSteelOutbound, inbound: customer.FieldSquareSteelInbound},
	LineComponent:       {kind: KindTracked, outbound: customer.FieldComponentOutbound, inbound: customer.FieldComponentInbound},
	LineInverter:        {kind: KindToggle, outbound: customer.FieldInverterOutbound},
	LineDistributionBox: {kind: KindToggle, outbound: customer.FieldDistributionBoxOutbound},
	LineCopperWire:      {kind: KindToggle, outbound: customer.FieldCopperWireOutbound},
	LineAluminumWire:    {kind: KindToggle, outbound: customer.FieldAluminumWireOutbound},
}

// AllLines is the display order used by the warehouse dashboard.
var AllLines = []Line{
	LineSquareSteel,
	LineComponent,
	LineInverter,
	LineDistributionBox,
	LineCopperWire,
	LineAluminumWire,
}

func ParseLine(s string) (Line, error) {
	l := Line(s)
	if _, ok := lines[l]; !ok {
		return "", errs.Wrapf(ErrUnknownLine, "line %q", s)
	}
	return l, nil
}

func (l Line) Kind() Kind {
	return lines[l].kind
}

func (l Line) OutboundField() customer.Field {
	return lines[l].outbound
}

// InboundField is empty for toggle lines.
func (l Line) InboundField() customer.Field {
	return lines[l].inbound
}

type State string

const (
	StateNone     State = "none"
	StateOutbound State = "outbound"
	StateInbound  State = "inbound"
	StateReturned State = "returned"
)

type Action string

const (
	ActionOutbound Action = "outbound"
	ActionInbound  Action = "inbound"
	ActionReset    Action = "reset"
	ActionReturn   Action = "return"
	ActionToggle   Action = "toggle"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionOutbound, ActionInbound, ActionReset, ActionReturn, ActionToggle:
		return a, nil
	default:
		return "", errs.Wrapf(ErrUnknownAction, "action %q", s)
	}
}
