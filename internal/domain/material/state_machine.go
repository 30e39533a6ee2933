package material

import (
	"strings"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/ptr"
)

// StateOf derives a line's state from its stored date columns.
func StateOf(c *customer.Customer, l Line) State {
	out := trimmed(c.Value(l.OutboundField()))
	if out == "" {
		return StateNone
	}
	if l.Kind() == KindToggle {
		return StateOutbound
	}
	if out == customer.ReturnedSentinel {
		return StateReturned
	}
	if trimmed(c.Value(l.InboundField())) != "" {
		return StateInbound
	}
	return StateOutbound
}

// Transition computes the overwrite for applying action to line on c. The
// returned patch always covers every column of the line.
func Transition(c *customer.Customer, l Line, action Action, today string) (customer.Patch, State, error) {
	if _, ok := lines[l]; !ok {
		return nil, "", errs.Wrapf(ErrUnknownLine, "line %q", string(l))
	}
	current := StateOf(c, l)
	if l.Kind() == KindToggle {
		return toggleTransition(l, current, action, today)
	}
	return trackedTransition(c, l, current, action, today)
}

func trackedTransition(c *customer.Customer, l Line, current State, action Action, today string) (customer.Patch, State, error) {
	out, in := l.OutboundField(), l.InboundField()
	p := customer.Patch{}

	switch action {
	case ActionOutbound:
		// Re-shipping after a return to warehouse restamps the outbound date.
		if current != StateNone && current != StateInbound {
			return nil, current, invalid(l, current, action)
		}
		return p.Set(out, today).Clear(in), StateOutbound, nil
	case ActionInbound:
		if current != StateOutbound {
			return nil, current, invalid(l, current, action)
		}
		return p.Set(out, trimmed(c.Value(out))).Set(in, today), StateInbound, nil
	case ActionReset:
		return p.Clear(out).Clear(in), StateNone, nil
	case ActionReturn:
		if current == StateReturned {
			return nil, current, invalid(l, current, action)
		}
		return p.Set(out, customer.ReturnedSentinel).Clear(in), StateReturned, nil
	default:
		return nil, current, invalid(l, current, action)
	}
}

func toggleTransition(l Line, current State, action Action, today string) (customer.Patch, State, error) {
	out := l.OutboundField()
	p := customer.Patch{}

	switch action {
	case ActionToggle:
		if current == StateNone {
			return p.Set(out, today), StateOutbound, nil
		}
		return p.Clear(out), StateNone, nil
	case ActionOutbound:
		if current != StateNone {
			return nil, current, invalid(l, current, action)
		}
		return p.Set(out, today), StateOutbound, nil
	case ActionReset:
		return p.Clear(out), StateNone, nil
	default:
		return nil, current, invalid(l, current, action)
	}
}

func invalid(l Line, current State, action Action) error {
	return errs.Wrapf(ErrInvalidTransition, "%s: cannot %s from %s", l, action, current)
}

func trimmed(v *string) string {
	return strings.TrimSpace(ptr.Deref(v))
}
