package customer

import (
	"sort"

	"solar-dispatch/internal/pkg/errs"
)

var ErrFieldNotPatchable = errs.Mark(errs.New("field is not patchable"), errs.ErrValidation)

// Field names a nullable customer column that the dispatch core may write.
// Values double as column names, so Patch keys are safe to splice into SQL.
type Field string

const (
	FieldSquareSteelOutbound     Field = "square_steel_outbound_date"
	FieldSquareSteelInbound      Field = "square_steel_inbound_date"
	FieldComponentOutbound       Field = "component_outbound_date"
	FieldComponentInbound        Field = "component_inbound_date"
	FieldInverterOutbound        Field = "inverter_outbound_date"
	FieldDistributionBoxOutbound Field = "distribution_box_outbound_date"
	FieldCopperWireOutbound      Field = "copper_wire_outbound_date"
	FieldAluminumWireOutbound    Field = "aluminum_wire_outbound_date"
	FieldConstructionTeam        Field = "construction_team"
	FieldConstructionTeamPhone   Field = "construction_team_phone"
	FieldDispatchDate            Field = "dispatch_date"
)

var patchable = map[Field]struct{}{
	FieldSquareSteelOutbound:     {},
	FieldSquareSteelInbound:      {},
	FieldComponentOutbound:       {},
	FieldComponentInbound:        {},
	FieldInverterOutbound:        {},
	FieldDistributionBoxOutbound: {},
	FieldCopperWireOutbound:      {},
	FieldAluminumWireOutbound:    {},
	FieldConstructionTeam:        {},
	FieldConstructionTeamPhone:   {},
	FieldDispatchDate:            {},
}

func (f Field) IsValid() bool {
	_, ok := patchable[f]
	return ok
}

// AllFields lists patchable fields sorted by name.
func AllFields() []Field {
	out := make([]Field, 0, len(patchable))
	for f := range patchable {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Patch is a partial overwrite. A nil value clears the column.
type Patch map[Field]*string

func (p Patch) Set(f Field, v string) Patch {
	p[f] = &v
	return p
}

func (p Patch) Clear(f Field) Patch {
	p[f] = nil
	return p
}

// Fields returns the patched fields in a stable order.
func (p Patch) Fields() []Field {
	out := make([]Field, 0, len(p))
	for f := range p {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (p Patch) Validate() error {
	for f := range p {
		if !f.IsValid() {
			return errs.Wrapf(ErrFieldNotPatchable, "field %q", string(f))
		}
	}
	return nil
}
