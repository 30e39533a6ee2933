package dispatch

import (
	"solar-dispatch/internal/domain/customer"

	"github.com/google/uuid"
)

// FilterEligible returns the customers a draw may pick from: unassigned, with
// square steel shipped and not returned, and not brought in by a blocked
// salesman. With a town filter, customers whose address maps to no town or to
// another town are dropped. The input is never modified and an empty result is
// not an error.
func FilterEligible(all []*customer.Customer, blockedSalesmen []string, townFilter *Town) []*customer.Customer {
	blocked := make(map[string]struct{}, len(blockedSalesmen))
	for _, s := range blockedSalesmen {
		blocked[s] = struct{}{}
	}

	pool := make([]*customer.Customer, 0, len(all))
	for _, c := range all {
		if c == nil || c.ID() == uuid.Nil {
			continue
		}
		if c.IsAssigned() {
			continue
		}
		if !c.HasShippedSquareSteel() {
			continue
		}
		if _, ok := blocked[c.Salesman()]; ok {
			continue
		}
		if townFilter != nil {
			town, ok := DeriveTown(c.Address())
			if !ok || town != *townFilter {
				continue
			}
		}
		pool = append(pool, c)
	}
	return pool
}

// TownCount is one row of a pool summary. Town is empty for addresses that
// match no gazetteer entry.
type TownCount struct {
	Town  Town
	Count int
}

// SummarizeByTown counts pool members per derived town in gazetteer order,
// followed by the unmatched bucket when it is non-empty.
func SummarizeByTown(pool []*customer.Customer) []TownCount {
	counts := make(map[Town]int, len(gazetteer)+1)
	for _, c := range pool {
		town, _ := DeriveTown(c.Address())
		counts[town]++
	}
	out := make([]TownCount, 0, len(counts))
	for _, t := range gazetteer {
		if n := counts[t]; n > 0 {
			out = append(out, TownCount{Town: t, Count: n})
		}
	}
	if n := counts[""]; n > 0 {
		out = append(out, TownCount{Count: n})
	}
	return out
}
