package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nurpe/contract-registry/internal/model"
)

// Aggregate is the derived state of a contract after applying its
// amendment chain.
type Aggregate struct {
	TotalValue decimal.Decimal
	FinalDate  string
}

// RecomputeAggregate derives a contract's total value and final
// validity date from its base value, its original final date and the
// full amendment chain. The chain may arrive in any order; it is
// evaluated by ascending id. The function is pure: calling it twice on
// the same inputs yields the same result, and it never writes anything.
//
// Total value is base plus the sum of all amendment values (signed;
// blank values contribute zero). The final date is the latest validity
// date named by any amendment, falling back to the original when no
// amendment moves the date or the chain is empty. Only agreement
// letters carry a meaningful final date; callers for the other kinds
// pass "" and ignore the result.
func RecomputeAggregate(base decimal.Decimal, originalFinalDate string, chain []model.Amendment) Aggregate {
	sorted := make([]model.Amendment, len(chain))
	copy(sorted, chain)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	total := base
	finalDate := originalFinalDate
	var finalParsed time.Time
	if originalFinalDate != "" {
		if parsed, err := model.ParseValidityDate(originalFinalDate); err == nil {
			finalParsed = parsed
		}
	}

	for _, a := range sorted {
		total = total.Add(a.Value)

		if a.NewValidityEnd == "" {
			continue
		}
		parsed, err := model.ParseValidityDate(a.NewValidityEnd)
		if err != nil {
			// Malformed dates never move the derived final date.
			continue
		}
		if finalParsed.IsZero() || parsed.After(finalParsed) {
			finalParsed = parsed
			finalDate = a.NewValidityEnd
		}
	}

	return Aggregate{TotalValue: total, FinalDate: finalDate}
}

// lastInChain reports whether id is the highest-id amendment of the
// chain. An empty chain has no last element.
func lastInChain(chain []model.Amendment, id int64) bool {
	if len(chain) == 0 {
		return false
	}
	last := chain[0].ID
	for _, a := range chain[1:] {
		if a.ID > last {
			last = a.ID
		}
	}
	return last == id
}
