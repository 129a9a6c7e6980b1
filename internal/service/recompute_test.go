package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nurpe/contract-registry/internal/model"
)

func dec(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	value, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", raw, err)
	}
	return value
}

func TestRecomputeAggregate_Additivity(t *testing.T) {
	base := dec(t, "1000.00")
	chain := []model.Amendment{
		{ID: 1, Value: dec(t, "500.00")},
		{ID: 2, Value: dec(t, "250.00")},
		{ID: 3, Value: dec(t, "-100.00")},
	}

	agg := RecomputeAggregate(base, "", chain)
	if !agg.TotalValue.Equal(dec(t, "1650.00")) {
		t.Fatalf("expected 1650.00, got %s", agg.TotalValue)
	}
}

func TestRecomputeAggregate_OrderInsensitive(t *testing.T) {
	base := dec(t, "100.00")
	sorted := []model.Amendment{
		{ID: 1, Value: dec(t, "10.00"), NewValidityEnd: "10/01/2024"},
		{ID: 2, Value: dec(t, "20.00"), NewValidityEnd: "05/06/2025"},
		{ID: 3, Value: dec(t, "30.00")},
	}
	shuffled := []model.Amendment{sorted[2], sorted[0], sorted[1]}

	a := RecomputeAggregate(base, "01/01/2023", sorted)
	b := RecomputeAggregate(base, "01/01/2023", shuffled)

	if !a.TotalValue.Equal(b.TotalValue) {
		t.Fatalf("totals differ: %s vs %s", a.TotalValue, b.TotalValue)
	}
	if a.FinalDate != b.FinalDate {
		t.Fatalf("final dates differ: %q vs %q", a.FinalDate, b.FinalDate)
	}
}

func TestRecomputeAggregate_Idempotent(t *testing.T) {
	base := dec(t, "42.50")
	chain := []model.Amendment{
		{ID: 7, Value: dec(t, "7.50"), NewValidityEnd: "31/12/2024"},
	}

	first := RecomputeAggregate(base, "01/01/2024", chain)
	second := RecomputeAggregate(base, "01/01/2024", chain)

	if !first.TotalValue.Equal(second.TotalValue) || first.FinalDate != second.FinalDate {
		t.Fatalf("recomputation is not idempotent: %+v vs %+v", first, second)
	}
}

func TestRecomputeAggregate_EmptyChainRevertsToBase(t *testing.T) {
	base := dec(t, "1000.00")

	agg := RecomputeAggregate(base, "15/03/2023", nil)
	if !agg.TotalValue.Equal(base) {
		t.Fatalf("expected base value %s, got %s", base, agg.TotalValue)
	}
	if agg.FinalDate != "15/03/2023" {
		t.Fatalf("expected original final date, got %q", agg.FinalDate)
	}
}

func TestRecomputeAggregate_DateMaxSelection(t *testing.T) {
	base := dec(t, "0")
	chain := []model.Amendment{
		{ID: 1, NewValidityEnd: "10/01/2024"},
		{ID: 2, NewValidityEnd: "05/06/2025"},
		{ID: 3, NewValidityEnd: ""},
	}

	agg := RecomputeAggregate(base, "01/01/2023", chain)
	if agg.FinalDate != "05/06/2025" {
		t.Fatalf("expected 05/06/2025, got %q", agg.FinalDate)
	}
}

func TestRecomputeAggregate_OriginalDateWinsWhenLater(t *testing.T) {
	chain := []model.Amendment{
		{ID: 1, NewValidityEnd: "10/01/2024"},
	}

	agg := RecomputeAggregate(decimal.Zero, "01/01/2026", chain)
	if agg.FinalDate != "01/01/2026" {
		t.Fatalf("expected original date to win, got %q", agg.FinalDate)
	}
}

func TestRecomputeAggregate_SkipsMalformedDates(t *testing.T) {
	chain := []model.Amendment{
		{ID: 1, NewValidityEnd: "not-a-date"},
		{ID: 2, NewValidityEnd: "20/07/2024"},
	}

	agg := RecomputeAggregate(decimal.Zero, "01/01/2023", chain)
	if agg.FinalDate != "20/07/2024" {
		t.Fatalf("expected 20/07/2024, got %q", agg.FinalDate)
	}
}

func TestRecomputeAggregate_BlankValueContributesZero(t *testing.T) {
	base := dec(t, "300.00")
	chain := []model.Amendment{
		{ID: 1},
		{ID: 2, Value: dec(t, "50.00")},
	}

	agg := RecomputeAggregate(base, "", chain)
	if !agg.TotalValue.Equal(dec(t, "350.00")) {
		t.Fatalf("expected 350.00, got %s", agg.TotalValue)
	}
}

func TestLastInChain(t *testing.T) {
	chain := []model.Amendment{{ID: 3}, {ID: 1}, {ID: 2}}

	if !lastInChain(chain, 3) {
		t.Fatalf("expected id 3 to be last")
	}
	if lastInChain(chain, 1) || lastInChain(chain, 2) {
		t.Fatalf("non-last ids must not be reported as last")
	}
	if lastInChain(nil, 1) {
		t.Fatalf("empty chain has no last element")
	}
}
