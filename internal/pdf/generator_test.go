package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nurpe/contract-registry/internal/model"
)

func TestGenerate(t *testing.T) {
	dossier := model.Dossier{
		Contract: model.ContractSummary{
			ID:             3,
			Kind:           model.KindEvent,
			Title:          "Annual symposium",
			Counterparty:   "Conference center",
			EstimatedValue: decimal.RequireFromString("2000.00"),
			TotalValue:     decimal.RequireFromString("2600.00"),
		},
		Amendments: []model.Amendment{
			{ID: 1, AmendmentType: "value", Description: "Extra day", Value: decimal.RequireFromString("600.00")},
		},
	}

	generator, err := NewGenerator()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	content, err := generator.Generate(dossier)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(content) == 0 {
		t.Fatalf("empty document")
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatalf("missing PDF header, got %q", content[:minInt(8, len(content))])
	}
}

func TestGenerateEmptyChain(t *testing.T) {
	dossier := model.Dossier{
		Contract: model.ContractSummary{ID: 4, Kind: model.KindAgreementLetter, Title: "Plain letter"},
	}

	generator, err := NewGenerator()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	content, err := generator.Generate(dossier)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatalf("missing PDF header")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
