package excel

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/contract-registry/internal/model"
)

func testDossier() model.Dossier {
	return model.Dossier{
		Contract: model.ContractSummary{
			ID:             12,
			Kind:           model.KindAgreementLetter,
			DemandCode:     7,
			Title:          "Research cooperation",
			Counterparty:   "State University",
			ValidityStart:  "01/01/2024",
			ValidityEnd:    "31/12/2025",
			EstimatedValue: decimal.RequireFromString("1000.00"),
			TotalValue:     decimal.RequireFromString("1500.00"),
		},
		Amendments: []model.Amendment{
			{
				ID:               1,
				AmendmentType:    "value",
				Description:      "Scope extension",
				Value:            decimal.RequireFromString("500.00"),
				NewValidityEnd:   "31/12/2025",
				RegistrationDate: "10/06/2024",
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	content, err := NewGenerator().Generate(testDossier())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer file.Close()

	checks := []struct {
		sheet, cell, want string
	}{
		{"Summary", "B1", "Agreement letter"},
		{"Summary", "B4", "Research cooperation"},
		{"Summary", "B6", "01/01/2024 - 31/12/2025"},
		{"Summary", "B8", "1500.00"},
		{"Amendments", "C2", "Scope extension"},
		{"Amendments", "D2", "500.00"},
	}
	for _, check := range checks {
		got, err := file.GetCellValue(check.sheet, check.cell)
		if err != nil {
			t.Fatalf("%s!%s: %v", check.sheet, check.cell, err)
		}
		if got != check.want {
			t.Fatalf("%s!%s: expected %q, got %q", check.sheet, check.cell, check.want, got)
		}
	}
}

func TestKindLabel(t *testing.T) {
	if got := kindLabel(model.KindProductOrService); got != "Product / service" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := kindLabel(model.ContractKind("other")); got != "other" {
		t.Fatalf("unknown kinds fall back to the raw value, got %q", got)
	}
}

func TestFormatPeriod(t *testing.T) {
	if got := formatPeriod("", ""); got != "" {
		t.Fatalf("expected empty period, got %q", got)
	}
	if got := formatPeriod("01/01/2024", "31/12/2024"); got != "01/01/2024 - 31/12/2024" {
		t.Fatalf("unexpected period %q", got)
	}
}
