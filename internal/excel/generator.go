package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/contract-registry/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the dossier as a workbook: a summary sheet with the
// contract header and a ledger sheet with the full amendment chain.
func (g *Generator) Generate(dossier model.Dossier) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, dossier); err != nil {
		return nil, err
	}

	ledgerSheet := "Amendments"
	file.NewSheet(ledgerSheet)
	if err := g.writeLedger(file, ledgerSheet, dossier); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, dossier model.Dossier) error {
	contract := dossier.Contract

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Contract kind")
	set("B1", kindLabel(contract.Kind))
	set("A2", "Contract id")
	set("B2", contract.ID)
	set("A3", "Demand")
	set("B3", contract.DemandCode)
	set("A4", "Title")
	set("B4", contract.Title)
	set("A5", "Counterparty")
	set("B5", contract.Counterparty)
	set("A6", "Validity")
	set("B6", formatPeriod(contract.ValidityStart, contract.ValidityEnd))
	set("A7", "Estimated value")
	set("B7", contract.EstimatedValue.StringFixed(2))
	set("A8", "Total value")
	set("B8", contract.TotalValue.StringFixed(2))
	set("A9", "Amendments")
	set("B9", len(dossier.Amendments))

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 45)
	return nil
}

func (g *Generator) writeLedger(file *excelize.File, sheet string, dossier model.Dossier) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Id", "Type", "Description", "Value", "New final date", "Registered"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, amendment := range dossier.Amendments {
		row := i + 2
		set(fmt.Sprintf("A%d", row), amendment.ID)
		set(fmt.Sprintf("B%d", row), amendment.AmendmentType)
		set(fmt.Sprintf("C%d", row), amendment.Description)
		set(fmt.Sprintf("D%d", row), amendment.Value.StringFixed(2))
		set(fmt.Sprintf("E%d", row), amendment.NewValidityEnd)
		set(fmt.Sprintf("F%d", row), amendment.RegistrationDate)
	}

	totalRow := len(dossier.Amendments) + 3
	set(fmt.Sprintf("C%d", totalRow), "Total value")
	set(fmt.Sprintf("D%d", totalRow), dossier.Contract.TotalValue.StringFixed(2))

	_ = file.SetColWidth(sheet, "A", "A", 8)
	_ = file.SetColWidth(sheet, "B", "B", 16)
	_ = file.SetColWidth(sheet, "C", "C", 50)
	_ = file.SetColWidth(sheet, "D", "F", 16)
	return nil
}

func kindLabel(kind model.ContractKind) string {
	switch kind {
	case model.KindAgreementLetter:
		return "Agreement letter"
	case model.KindProductOrService:
		return "Product / service"
	case model.KindEvent:
		return "Event"
	default:
		return string(kind)
	}
}

func formatPeriod(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return fmt.Sprintf("%s - %s", start, end)
}
