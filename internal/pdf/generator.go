package pdf

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/contract-registry/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Helvetica"}, nil
}

// Generate renders a contract statement: header block, amendment
// ledger table and the derived totals.
func (g *Generator) Generate(dossier model.Dossier) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	contract := dossier.Contract

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, tr("Contract statement"), "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(kindLabel(contract.Kind)+" no. "+itoa(contract.ID)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.addHeaderLine(pdf, tr, "Title", contract.Title)
	g.addHeaderLine(pdf, tr, "Counterparty", contract.Counterparty)
	if contract.DemandCode != 0 {
		g.addHeaderLine(pdf, tr, "Demand", itoa(contract.DemandCode))
	}
	if contract.ValidityStart != "" || contract.ValidityEnd != "" {
		g.addHeaderLine(pdf, tr, "Validity", contract.ValidityStart+" - "+contract.ValidityEnd)
	}
	g.addHeaderLine(pdf, tr, "Estimated value", contract.EstimatedValue.StringFixed(2))
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, tr("Amendments"), "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	headers := []string{"Id", "Type", "Description", "Value", "New final date"}
	colWidths := []float64{14, 30, 76, 30, 30}
	g.drawTableRow(pdf, tr, headers, colWidths, true)

	if len(dossier.Amendments) == 0 {
		pdf.CellFormat(0, 7, tr("No amendments registered."), "1", 1, "L", false, 0, "")
	}
	for _, amendment := range dossier.Amendments {
		row := []string{
			itoa(amendment.ID),
			amendment.AmendmentType,
			amendment.Description,
			amendment.Value.StringFixed(2),
			amendment.NewValidityEnd,
		}
		g.drawTableRow(pdf, tr, row, colWidths, false)
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, tr("Total value: "+contract.TotalValue.StringFixed(2)), "", 1, "R", false, 0, "")
	if contract.ValidityEnd != "" {
		pdf.SetFont(g.fontName, "", 11)
		pdf.CellFormat(0, 6, tr("Current final validity date: "+contract.ValidityEnd), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) addHeaderLine(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}

func (g *Generator) drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cells []string, widths []float64, header bool) {
	if header {
		pdf.SetFont(g.fontName, "B", 10)
	} else {
		pdf.SetFont(g.fontName, "", 10)
	}
	for i, cell := range cells {
		align := "L"
		if i == 0 || i == 3 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func kindLabel(kind model.ContractKind) string {
	switch kind {
	case model.KindAgreementLetter:
		return "Agreement letter"
	case model.KindProductOrService:
		return "Product / service contract"
	case model.KindEvent:
		return "Event contract"
	default:
		return string(kind)
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
