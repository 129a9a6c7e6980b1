package model

import "github.com/shopspring/decimal"

type ContractKind string

const (
	KindAgreementLetter  ContractKind = "agreement_letter"
	KindProductOrService ContractKind = "product_or_service"
	KindEvent            ContractKind = "event"
)

func (k ContractKind) Valid() bool {
	switch k {
	case KindAgreementLetter, KindProductOrService, KindEvent:
		return true
	}
	return false
}

// CostingAttributes is the fixed classification block shared by the
// contract kinds, sourced from the costing reference table.
type CostingAttributes struct {
	Institution string
	Instrument  string
	Subproject  string
	TA          string
	PTA         string
	Action      string
	Result      string
	Goal        string
}

// AgreementLetter keeps two final-validity fields: ValidityEnd is the
// current (possibly amendment-derived) date, OriginalValidityEnd is the
// snapshot taken at creation and never mutated, so deleting the whole
// amendment chain reverts cleanly instead of accumulating drift.
type AgreementLetter struct {
	ID                   int64
	DemandCode           int64
	Costing              CostingAttributes
	ContractNumber       string
	ValidityStart        string
	ValidityEnd          string
	OriginalValidityEnd  string
	SecondaryInstitution string
	TaxID                string
	ProjectTitle         string
	Objective            string
	EstimatedValue       decimal.Decimal
	TotalValue           decimal.Decimal
	Notes                string
}

type ProductOrService struct {
	ID             int64
	DemandCode     int64
	Supplier       string
	Modality       string
	Objective      string
	ValidityStart  string
	ValidityEnd    string
	Notes          string
	EstimatedValue decimal.Decimal
	TotalValue     decimal.Decimal
	Costing        CostingAttributes
}

type Event struct {
	ID             int64
	DemandCode     int64
	Costing        CostingAttributes
	EventTitle     string
	Supplier       string
	Notes          string
	EstimatedValue decimal.Decimal
	TotalValue     decimal.Decimal
}
