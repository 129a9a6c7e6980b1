package model

import "github.com/shopspring/decimal"

// ContractSummary is the kind-agnostic view of a contract used by the
// export generators.
type ContractSummary struct {
	ID             int64
	Kind           ContractKind
	DemandCode     int64
	Title          string
	Counterparty   string
	ValidityStart  string
	ValidityEnd    string
	EstimatedValue decimal.Decimal
	TotalValue     decimal.Decimal
}

// Dossier bundles a contract with its full amendment chain for the
// XLSX and PDF exports.
type Dossier struct {
	Contract   ContractSummary
	Amendments []Amendment
}
