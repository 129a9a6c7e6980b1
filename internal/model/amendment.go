package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amendment ("aditivo") adjusts a parent contract's total value and,
// for agreement letters, its final validity date. IDs are assigned in
// insertion order, which the ledger treats as chronological order.
type Amendment struct {
	ID               int64
	ParentID         int64
	ParentKind       ContractKind
	AmendmentType    string
	Description      string
	Value            decimal.Decimal
	NewValidityEnd   string // DD/MM/YYYY, blank when the amendment does not move the date
	RegistrationDate string
}

const dateLayout = "02/01/2006"

// ParseValidityDate parses the DD/MM/YYYY date strings used across the
// registry. Blank input is not an error for callers that treat the
// field as optional, so they should check for "" before calling.
func ParseValidityDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}
