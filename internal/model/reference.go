package model

// Supplier and EventTitle are reference entities auto-created on first
// use when a free-text contract field does not match an existing row.

type Supplier struct {
	ID    int64
	Name  string
	TaxID string
	Notes string
}

type EventTitle struct {
	ID        int64
	Title     string
	City      string
	State     string
	DateStart string
	DateEnd   string
}

// CostingEntry is one row of the read-only costing reference table
// behind the cascading institution/project/TA/result/subproject lookup.
type CostingEntry struct {
	ID          int64
	Institution string
	ProjectCode string
	TA          string
	Result      string
	Subproject  string
}
