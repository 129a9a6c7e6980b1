package service

import "testing"

func TestOptional(t *testing.T) {
	if filters := optional("institution", ""); filters != nil {
		t.Fatalf("blank value must produce no filter, got %v", filters)
	}
	filters := optional("institution", "FIOCRUZ")
	if len(filters) != 1 || filters["institution"] != "FIOCRUZ" {
		t.Fatalf("unexpected filters %v", filters)
	}
}

func TestMerge(t *testing.T) {
	filters := merge(nil, "ta", "")
	if filters != nil {
		t.Fatalf("blank value must not allocate a map, got %v", filters)
	}

	filters = merge(nil, "ta", "TA-1")
	filters = merge(filters, "result", "R-2")
	filters = merge(filters, "goal", "")

	if len(filters) != 2 || filters["ta"] != "TA-1" || filters["result"] != "R-2" {
		t.Fatalf("unexpected filters %v", filters)
	}
}
