package model

import "testing"

func TestParseValidityDate(t *testing.T) {
	parsed, err := ParseValidityDate("05/06/2025")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Day() != 5 || int(parsed.Month()) != 6 || parsed.Year() != 2025 {
		t.Fatalf("day-first layout expected, got %v", parsed)
	}
}

func TestParseValidityDateRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"", "2025-06-05", "31/02/2025", "5/6/25"} {
		if _, err := ParseValidityDate(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestContractKindValid(t *testing.T) {
	for _, kind := range []ContractKind{KindAgreementLetter, KindProductOrService, KindEvent} {
		if !kind.Valid() {
			t.Fatalf("%s must be valid", kind)
		}
	}
	if ContractKind("lease").Valid() {
		t.Fatalf("unknown kind must be invalid")
	}
}
