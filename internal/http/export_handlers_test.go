package http

import (
	"testing"

	"github.com/nurpe/contract-registry/internal/model"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Research cooperation", "Research-cooperation"},
		{"  padded  ", "padded"},
		{"a/b\\c:d", "a-b-c-d"},
		{"---", ""},
		{"plain_name-1", "plain_name-1"},
	}
	for _, c := range cases {
		if got := sanitizeFileName(c.in); got != c.want {
			t.Fatalf("sanitizeFileName(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestBuildExportName(t *testing.T) {
	dossier := &model.Dossier{Contract: model.ContractSummary{
		ID:    9,
		Kind:  model.KindEvent,
		Title: "Annual symposium 2025",
	}}
	if got := buildExportName(dossier, "pdf"); got != "contract-event-Annual-symposium-2025.pdf" {
		t.Fatalf("unexpected export name %q", got)
	}

	dossier.Contract.Title = "///"
	if got := buildExportName(dossier, "xlsx"); got != "contract-event-9.xlsx" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}
