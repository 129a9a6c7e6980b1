package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
)

type fakeAmendmentStore struct {
	nextID int64
	rows   map[int64]model.Amendment
}

func newFakeAmendmentStore() *fakeAmendmentStore {
	return &fakeAmendmentStore{rows: make(map[int64]model.Amendment)}
}

func (s *fakeAmendmentStore) Create(_ context.Context, a model.Amendment) (int64, error) {
	s.nextID++
	a.ID = s.nextID
	s.rows[a.ID] = a
	return a.ID, nil
}

func (s *fakeAmendmentStore) GetByID(_ context.Context, id int64) (*model.Amendment, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (s *fakeAmendmentStore) ListByParent(_ context.Context, parentID int64, kind model.ContractKind) ([]model.Amendment, error) {
	var out []model.Amendment
	for _, row := range s.rows {
		if row.ParentID == parentID && row.ParentKind == kind {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeAmendmentStore) ListAll(_ context.Context) ([]model.Amendment, error) {
	var out []model.Amendment
	for _, row := range s.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeAmendmentStore) Update(_ context.Context, id int64, a model.Amendment) error {
	if _, ok := s.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	a.ID = id
	s.rows[id] = a
	return nil
}

func (s *fakeAmendmentStore) Delete(_ context.Context, id int64) error {
	delete(s.rows, id)
	return nil
}

type fakeContracts struct {
	base       decimal.Decimal
	original   string
	missing    bool
	writeCount int
	lastTotal  decimal.Decimal
	lastDate   string
}

func (c *fakeContracts) ReadBase(_ context.Context, _ int64, _ model.ContractKind) (decimal.Decimal, string, error) {
	if c.missing {
		return decimal.Zero, "", gorm.ErrRecordNotFound
	}
	return c.base, c.original, nil
}

func (c *fakeContracts) WriteAggregate(_ context.Context, _ int64, _ model.ContractKind, total decimal.Decimal, finalDate string) error {
	c.writeCount++
	c.lastTotal = total
	c.lastDate = finalDate
	return nil
}

type fakeAudit struct {
	actions []string
	err     error
}

func (a *fakeAudit) Append(_ context.Context, _ string, action string) error {
	if a.err != nil {
		return a.err
	}
	a.actions = append(a.actions, action)
	return nil
}

func newTestAmendmentService(base string, original string) (*AmendmentService, *fakeAmendmentStore, *fakeContracts, *fakeAudit) {
	store := newFakeAmendmentStore()
	contracts := &fakeContracts{base: decimal.RequireFromString(base), original: original}
	audit := &fakeAudit{}
	svc := NewAmendmentService(store, contracts, audit, zerolog.Nop())
	return svc, store, contracts, audit
}

func addAmendment(t *testing.T, svc *AmendmentService, value string, newEnd string) *model.Amendment {
	t.Helper()
	a, err := svc.Add(context.Background(), "tester", AmendmentInput{
		ParentID:       1,
		ParentKind:     model.KindAgreementLetter,
		AmendmentType:  "value",
		Value:          decimal.RequireFromString(value),
		NewValidityEnd: newEnd,
	})
	if err != nil {
		t.Fatalf("add amendment: %v", err)
	}
	return a
}

func TestAmendmentService_AddRecomputesTotal(t *testing.T) {
	svc, _, contracts, _ := newTestAmendmentService("1000.00", "01/01/2024")

	addAmendment(t, svc, "500.00", "")

	if !contracts.lastTotal.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("expected total 1500.00, got %s", contracts.lastTotal)
	}
	if contracts.lastDate != "01/01/2024" {
		t.Fatalf("expected original final date, got %q", contracts.lastDate)
	}
}

func TestAmendmentService_AddParentMissing(t *testing.T) {
	svc, store, contracts, _ := newTestAmendmentService("0", "")
	contracts.missing = true

	_, err := svc.Add(context.Background(), "tester", AmendmentInput{
		ParentID:   99,
		ParentKind: model.KindEvent,
		Value:      decimal.Zero,
	})
	if !errors.Is(err, ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound, got %v", err)
	}
	if len(store.rows) != 0 {
		t.Fatalf("no amendment must be written for a missing parent")
	}
}

func TestAmendmentService_AddRejectsBadInput(t *testing.T) {
	svc, _, _, _ := newTestAmendmentService("0", "")

	cases := []AmendmentInput{
		{ParentID: 0, ParentKind: model.KindEvent},
		{ParentID: 1, ParentKind: model.ContractKind("lease")},
		{ParentID: 1, ParentKind: model.KindEvent, NewValidityEnd: "2024-01-10"},
	}
	for i, in := range cases {
		if _, err := svc.Add(context.Background(), "tester", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestAmendmentService_OnlyLastIsMutable(t *testing.T) {
	svc, _, _, _ := newTestAmendmentService("1000.00", "")

	a1 := addAmendment(t, svc, "100.00", "")
	a2 := addAmendment(t, svc, "200.00", "")
	a3 := addAmendment(t, svc, "300.00", "")

	in := AmendmentInput{Value: decimal.RequireFromString("1.00")}

	if err := svc.Update(context.Background(), "tester", a1.ID, in); !errors.Is(err, ErrInvalidAmendmentOrder) {
		t.Fatalf("update of first amendment: expected ErrInvalidAmendmentOrder, got %v", err)
	}
	if err := svc.Delete(context.Background(), "tester", a2.ID); !errors.Is(err, ErrInvalidAmendmentOrder) {
		t.Fatalf("delete of middle amendment: expected ErrInvalidAmendmentOrder, got %v", err)
	}
	if err := svc.Delete(context.Background(), "tester", a3.ID); err != nil {
		t.Fatalf("delete of last amendment must succeed, got %v", err)
	}
	if err := svc.Delete(context.Background(), "tester", a2.ID); err != nil {
		t.Fatalf("after removing the tail, a2 becomes the last: %v", err)
	}
}

func TestAmendmentService_SequentialDeleteRevertsToBase(t *testing.T) {
	svc, _, contracts, _ := newTestAmendmentService("1000.00", "01/01/2024")

	addAmendment(t, svc, "500.00", "31/12/2025")
	a2 := addAmendment(t, svc, "250.00", "")

	if !contracts.lastTotal.Equal(decimal.RequireFromString("1750.00")) {
		t.Fatalf("expected 1750.00 after two amendments, got %s", contracts.lastTotal)
	}

	if err := svc.Delete(context.Background(), "tester", a2.ID); err != nil {
		t.Fatalf("delete a2: %v", err)
	}
	if !contracts.lastTotal.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("expected 1500.00 after deleting a2, got %s", contracts.lastTotal)
	}
	if contracts.lastDate != "31/12/2025" {
		t.Fatalf("a1's validity extension must still apply, got %q", contracts.lastDate)
	}

	if err := svc.Delete(context.Background(), "tester", 1); err != nil {
		t.Fatalf("delete a1: %v", err)
	}
	if !contracts.lastTotal.Equal(decimal.RequireFromString("1000.00")) {
		t.Fatalf("expected base 1000.00 with an empty chain, got %s", contracts.lastTotal)
	}
	if contracts.lastDate != "01/01/2024" {
		t.Fatalf("empty chain must revert to the original final date, got %q", contracts.lastDate)
	}
}

func TestAmendmentService_EditReplacesValue(t *testing.T) {
	svc, _, contracts, _ := newTestAmendmentService("1000.00", "")

	a1 := addAmendment(t, svc, "500.00", "")
	if !contracts.lastTotal.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("expected 1500.00, got %s", contracts.lastTotal)
	}

	err := svc.Update(context.Background(), "tester", a1.ID, AmendmentInput{
		Value: decimal.RequireFromString("300.00"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !contracts.lastTotal.Equal(decimal.RequireFromString("1300.00")) {
		t.Fatalf("an edit replaces the contribution, expected 1300.00, got %s", contracts.lastTotal)
	}
}

func TestAmendmentService_UpdateKeepsParent(t *testing.T) {
	svc, store, _, _ := newTestAmendmentService("0", "")

	a1 := addAmendment(t, svc, "10.00", "")

	err := svc.Update(context.Background(), "tester", a1.ID, AmendmentInput{
		ParentID:   42,
		ParentKind: model.KindEvent,
		Value:      decimal.RequireFromString("10.00"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	row := store.rows[a1.ID]
	if row.ParentID != 1 || row.ParentKind != model.KindAgreementLetter {
		t.Fatalf("re-parenting must be ignored, got parent %d/%s", row.ParentID, row.ParentKind)
	}
}

func TestAmendmentService_NegativeValuesAccepted(t *testing.T) {
	svc, _, contracts, _ := newTestAmendmentService("1000.00", "")

	addAmendment(t, svc, "-1500.00", "")

	if !contracts.lastTotal.Equal(decimal.RequireFromString("-500.00")) {
		t.Fatalf("negative chains are allowed, expected -500.00, got %s", contracts.lastTotal)
	}
}

func TestAmendmentService_AuditFailureDoesNotFailOperation(t *testing.T) {
	svc, _, _, audit := newTestAmendmentService("100.00", "")
	audit.err = errors.New("audit store down")

	if _, err := svc.Add(context.Background(), "tester", AmendmentInput{
		ParentID:   1,
		ParentKind: model.KindAgreementLetter,
		Value:      decimal.RequireFromString("5.00"),
	}); err != nil {
		t.Fatalf("audit failures must not surface, got %v", err)
	}
}

func TestAmendmentService_NotFound(t *testing.T) {
	svc, _, _, _ := newTestAmendmentService("0", "")

	if _, err := svc.GetByID(context.Background(), 77); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Update(context.Background(), "tester", 77, AmendmentInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := svc.Delete(context.Background(), "tester", 77); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
