package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/nurpe/contract-registry/internal/model"
)

// AmendmentStore is the persistence contract for the amendment ledger.
type AmendmentStore interface {
	Create(ctx context.Context, a model.Amendment) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Amendment, error)
	ListByParent(ctx context.Context, parentID int64, kind model.ContractKind) ([]model.Amendment, error)
	ListAll(ctx context.Context) ([]model.Amendment, error)
	Update(ctx context.Context, id int64, a model.Amendment) error
	Delete(ctx context.Context, id int64) error
}

// ContractAccessor reads base values and writes recomputed aggregates,
// kind-agnostically, for the three contract kinds.
type ContractAccessor interface {
	ReadBase(ctx context.Context, id int64, kind model.ContractKind) (decimal.Decimal, string, error)
	WriteAggregate(ctx context.Context, id int64, kind model.ContractKind, total decimal.Decimal, finalDate string) error
}

// AuditSink receives the best-effort audit trail.
type AuditSink interface {
	Append(ctx context.Context, actor, action string) error
}

// AmendmentService orchestrates the amendment lifecycle: every write to
// the ledger is followed by a fresh reload of the parent's chain and a
// recomputation of the contract aggregate. The chain is never cached
// across calls.
type AmendmentService struct {
	store     AmendmentStore
	contracts ContractAccessor
	audit     AuditSink
	log       zerolog.Logger
}

func NewAmendmentService(store AmendmentStore, contracts ContractAccessor, audit AuditSink, log zerolog.Logger) *AmendmentService {
	return &AmendmentService{
		store:     store,
		contracts: contracts,
		audit:     audit,
		log:       log,
	}
}

type AmendmentInput struct {
	ParentID         int64
	ParentKind       model.ContractKind
	AmendmentType    string
	Description      string
	Value            decimal.Decimal
	NewValidityEnd   string
	RegistrationDate string
}

func (in AmendmentInput) validate() error {
	if in.ParentID <= 0 {
		return fmt.Errorf("%w: parent_id is required", ErrInvalidInput)
	}
	if !in.ParentKind.Valid() {
		return fmt.Errorf("%w: unknown parent kind %q", ErrInvalidInput, in.ParentKind)
	}
	if in.NewValidityEnd != "" {
		if _, err := model.ParseValidityDate(in.NewValidityEnd); err != nil {
			return fmt.Errorf("%w: new_validity_end must be DD/MM/YYYY", ErrInvalidInput)
		}
	}
	return nil
}

// Add appends an amendment to its parent's chain. An append is always
// order-legal, so no position check is needed.
func (s *AmendmentService) Add(ctx context.Context, actor string, in AmendmentInput) (*model.Amendment, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	// Resolving the parent up front keeps orphan amendments out of the
	// ledger and surfaces ErrParentNotFound before anything is written.
	if _, _, err := s.contracts.ReadBase(ctx, in.ParentID, in.ParentKind); err != nil {
		return nil, mapParentErr(err)
	}

	amendment := model.Amendment{
		ParentID:         in.ParentID,
		ParentKind:       in.ParentKind,
		AmendmentType:    in.AmendmentType,
		Description:      in.Description,
		Value:            in.Value,
		NewValidityEnd:   in.NewValidityEnd,
		RegistrationDate: in.RegistrationDate,
	}
	id, err := s.store.Create(ctx, amendment)
	if err != nil {
		return nil, err
	}
	amendment.ID = id

	if err := s.refreshAggregate(ctx, in.ParentID, in.ParentKind); err != nil {
		return nil, err
	}

	s.logAudit(ctx, actor, fmt.Sprintf("amendment %d added to %s %d", id, in.ParentKind, in.ParentID))
	return &amendment, nil
}

// Update edits an existing amendment. Only the chain's last amendment
// is mutable; anything earlier fails with ErrInvalidAmendmentOrder.
func (s *AmendmentService) Update(ctx context.Context, actor string, id int64, in AmendmentInput) error {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		return mapNotFoundErr(err)
	}

	chain, err := s.store.ListByParent(ctx, current.ParentID, current.ParentKind)
	if err != nil {
		return err
	}
	if !lastInChain(chain, id) {
		return ErrInvalidAmendmentOrder
	}

	// Re-parenting an amendment is not supported; the parent reference
	// from the stored row wins.
	in.ParentID = current.ParentID
	in.ParentKind = current.ParentKind
	if err := in.validate(); err != nil {
		return err
	}

	updated := model.Amendment{
		ID:               id,
		ParentID:         current.ParentID,
		ParentKind:       current.ParentKind,
		AmendmentType:    in.AmendmentType,
		Description:      in.Description,
		Value:            in.Value,
		NewValidityEnd:   in.NewValidityEnd,
		RegistrationDate: in.RegistrationDate,
	}
	if err := s.store.Update(ctx, id, updated); err != nil {
		return err
	}

	if err := s.refreshAggregate(ctx, current.ParentID, current.ParentKind); err != nil {
		return err
	}

	s.logAudit(ctx, actor, fmt.Sprintf("amendment %d updated", id))
	return nil
}

// Delete removes the chain's last amendment and recomputes the parent
// aggregate over the remaining chain, which may now be empty and revert
// the contract to its base value and original final date.
func (s *AmendmentService) Delete(ctx context.Context, actor string, id int64) error {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		return mapNotFoundErr(err)
	}

	chain, err := s.store.ListByParent(ctx, current.ParentID, current.ParentKind)
	if err != nil {
		return err
	}
	if !lastInChain(chain, id) {
		return ErrInvalidAmendmentOrder
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.refreshAggregate(ctx, current.ParentID, current.ParentKind); err != nil {
		return err
	}

	s.logAudit(ctx, actor, fmt.Sprintf("amendment %d deleted", id))
	return nil
}

func (s *AmendmentService) GetByID(ctx context.Context, id int64) (*model.Amendment, error) {
	amendment, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFoundErr(err)
	}
	return amendment, nil
}

func (s *AmendmentService) ListByParent(ctx context.Context, parentID int64, kind model.ContractKind) ([]model.Amendment, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown parent kind %q", ErrInvalidInput, kind)
	}
	return s.store.ListByParent(ctx, parentID, kind)
}

func (s *AmendmentService) List(ctx context.Context) ([]model.Amendment, error) {
	return s.store.ListAll(ctx)
}

// refreshAggregate reloads the parent's chain from the store and writes
// the recomputed aggregate back. The read is always fresh so a stale
// in-memory chain can never produce a stale write.
func (s *AmendmentService) refreshAggregate(ctx context.Context, parentID int64, kind model.ContractKind) error {
	base, originalFinalDate, err := s.contracts.ReadBase(ctx, parentID, kind)
	if err != nil {
		return mapParentErr(err)
	}
	chain, err := s.store.ListByParent(ctx, parentID, kind)
	if err != nil {
		return err
	}
	agg := RecomputeAggregate(base, originalFinalDate, chain)
	return s.contracts.WriteAggregate(ctx, parentID, kind, agg.TotalValue, agg.FinalDate)
}

// logAudit is fire-and-forget: audit failures must never fail the
// primary operation.
func (s *AmendmentService) logAudit(ctx context.Context, actor, action string) {
	if actor == "" {
		actor = "unknown"
	}
	if err := s.audit.Append(ctx, actor, action); err != nil {
		s.log.Debug().Err(err).Str("actor", actor).Str("action", action).Msg("audit write failed")
	}
}
