package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
	"github.com/nurpe/contract-registry/internal/repository"
)

// ContractService owns the CRUD lifecycle of the three contract kinds.
// Total value and, for agreement letters, the final validity date are
// derived fields once a contract has amendments; direct edits to them
// are rejected here.
type ContractService struct {
	contracts  *repository.ContractRepository
	amendments AmendmentStore
	references *repository.ReferenceRepository
	demands    *repository.DemandRepository
	audit      AuditSink
	log        zerolog.Logger
}

func NewContractService(
	contracts *repository.ContractRepository,
	amendments AmendmentStore,
	references *repository.ReferenceRepository,
	demands *repository.DemandRepository,
	audit AuditSink,
	log zerolog.Logger,
) *ContractService {
	return &ContractService{
		contracts:  contracts,
		amendments: amendments,
		references: references,
		demands:    demands,
		audit:      audit,
		log:        log,
	}
}

func (s *ContractService) CreateAgreementLetter(ctx context.Context, actor string, c model.AgreementLetter) (*model.AgreementLetter, error) {
	if err := s.checkDemand(ctx, c.DemandCode); err != nil {
		return nil, err
	}

	// The creation-time final date is the immutable pre-amendment
	// original; the chain is empty so the total is the base value.
	c.OriginalValidityEnd = c.ValidityEnd
	if c.TotalValue.IsZero() {
		c.TotalValue = c.EstimatedValue
	}

	id, err := s.contracts.CreateAgreementLetter(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	s.logAudit(ctx, actor, fmt.Sprintf("agreement letter %d registered", id))
	return &c, nil
}

func (s *ContractService) UpdateAgreementLetter(ctx context.Context, actor string, c model.AgreementLetter) error {
	current, err := s.contracts.GetAgreementLetter(ctx, c.ID)
	if err != nil {
		return mapNotFoundErr(err)
	}
	chain, err := s.amendments.ListByParent(ctx, c.ID, model.KindAgreementLetter)
	if err != nil {
		return err
	}
	if len(chain) > 0 {
		if !c.TotalValue.Equal(current.TotalValue) {
			return fmt.Errorf("%w: total_value is derived from the amendment chain", ErrInvalidInput)
		}
		if c.ValidityEnd != current.ValidityEnd {
			return fmt.Errorf("%w: validity_end is derived from the amendment chain", ErrInvalidInput)
		}
	}

	if err := s.contracts.UpdateAgreementLetter(ctx, c); err != nil {
		return err
	}
	if len(chain) == 0 {
		// Before any amendment exists the edited final date is the new
		// pre-amendment original.
		if err := s.contracts.SetOriginalValidityEnd(ctx, c.ID, c.ValidityEnd); err != nil {
			return err
		}
	}

	// The estimated (base) value may have changed; re-derive the total
	// over the current chain.
	if err := s.refreshAggregate(ctx, c.ID, model.KindAgreementLetter); err != nil {
		return err
	}
	s.logAudit(ctx, actor, fmt.Sprintf("agreement letter %d updated", c.ID))
	return nil
}

func (s *ContractService) CreateProductOrService(ctx context.Context, actor string, c model.ProductOrService) (*model.ProductOrService, error) {
	if err := s.checkDemand(ctx, c.DemandCode); err != nil {
		return nil, err
	}
	if err := s.ensureSupplier(ctx, c.Supplier); err != nil {
		return nil, err
	}
	if c.TotalValue.IsZero() {
		c.TotalValue = c.EstimatedValue
	}

	id, err := s.contracts.CreateProductOrService(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	s.logAudit(ctx, actor, fmt.Sprintf("product/service contract %d registered", id))
	return &c, nil
}

func (s *ContractService) UpdateProductOrService(ctx context.Context, actor string, c model.ProductOrService) error {
	current, err := s.contracts.GetProductOrService(ctx, c.ID)
	if err != nil {
		return mapNotFoundErr(err)
	}
	chain, err := s.amendments.ListByParent(ctx, c.ID, model.KindProductOrService)
	if err != nil {
		return err
	}
	if len(chain) > 0 && !c.TotalValue.Equal(current.TotalValue) {
		return fmt.Errorf("%w: total_value is derived from the amendment chain", ErrInvalidInput)
	}
	if err := s.ensureSupplier(ctx, c.Supplier); err != nil {
		return err
	}

	if err := s.contracts.UpdateProductOrService(ctx, c); err != nil {
		return err
	}
	if err := s.refreshAggregate(ctx, c.ID, model.KindProductOrService); err != nil {
		return err
	}
	s.logAudit(ctx, actor, fmt.Sprintf("product/service contract %d updated", c.ID))
	return nil
}

func (s *ContractService) CreateEvent(ctx context.Context, actor string, c model.Event) (*model.Event, error) {
	if err := s.checkDemand(ctx, c.DemandCode); err != nil {
		return nil, err
	}
	if err := s.ensureSupplier(ctx, c.Supplier); err != nil {
		return nil, err
	}
	if err := s.ensureEventTitle(ctx, c.EventTitle); err != nil {
		return nil, err
	}
	if c.TotalValue.IsZero() {
		c.TotalValue = c.EstimatedValue
	}

	id, err := s.contracts.CreateEvent(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	s.logAudit(ctx, actor, fmt.Sprintf("event contract %d registered", id))
	return &c, nil
}

func (s *ContractService) UpdateEvent(ctx context.Context, actor string, c model.Event) error {
	current, err := s.contracts.GetEvent(ctx, c.ID)
	if err != nil {
		return mapNotFoundErr(err)
	}
	chain, err := s.amendments.ListByParent(ctx, c.ID, model.KindEvent)
	if err != nil {
		return err
	}
	if len(chain) > 0 && !c.TotalValue.Equal(current.TotalValue) {
		return fmt.Errorf("%w: total_value is derived from the amendment chain", ErrInvalidInput)
	}
	if err := s.ensureSupplier(ctx, c.Supplier); err != nil {
		return err
	}
	if err := s.ensureEventTitle(ctx, c.EventTitle); err != nil {
		return err
	}

	if err := s.contracts.UpdateEvent(ctx, c); err != nil {
		return err
	}
	if err := s.refreshAggregate(ctx, c.ID, model.KindEvent); err != nil {
		return err
	}
	s.logAudit(ctx, actor, fmt.Sprintf("event contract %d updated", c.ID))
	return nil
}

func (s *ContractService) GetAgreementLetter(ctx context.Context, id int64) (*model.AgreementLetter, error) {
	c, err := s.contracts.GetAgreementLetter(ctx, id)
	return c, mapNotFoundErr(err)
}

func (s *ContractService) ListAgreementLetters(ctx context.Context) ([]model.AgreementLetter, error) {
	return s.contracts.ListAgreementLetters(ctx)
}

func (s *ContractService) GetProductOrService(ctx context.Context, id int64) (*model.ProductOrService, error) {
	c, err := s.contracts.GetProductOrService(ctx, id)
	return c, mapNotFoundErr(err)
}

func (s *ContractService) ListProductsOrServices(ctx context.Context) ([]model.ProductOrService, error) {
	return s.contracts.ListProductsOrServices(ctx)
}

func (s *ContractService) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	c, err := s.contracts.GetEvent(ctx, id)
	return c, mapNotFoundErr(err)
}

func (s *ContractService) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.contracts.ListEvents(ctx)
}

// Delete removes a contract and its whole amendment chain. The ledger
// carries no foreign key to the kind tables, so the cascade is done
// here to keep orphaned amendments out.
func (s *ContractService) Delete(ctx context.Context, actor string, id int64, kind model.ContractKind) error {
	var err error
	switch kind {
	case model.KindAgreementLetter:
		_, err = s.contracts.GetAgreementLetter(ctx, id)
	case model.KindProductOrService:
		_, err = s.contracts.GetProductOrService(ctx, id)
	case model.KindEvent:
		_, err = s.contracts.GetEvent(ctx, id)
	default:
		return fmt.Errorf("%w: unknown contract kind %q", ErrInvalidInput, kind)
	}
	if err != nil {
		return mapNotFoundErr(err)
	}

	chain, err := s.amendments.ListByParent(ctx, id, kind)
	if err != nil {
		return err
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if err := s.amendments.Delete(ctx, chain[i].ID); err != nil {
			return err
		}
	}

	switch kind {
	case model.KindAgreementLetter:
		err = s.contracts.DeleteAgreementLetter(ctx, id)
	case model.KindProductOrService:
		err = s.contracts.DeleteProductOrService(ctx, id)
	case model.KindEvent:
		err = s.contracts.DeleteEvent(ctx, id)
	}
	if err != nil {
		return err
	}
	s.logAudit(ctx, actor, fmt.Sprintf("%s %d deleted", kind, id))
	return nil
}

// Dossier assembles the contract summary and full amendment chain for
// the XLSX and PDF exports.
func (s *ContractService) Dossier(ctx context.Context, id int64, kind model.ContractKind) (*model.Dossier, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown contract kind %q", ErrInvalidInput, kind)
	}
	summary, err := s.contracts.GetSummary(ctx, id, kind)
	if err != nil {
		return nil, mapNotFoundErr(err)
	}
	chain, err := s.amendments.ListByParent(ctx, id, kind)
	if err != nil {
		return nil, err
	}
	return &model.Dossier{Contract: *summary, Amendments: chain}, nil
}

func (s *ContractService) checkDemand(ctx context.Context, code int64) error {
	if code == 0 {
		return nil
	}
	if _, err := s.demands.GetByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: demand %d does not exist", ErrInvalidInput, code)
		}
		return err
	}
	return nil
}

// ensureSupplier registers a free-text supplier name on first use.
func (s *ContractService) ensureSupplier(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	_, err := s.references.FindSupplierByName(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	_, err = s.references.CreateSupplier(ctx, model.Supplier{Name: name})
	return err
}

func (s *ContractService) ensureEventTitle(ctx context.Context, title string) error {
	if title == "" {
		return nil
	}
	_, err := s.references.FindEventTitleByName(ctx, title)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	_, err = s.references.CreateEventTitle(ctx, model.EventTitle{Title: title})
	return err
}

func (s *ContractService) refreshAggregate(ctx context.Context, id int64, kind model.ContractKind) error {
	base, originalFinalDate, err := s.contracts.ReadBase(ctx, id, kind)
	if err != nil {
		return mapParentErr(err)
	}
	chain, err := s.amendments.ListByParent(ctx, id, kind)
	if err != nil {
		return err
	}
	agg := RecomputeAggregate(base, originalFinalDate, chain)
	return s.contracts.WriteAggregate(ctx, id, kind, agg.TotalValue, agg.FinalDate)
}

func (s *ContractService) logAudit(ctx context.Context, actor, action string) {
	if actor == "" {
		actor = "unknown"
	}
	if err := s.audit.Append(ctx, actor, action); err != nil {
		s.log.Debug().Err(err).Str("actor", actor).Str("action", action).Msg("audit write failed")
	}
}
