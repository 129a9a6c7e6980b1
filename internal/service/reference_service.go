package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nurpe/contract-registry/internal/model"
	"github.com/nurpe/contract-registry/internal/repository"
)

// ReferenceService manages the supplier and event-title registries.
type ReferenceService struct {
	references *repository.ReferenceRepository
	audit      AuditSink
	log        zerolog.Logger
}

func NewReferenceService(references *repository.ReferenceRepository, audit AuditSink, log zerolog.Logger) *ReferenceService {
	return &ReferenceService{references: references, audit: audit, log: log}
}

func (s *ReferenceService) CreateSupplier(ctx context.Context, actor string, supplier model.Supplier) (*model.Supplier, error) {
	if supplier.Name == "" {
		return nil, fmt.Errorf("%w: supplier name is required", ErrInvalidInput)
	}
	id, err := s.references.CreateSupplier(ctx, supplier)
	if err != nil {
		return nil, err
	}
	supplier.ID = id
	s.logAudit(ctx, actor, fmt.Sprintf("supplier %d registered", id))
	return &supplier, nil
}

func (s *ReferenceService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return s.references.ListSuppliers(ctx)
}

func (s *ReferenceService) UpdateSupplier(ctx context.Context, actor string, supplier model.Supplier) error {
	if supplier.Name == "" {
		return fmt.Errorf("%w: supplier name is required", ErrInvalidInput)
	}
	if err := s.references.UpdateSupplier(ctx, supplier); err != nil {
		return err
	}
	s.logAudit(ctx, actor, fmt.Sprintf("supplier %d updated", supplier.ID))
	return nil
}

func (s *ReferenceService) DeleteSupplier(ctx context.Context, actor string, id int64) error {
	if err := s.references.DeleteSupplier(ctx, id); err != nil {
		return err
	}
	s.logAudit(ctx, actor, fmt.Sprintf("supplier %d deleted", id))
	return nil
}

func (s *ReferenceService) CreateEventTitle(ctx context.Context, actor string, title model.EventTitle) (*model.EventTitle, error) {
	if title.Title == "" {
		return nil, fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}
	id, err := s.references.CreateEventTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	title.ID = id
	s.logAudit(ctx, actor, fmt.Sprintf("event title %d registered", id))
	return &title, nil
}

func (s *ReferenceService) ListEventTitles(ctx context.Context) ([]model.EventTitle, error) {
	return s.references.ListEventTitles(ctx)
}

func (s *ReferenceService) UpdateEventTitle(ctx context.Context, actor string, title model.EventTitle) error {
	if title.Title == "" {
		return fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}
	if err := s.references.UpdateEventTitle(ctx, title); err != nil {
		return err
	}
	s.logAudit(ctx, actor, fmt.Sprintf("event title %d updated", title.ID))
	return nil
}

func (s *ReferenceService) DeleteEventTitle(ctx context.Context, actor string, id int64) error {
	if err := s.references.DeleteEventTitle(ctx, id); err != nil {
		return err
	}
	s.logAudit(ctx, actor, fmt.Sprintf("event title %d deleted", id))
	return nil
}

func (s *ReferenceService) logAudit(ctx context.Context, actor, action string) {
	if actor == "" {
		actor = "unknown"
	}
	if err := s.audit.Append(ctx, actor, action); err != nil {
		s.log.Debug().Err(err).Str("actor", actor).Str("action", action).Msg("audit write failed")
	}
}
