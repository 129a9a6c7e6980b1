package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nurpe/contract-registry/internal/model"
	"github.com/nurpe/contract-registry/internal/repository"
)

type DemandService struct {
	demands *repository.DemandRepository
	audit   AuditSink
	log     zerolog.Logger
}

func NewDemandService(demands *repository.DemandRepository, audit AuditSink, log zerolog.Logger) *DemandService {
	return &DemandService{demands: demands, audit: audit, log: log}
}

func (s *DemandService) Create(ctx context.Context, actor string, d model.Demand) (*model.Demand, error) {
	if d.Status == "" {
		d.Status = model.DemandStatusNew
	}
	if !d.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown demand status %q", ErrInvalidInput, d.Status)
	}

	code, err := s.demands.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	d.Code = code
	s.logAudit(ctx, actor, fmt.Sprintf("demand %d registered", code))
	return &d, nil
}

func (s *DemandService) GetByCode(ctx context.Context, code int64) (*model.Demand, error) {
	d, err := s.demands.GetByCode(ctx, code)
	return d, mapNotFoundErr(err)
}

func (s *DemandService) List(ctx context.Context) ([]model.Demand, error) {
	return s.demands.List(ctx)
}

func (s *DemandService) Update(ctx context.Context, actor string, d model.Demand) error {
	if !d.Status.Valid() {
		return fmt.Errorf("%w: unknown demand status %q", ErrInvalidInput, d.Status)
	}
	if _, err := s.demands.GetByCode(ctx, d.Code); err != nil {
		return mapNotFoundErr(err)
	}
	if err := s.demands.Update(ctx, d); err != nil {
		return err
	}
	s.logAudit(ctx, actor, fmt.Sprintf("demand %d updated", d.Code))
	return nil
}

// Delete removes a demand. Contracts referencing it are left alone:
// demands are never cascade-deleted with their contracts and vice
// versa.
func (s *DemandService) Delete(ctx context.Context, actor string, code int64) error {
	if _, err := s.demands.GetByCode(ctx, code); err != nil {
		return mapNotFoundErr(err)
	}
	if err := s.demands.Delete(ctx, code); err != nil {
		return err
	}
	s.logAudit(ctx, actor, fmt.Sprintf("demand %d deleted", code))
	return nil
}

func (s *DemandService) logAudit(ctx context.Context, actor, action string) {
	if actor == "" {
		actor = "unknown"
	}
	if err := s.audit.Append(ctx, actor, action); err != nil {
		s.log.Debug().Err(err).Str("actor", actor).Str("action", action).Msg("audit write failed")
	}
}
