package service

import (
	"context"

	"github.com/nurpe/contract-registry/internal/model"
	"github.com/nurpe/contract-registry/internal/repository"
)

// CostingService exposes the cascading reference lookup: each level is
// the distinct values of one column narrowed by the selections made at
// the levels above it.
type CostingService struct {
	costing *repository.CostingRepository
}

func NewCostingService(costing *repository.CostingRepository) *CostingService {
	return &CostingService{costing: costing}
}

func (s *CostingService) Institutions(ctx context.Context) ([]string, error) {
	return s.costing.DistinctValues(ctx, "institution", nil)
}

func (s *CostingService) Projects(ctx context.Context, institution string) ([]string, error) {
	return s.costing.DistinctValues(ctx, "project_code", optional("institution", institution))
}

func (s *CostingService) TAs(ctx context.Context, institution, project string) ([]string, error) {
	filters := optional("institution", institution)
	filters = merge(filters, "project_code", project)
	return s.costing.DistinctValues(ctx, "ta", filters)
}

func (s *CostingService) Results(ctx context.Context, institution, project, ta string) ([]string, error) {
	filters := optional("institution", institution)
	filters = merge(filters, "project_code", project)
	filters = merge(filters, "ta", ta)
	return s.costing.DistinctValues(ctx, "result", filters)
}

func (s *CostingService) Subprojects(ctx context.Context, institution, project, ta, result string) ([]string, error) {
	filters := optional("institution", institution)
	filters = merge(filters, "project_code", project)
	filters = merge(filters, "ta", ta)
	filters = merge(filters, "result", result)
	return s.costing.DistinctValues(ctx, "subproject", filters)
}

func (s *CostingService) Filter(ctx context.Context, filters map[string]string) ([]model.CostingEntry, error) {
	clean := map[string]string{}
	for field, value := range filters {
		if value != "" {
			clean[field] = value
		}
	}
	return s.costing.Filter(ctx, clean)
}

func optional(field, value string) map[string]string {
	if value == "" {
		return nil
	}
	return map[string]string{field: value}
}

func merge(filters map[string]string, field, value string) map[string]string {
	if value == "" {
		return filters
	}
	if filters == nil {
		filters = map[string]string{}
	}
	filters[field] = value
	return filters
}
