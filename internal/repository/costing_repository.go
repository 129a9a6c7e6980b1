package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
)

// CostingRepository reads the costing reference table backing the
// cascading institution → project → TA → result → subproject lookup.
type CostingRepository struct {
	db *gorm.DB
}

func NewCostingRepository(db *gorm.DB) *CostingRepository {
	return &CostingRepository{db: db}
}

// Columns the cascade is allowed to select or filter on. Everything
// else is rejected before reaching SQL.
var costingColumns = map[string]struct{}{
	"institution":  {},
	"project_code": {},
	"ta":           {},
	"result":       {},
	"subproject":   {},
}

// DistinctValues returns the sorted distinct values of one costing
// column, narrowed by the already-selected filter columns.
func (r *CostingRepository) DistinctValues(ctx context.Context, column string, filters map[string]string) ([]string, error) {
	if _, ok := costingColumns[column]; !ok {
		return nil, fmt.Errorf("unknown costing column %q", column)
	}

	query := fmt.Sprintf(`SELECT DISTINCT %s FROM costing_entries WHERE %s <> ''`, column, column)
	var args []interface{}
	var conditions []string
	for field, value := range filters {
		if _, ok := costingColumns[field]; !ok {
			return nil, fmt.Errorf("unknown costing column %q", field)
		}
		conditions = append(conditions, fmt.Sprintf("%s = ?", field))
		args = append(args, value)
	}
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY %s ASC", column)

	var values []string
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// Filter returns the full rows matching the filter columns.
func (r *CostingRepository) Filter(ctx context.Context, filters map[string]string) ([]model.CostingEntry, error) {
	query := `SELECT id, institution, project_code, ta, result, subproject FROM costing_entries`
	var args []interface{}
	var conditions []string
	for field, value := range filters {
		if _, ok := costingColumns[field]; !ok {
			return nil, fmt.Errorf("unknown costing column %q", field)
		}
		conditions = append(conditions, fmt.Sprintf("%s = ?", field))
		args = append(args, value)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	var entries []model.CostingEntry
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
