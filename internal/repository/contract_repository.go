package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
)

// ContractRepository covers the three contract kinds. Kind-specific CRUD
// lives in the per-kind files; this file holds the kind-agnostic
// aggregate access used by the amendment lifecycle.
type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// ReadBase returns the contract's base (estimated) value and, for
// agreement letters, the immutable original final validity date.
func (r *ContractRepository) ReadBase(ctx context.Context, id int64, kind model.ContractKind) (decimal.Decimal, string, error) {
	switch kind {
	case model.KindAgreementLetter:
		var row struct {
			ID                  int64
			EstimatedValue      decimal.Decimal
			OriginalValidityEnd string
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT id, estimated_value, original_validity_end
			FROM agreement_letter WHERE id = ? LIMIT 1
		`, id).Scan(&row).Error
		if err != nil {
			return decimal.Zero, "", err
		}
		if row.ID == 0 {
			return decimal.Zero, "", gorm.ErrRecordNotFound
		}
		return row.EstimatedValue, row.OriginalValidityEnd, nil

	case model.KindProductOrService:
		return r.readEstimated(ctx, "product_or_service", id)

	case model.KindEvent:
		return r.readEstimated(ctx, "event", id)

	default:
		return decimal.Zero, "", fmt.Errorf("unknown contract kind %q", kind)
	}
}

func (r *ContractRepository) readEstimated(ctx context.Context, table string, id int64) (decimal.Decimal, string, error) {
	var row struct {
		ID             int64
		EstimatedValue decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, estimated_value FROM `+table+` WHERE id = ? LIMIT 1`, id,
	).Scan(&row).Error
	if err != nil {
		return decimal.Zero, "", err
	}
	if row.ID == 0 {
		return decimal.Zero, "", gorm.ErrRecordNotFound
	}
	return row.EstimatedValue, "", nil
}

// WriteAggregate persists the recomputed total value and, for agreement
// letters, the derived final validity date. finalDate is ignored for
// the other kinds.
func (r *ContractRepository) WriteAggregate(ctx context.Context, id int64, kind model.ContractKind, total decimal.Decimal, finalDate string) error {
	switch kind {
	case model.KindAgreementLetter:
		return r.db.WithContext(ctx).Exec(`
			UPDATE agreement_letter SET total_value = ?, validity_end = ? WHERE id = ?
		`, total, finalDate, id).Error
	case model.KindProductOrService:
		return r.db.WithContext(ctx).Exec(`
			UPDATE product_or_service SET total_value = ? WHERE id = ?
		`, total, id).Error
	case model.KindEvent:
		return r.db.WithContext(ctx).Exec(`
			UPDATE event SET total_value = ? WHERE id = ?
		`, total, id).Error
	default:
		return fmt.Errorf("unknown contract kind %q", kind)
	}
}

// SetOriginalValidityEnd rewrites the pre-amendment final date
// snapshot. Only legal while the contract's chain is empty; the
// service enforces that.
func (r *ContractRepository) SetOriginalValidityEnd(ctx context.Context, id int64, date string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE agreement_letter SET original_validity_end = ? WHERE id = ?
	`, date, id).Error
}

// GetSummary builds the kind-agnostic contract view used by exports.
func (r *ContractRepository) GetSummary(ctx context.Context, id int64, kind model.ContractKind) (*model.ContractSummary, error) {
	switch kind {
	case model.KindAgreementLetter:
		c, err := r.GetAgreementLetter(ctx, id)
		if err != nil {
			return nil, err
		}
		return &model.ContractSummary{
			ID:             c.ID,
			Kind:           kind,
			DemandCode:     c.DemandCode,
			Title:          c.ProjectTitle,
			Counterparty:   c.SecondaryInstitution,
			ValidityStart:  c.ValidityStart,
			ValidityEnd:    c.ValidityEnd,
			EstimatedValue: c.EstimatedValue,
			TotalValue:     c.TotalValue,
		}, nil
	case model.KindProductOrService:
		c, err := r.GetProductOrService(ctx, id)
		if err != nil {
			return nil, err
		}
		return &model.ContractSummary{
			ID:             c.ID,
			Kind:           kind,
			DemandCode:     c.DemandCode,
			Title:          c.Objective,
			Counterparty:   c.Supplier,
			ValidityStart:  c.ValidityStart,
			ValidityEnd:    c.ValidityEnd,
			EstimatedValue: c.EstimatedValue,
			TotalValue:     c.TotalValue,
		}, nil
	case model.KindEvent:
		c, err := r.GetEvent(ctx, id)
		if err != nil {
			return nil, err
		}
		return &model.ContractSummary{
			ID:             c.ID,
			Kind:           kind,
			DemandCode:     c.DemandCode,
			Title:          c.EventTitle,
			Counterparty:   c.Supplier,
			EstimatedValue: c.EstimatedValue,
			TotalValue:     c.TotalValue,
		}, nil
	default:
		return nil, fmt.Errorf("unknown contract kind %q", kind)
	}
}
