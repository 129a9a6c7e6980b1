package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
)

type productOrServiceRow struct {
	ID             int64 `gorm:"primaryKey"`
	DemandCode     int64
	Supplier       string
	Modality       string
	Objective      string
	ValidityStart  string
	ValidityEnd    string
	Notes          string
	EstimatedValue decimal.Decimal
	TotalValue     decimal.Decimal
	Institution    string
	Instrument     string
	Subproject     string
	Ta             string
	Pta            string
	Action         string
	Result         string
	Goal           string
}

func (productOrServiceRow) TableName() string { return "product_or_service" }

func (r productOrServiceRow) toModel() model.ProductOrService {
	return model.ProductOrService{
		ID:             r.ID,
		DemandCode:     r.DemandCode,
		Supplier:       r.Supplier,
		Modality:       r.Modality,
		Objective:      r.Objective,
		ValidityStart:  r.ValidityStart,
		ValidityEnd:    r.ValidityEnd,
		Notes:          r.Notes,
		EstimatedValue: r.EstimatedValue,
		TotalValue:     r.TotalValue,
		Costing: model.CostingAttributes{
			Institution: r.Institution,
			Instrument:  r.Instrument,
			Subproject:  r.Subproject,
			TA:          r.Ta,
			PTA:         r.Pta,
			Action:      r.Action,
			Result:      r.Result,
			Goal:        r.Goal,
		},
	}
}

func (r *ContractRepository) CreateProductOrService(ctx context.Context, c model.ProductOrService) (int64, error) {
	row := productOrServiceRow{
		DemandCode:     c.DemandCode,
		Supplier:       c.Supplier,
		Modality:       c.Modality,
		Objective:      c.Objective,
		ValidityStart:  c.ValidityStart,
		ValidityEnd:    c.ValidityEnd,
		Notes:          c.Notes,
		EstimatedValue: c.EstimatedValue,
		TotalValue:     c.TotalValue,
		Institution:    c.Costing.Institution,
		Instrument:     c.Costing.Instrument,
		Subproject:     c.Costing.Subproject,
		Ta:             c.Costing.TA,
		Pta:            c.Costing.PTA,
		Action:         c.Costing.Action,
		Result:         c.Costing.Result,
		Goal:           c.Costing.Goal,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *ContractRepository) GetProductOrService(ctx context.Context, id int64) (*model.ProductOrService, error) {
	var row productOrServiceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM product_or_service WHERE id = ? LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	c := row.toModel()
	return &c, nil
}

func (r *ContractRepository) ListProductsOrServices(ctx context.Context) ([]model.ProductOrService, error) {
	var rows []productOrServiceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM product_or_service ORDER BY id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	contracts := make([]model.ProductOrService, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, row.toModel())
	}
	return contracts, nil
}

func (r *ContractRepository) UpdateProductOrService(ctx context.Context, c model.ProductOrService) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE product_or_service SET
			demand_code = ?, supplier = ?, modality = ?, objective = ?,
			validity_start = ?, validity_end = ?, notes = ?,
			estimated_value = ?, total_value = ?,
			institution = ?, instrument = ?, subproject = ?, ta = ?, pta = ?,
			action = ?, result = ?, goal = ?
		WHERE id = ?
	`,
		c.DemandCode, c.Supplier, c.Modality, c.Objective,
		c.ValidityStart, c.ValidityEnd, c.Notes,
		c.EstimatedValue, c.TotalValue,
		c.Costing.Institution, c.Costing.Instrument, c.Costing.Subproject,
		c.Costing.TA, c.Costing.PTA, c.Costing.Action, c.Costing.Result, c.Costing.Goal,
		c.ID,
	).Error
}

func (r *ContractRepository) DeleteProductOrService(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM product_or_service WHERE id = ?`, id).Error
}
