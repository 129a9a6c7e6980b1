package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
)

type eventRow struct {
	ID             int64 `gorm:"primaryKey"`
	DemandCode     int64
	Institution    string
	Instrument     string
	Subproject     string
	Ta             string
	Pta            string
	Action         string
	Result         string
	Goal           string
	EventTitle     string
	Supplier       string
	Notes          string
	EstimatedValue decimal.Decimal
	TotalValue     decimal.Decimal
}

func (eventRow) TableName() string { return "event" }

func (r eventRow) toModel() model.Event {
	return model.Event{
		ID:         r.ID,
		DemandCode: r.DemandCode,
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
		EventTitle:     r.EventTitle,
		Supplier:       r.Supplier,
		Notes:          r.Notes,
		EstimatedValue: r.EstimatedValue,
		TotalValue:     r.TotalValue,
	}
}

func (r *ContractRepository) CreateEvent(ctx context.Context, c model.Event) (int64, error) {
	row := eventRow{
		DemandCode:     c.DemandCode,
		Institution:    c.Costing.Institution,
		Instrument:     c.Costing.Instrument,
		Subproject:     c.Costing.Subproject,
		Ta:             c.Costing.TA,
		Pta:            c.Costing.PTA,
		Action:         c.Costing.Action,
		Result:         c.Costing.Result,
		Goal:           c.Costing.Goal,
		EventTitle:     c.EventTitle,
		Supplier:       c.Supplier,
		Notes:          c.Notes,
		EstimatedValue: c.EstimatedValue,
		TotalValue:     c.TotalValue,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *ContractRepository) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	var row eventRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM event WHERE id = ? LIMIT 1
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

func (r *ContractRepository) ListEvents(ctx context.Context) ([]model.Event, error) {
	var rows []eventRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM event ORDER BY id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	contracts := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, row.toModel())
	}
	return contracts, nil
}

func (r *ContractRepository) UpdateEvent(ctx context.Context, c model.Event) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE event SET
			demand_code = ?,
			institution = ?, instrument = ?, subproject = ?, ta = ?, pta = ?,
			action = ?, result = ?, goal = ?,
			event_title = ?, supplier = ?, notes = ?,
			estimated_value = ?, total_value = ?
		WHERE id = ?
	`,
		c.DemandCode,
		c.Costing.Institution, c.Costing.Instrument, c.Costing.Subproject,
		c.Costing.TA, c.Costing.PTA, c.Costing.Action, c.Costing.Result, c.Costing.Goal,
		c.EventTitle, c.Supplier, c.Notes,
		c.EstimatedValue, c.TotalValue,
		c.ID,
	).Error
}

func (r *ContractRepository) DeleteEvent(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM event WHERE id = ?`, id).Error
}
