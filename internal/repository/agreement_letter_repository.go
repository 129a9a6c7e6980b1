package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
)

type agreementLetterRow struct {
	ID                   int64 `gorm:"primaryKey"`
	DemandCode           int64
	Institution          string
	Instrument           string
	Subproject           string
	Ta                   string
	Pta                  string
	Action               string
	Result               string
	Goal                 string
	ContractNumber       string
	ValidityStart        string
	ValidityEnd          string
	OriginalValidityEnd  string
	SecondaryInstitution string
	TaxID                string `gorm:"column:tax_id"`
	ProjectTitle         string
	Objective            string
	EstimatedValue       decimal.Decimal
	TotalValue           decimal.Decimal
	Notes                string
}

func (agreementLetterRow) TableName() string { return "agreement_letter" }

func (r agreementLetterRow) toModel() model.AgreementLetter {
	return model.AgreementLetter{
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
		ContractNumber:       r.ContractNumber,
		ValidityStart:        r.ValidityStart,
		ValidityEnd:          r.ValidityEnd,
		OriginalValidityEnd:  r.OriginalValidityEnd,
		SecondaryInstitution: r.SecondaryInstitution,
		TaxID:                r.TaxID,
		ProjectTitle:         r.ProjectTitle,
		Objective:            r.Objective,
		EstimatedValue:       r.EstimatedValue,
		TotalValue:           r.TotalValue,
		Notes:                r.Notes,
	}
}

func newAgreementLetterRow(c model.AgreementLetter) agreementLetterRow {
	return agreementLetterRow{
		ID:                   c.ID,
		DemandCode:           c.DemandCode,
		Institution:          c.Costing.Institution,
		Instrument:           c.Costing.Instrument,
		Subproject:           c.Costing.Subproject,
		Ta:                   c.Costing.TA,
		Pta:                  c.Costing.PTA,
		Action:               c.Costing.Action,
		Result:               c.Costing.Result,
		Goal:                 c.Costing.Goal,
		ContractNumber:       c.ContractNumber,
		ValidityStart:        c.ValidityStart,
		ValidityEnd:          c.ValidityEnd,
		OriginalValidityEnd:  c.OriginalValidityEnd,
		SecondaryInstitution: c.SecondaryInstitution,
		TaxID:                c.TaxID,
		ProjectTitle:         c.ProjectTitle,
		Objective:            c.Objective,
		EstimatedValue:       c.EstimatedValue,
		TotalValue:           c.TotalValue,
		Notes:                c.Notes,
	}
}

func (r *ContractRepository) CreateAgreementLetter(ctx context.Context, c model.AgreementLetter) (int64, error) {
	row := newAgreementLetterRow(c)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *ContractRepository) GetAgreementLetter(ctx context.Context, id int64) (*model.AgreementLetter, error) {
	var row agreementLetterRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM agreement_letter WHERE id = ? LIMIT 1
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

func (r *ContractRepository) ListAgreementLetters(ctx context.Context) ([]model.AgreementLetter, error) {
	var rows []agreementLetterRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM agreement_letter ORDER BY id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	contracts := make([]model.AgreementLetter, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, row.toModel())
	}
	return contracts, nil
}

func (r *ContractRepository) UpdateAgreementLetter(ctx context.Context, c model.AgreementLetter) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE agreement_letter SET
			demand_code = ?,
			institution = ?, instrument = ?, subproject = ?, ta = ?, pta = ?,
			action = ?, result = ?, goal = ?,
			contract_number = ?, validity_start = ?, validity_end = ?,
			secondary_institution = ?, tax_id = ?, project_title = ?, objective = ?,
			estimated_value = ?, total_value = ?, notes = ?
		WHERE id = ?
	`,
		c.DemandCode,
		c.Costing.Institution, c.Costing.Instrument, c.Costing.Subproject,
		c.Costing.TA, c.Costing.PTA, c.Costing.Action, c.Costing.Result, c.Costing.Goal,
		c.ContractNumber, c.ValidityStart, c.ValidityEnd,
		c.SecondaryInstitution, c.TaxID, c.ProjectTitle, c.Objective,
		c.EstimatedValue, c.TotalValue, c.Notes,
		c.ID,
	).Error
}

func (r *ContractRepository) DeleteAgreementLetter(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM agreement_letter WHERE id = ?`, id).Error
}
