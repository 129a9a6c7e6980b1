package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
)

type AmendmentRepository struct {
	db *gorm.DB
}

func NewAmendmentRepository(db *gorm.DB) *AmendmentRepository {
	return &AmendmentRepository{db: db}
}

type amendmentRow struct {
	ID               int64 `gorm:"primaryKey"`
	ParentID         int64
	ParentKind       string
	AmendmentType    string
	Description      string
	AmendmentValue   decimal.Decimal
	NewValidityEnd   string
	RegistrationDate string
}

func (amendmentRow) TableName() string { return "amendment" }

func (r amendmentRow) toModel() model.Amendment {
	return model.Amendment{
		ID:               r.ID,
		ParentID:         r.ParentID,
		ParentKind:       model.ContractKind(r.ParentKind),
		AmendmentType:    r.AmendmentType,
		Description:      r.Description,
		Value:            r.AmendmentValue,
		NewValidityEnd:   r.NewValidityEnd,
		RegistrationDate: r.RegistrationDate,
	}
}

func (r *AmendmentRepository) Create(ctx context.Context, a model.Amendment) (int64, error) {
	row := amendmentRow{
		ParentID:         a.ParentID,
		ParentKind:       string(a.ParentKind),
		AmendmentType:    a.AmendmentType,
		Description:      a.Description,
		AmendmentValue:   a.Value,
		NewValidityEnd:   a.NewValidityEnd,
		RegistrationDate: a.RegistrationDate,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *AmendmentRepository) GetByID(ctx context.Context, id int64) (*model.Amendment, error) {
	var row amendmentRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, parent_id, parent_kind, amendment_type, description,
			amendment_value, new_validity_end, registration_date
		FROM amendment
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	a := row.toModel()
	return &a, nil
}

// ListByParent returns the amendment chain for one contract, ordered by
// id ascending. Id order is insertion order, which the ledger treats as
// chronological.
func (r *AmendmentRepository) ListByParent(ctx context.Context, parentID int64, kind model.ContractKind) ([]model.Amendment, error) {
	var rows []amendmentRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, parent_id, parent_kind, amendment_type, description,
			amendment_value, new_validity_end, registration_date
		FROM amendment
		WHERE parent_id = ? AND parent_kind = ?
		ORDER BY id ASC
	`, parentID, string(kind)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	amendments := make([]model.Amendment, 0, len(rows))
	for _, row := range rows {
		amendments = append(amendments, row.toModel())
	}
	return amendments, nil
}

func (r *AmendmentRepository) ListAll(ctx context.Context) ([]model.Amendment, error) {
	var rows []amendmentRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, parent_id, parent_kind, amendment_type, description,
			amendment_value, new_validity_end, registration_date
		FROM amendment
		ORDER BY id ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	amendments := make([]model.Amendment, 0, len(rows))
	for _, row := range rows {
		amendments = append(amendments, row.toModel())
	}
	return amendments, nil
}

func (r *AmendmentRepository) Update(ctx context.Context, id int64, a model.Amendment) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE amendment
		SET amendment_type = ?, description = ?, amendment_value = ?,
			new_validity_end = ?, registration_date = ?
		WHERE id = ?
	`, a.AmendmentType, a.Description, a.Value, a.NewValidityEnd, a.RegistrationDate, id).Error
}

func (r *AmendmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM amendment WHERE id = ?`, id).Error
}

func (r *AmendmentRepository) DeleteByParent(ctx context.Context, parentID int64, kind model.ContractKind) error {
	return r.db.WithContext(ctx).Exec(`
		DELETE FROM amendment WHERE parent_id = ? AND parent_kind = ?
	`, parentID, string(kind)).Error
}
