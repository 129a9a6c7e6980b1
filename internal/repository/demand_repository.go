package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
)

type DemandRepository struct {
	db *gorm.DB
}

func NewDemandRepository(db *gorm.DB) *DemandRepository {
	return &DemandRepository{db: db}
}

type demandRow struct {
	Code          int64 `gorm:"primaryKey"`
	EntryDate     string
	Requester     string
	ProtocolDate  string
	LetterRef     string
	ProcessNumber string
	Status        string
}

func (demandRow) TableName() string { return "demand" }

func (r demandRow) toModel() model.Demand {
	return model.Demand{
		Code:          r.Code,
		EntryDate:     r.EntryDate,
		Requester:     r.Requester,
		ProtocolDate:  r.ProtocolDate,
		LetterRef:     r.LetterRef,
		ProcessNumber: r.ProcessNumber,
		Status:        model.DemandStatus(r.Status),
	}
}

func (r *DemandRepository) Create(ctx context.Context, d model.Demand) (int64, error) {
	row := demandRow{
		EntryDate:     d.EntryDate,
		Requester:     d.Requester,
		ProtocolDate:  d.ProtocolDate,
		LetterRef:     d.LetterRef,
		ProcessNumber: d.ProcessNumber,
		Status:        string(d.Status),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.Code, nil
}

func (r *DemandRepository) GetByCode(ctx context.Context, code int64) (*model.Demand, error) {
	var row demandRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT code, entry_date, requester, protocol_date, letter_ref, process_number, status
		FROM demand
		WHERE code = ?
		LIMIT 1
	`, code).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.Code == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	d := row.toModel()
	return &d, nil
}

func (r *DemandRepository) List(ctx context.Context) ([]model.Demand, error) {
	var rows []demandRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT code, entry_date, requester, protocol_date, letter_ref, process_number, status
		FROM demand
		ORDER BY code ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	demands := make([]model.Demand, 0, len(rows))
	for _, row := range rows {
		demands = append(demands, row.toModel())
	}
	return demands, nil
}

func (r *DemandRepository) Update(ctx context.Context, d model.Demand) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE demand SET
			entry_date = ?, requester = ?, protocol_date = ?,
			letter_ref = ?, process_number = ?, status = ?
		WHERE code = ?
	`, d.EntryDate, d.Requester, d.ProtocolDate, d.LetterRef, d.ProcessNumber, string(d.Status), d.Code).Error
}

func (r *DemandRepository) Delete(ctx context.Context, code int64) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM demand WHERE code = ?`, code).Error
}
