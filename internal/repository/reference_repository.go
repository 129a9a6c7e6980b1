package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
)

// ReferenceRepository covers the supplier and event-title lookup
// entities that contract creation auto-registers on first use.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

type supplierRow struct {
	ID    int64 `gorm:"primaryKey"`
	Name  string
	TaxID string `gorm:"column:tax_id"`
	Notes string
}

func (supplierRow) TableName() string { return "supplier" }

type eventTitleRow struct {
	ID        int64 `gorm:"primaryKey"`
	Title     string
	City      string
	State     string
	DateStart string
	DateEnd   string
}

func (eventTitleRow) TableName() string { return "event_title" }

func (r *ReferenceRepository) CreateSupplier(ctx context.Context, s model.Supplier) (int64, error) {
	row := supplierRow{Name: s.Name, TaxID: s.TaxID, Notes: s.Notes}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *ReferenceRepository) FindSupplierByName(ctx context.Context, name string) (*model.Supplier, error) {
	var row supplierRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, tax_id, notes FROM supplier WHERE name = ? LIMIT 1
	`, name).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Supplier{ID: row.ID, Name: row.Name, TaxID: row.TaxID, Notes: row.Notes}, nil
}

func (r *ReferenceRepository) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	var rows []supplierRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, tax_id, notes FROM supplier ORDER BY name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	suppliers := make([]model.Supplier, 0, len(rows))
	for _, row := range rows {
		suppliers = append(suppliers, model.Supplier{ID: row.ID, Name: row.Name, TaxID: row.TaxID, Notes: row.Notes})
	}
	return suppliers, nil
}

func (r *ReferenceRepository) UpdateSupplier(ctx context.Context, s model.Supplier) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE supplier SET name = ?, tax_id = ?, notes = ? WHERE id = ?
	`, s.Name, s.TaxID, s.Notes, s.ID).Error
}

func (r *ReferenceRepository) DeleteSupplier(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM supplier WHERE id = ?`, id).Error
}

func (r *ReferenceRepository) CreateEventTitle(ctx context.Context, t model.EventTitle) (int64, error) {
	row := eventTitleRow{Title: t.Title, City: t.City, State: t.State, DateStart: t.DateStart, DateEnd: t.DateEnd}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *ReferenceRepository) FindEventTitleByName(ctx context.Context, title string) (*model.EventTitle, error) {
	var row eventTitleRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, title, city, state, date_start, date_end
		FROM event_title WHERE title = ? LIMIT 1
	`, title).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.EventTitle{ID: row.ID, Title: row.Title, City: row.City, State: row.State, DateStart: row.DateStart, DateEnd: row.DateEnd}, nil
}

func (r *ReferenceRepository) ListEventTitles(ctx context.Context) ([]model.EventTitle, error) {
	var rows []eventTitleRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, title, city, state, date_start, date_end
		FROM event_title ORDER BY title ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	titles := make([]model.EventTitle, 0, len(rows))
	for _, row := range rows {
		titles = append(titles, model.EventTitle{ID: row.ID, Title: row.Title, City: row.City, State: row.State, DateStart: row.DateStart, DateEnd: row.DateEnd})
	}
	return titles, nil
}

func (r *ReferenceRepository) UpdateEventTitle(ctx context.Context, t model.EventTitle) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE event_title SET title = ?, city = ?, state = ?, date_start = ?, date_end = ?
		WHERE id = ?
	`, t.Title, t.City, t.State, t.DateStart, t.DateEnd, t.ID).Error
}

func (r *ReferenceRepository) DeleteEventTitle(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM event_title WHERE id = ?`, id).Error
}
