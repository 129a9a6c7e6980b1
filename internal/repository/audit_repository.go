package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/contract-registry/internal/model"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Append(ctx context.Context, actor, action string) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO audit_log (actor, action) VALUES (?, ?)
	`, actor, action).Error
}

func (r *AuditRepository) List(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []model.AuditEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, actor, action, created_at AS timestamp
		FROM audit_log
		ORDER BY id DESC
		LIMIT ?
	`, limit).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
