package storage

import (
	"gorm.io/gorm"

	"github.com/patrisenra/pasenca/internal/models"
)

// DatabaseLeadStore persists leads to PostgreSQL so they survive restarts
// and can be picked up by the follow-up tooling. Sessions stay in memory
// regardless of which lead store is active.
type DatabaseLeadStore struct {
	db *gorm.DB
}

// NewDatabaseLeadStore creates a lead store backed by the given database.
func NewDatabaseLeadStore(db *gorm.DB) *DatabaseLeadStore {
	return &DatabaseLeadStore{db: db}
}

// Append records a completed lead.
func (d *DatabaseLeadStore) Append(lead *models.Lead) error {
	return d.db.Create(lead).Error
}

// All returns the recorded leads in chronological order.
func (d *DatabaseLeadStore) All() ([]*models.Lead, error) {
	var leads []*models.Lead
	if err := d.db.Order("created_at asc").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}
