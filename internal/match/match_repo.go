package match

import (
	"errors"

	"gorm.io/gorm"
)

// MatchRepository defines methods to interact with persisted matches.
// The engine never touches storage mid-transition; the controller
// loads a snapshot, runs the engine, then replaces the snapshot here.
type MatchRepository interface {
	CreateMatch(rec *MatchRecord) error
	GetMatchByID(id uint) (*MatchRecord, error)
	UpdateMatch(rec *MatchRecord) error
	DeleteMatch(id uint) error
	GetMatches(filters map[string]interface{}, page, pageSize int) ([]MatchRecord, int64, error)
	GetCompletedMatches() ([]MatchRecord, error)

	// Transaction support
	WithTransaction(txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM.
type GormMatchRepository struct {
	db *gorm.DB
}

func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support
func (r *GormMatchRepository) WithTransaction(txFunc func(MatchRepository) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	err := txFunc(txRepo)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *GormMatchRepository) CreateMatch(rec *MatchRecord) error {
	return r.db.Create(rec).Error
}

func (r *GormMatchRepository) GetMatchByID(id uint) (*MatchRecord, error) {
	var rec MatchRecord
	result := r.db.First(&rec, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &rec, nil
}

func (r *GormMatchRepository) UpdateMatch(rec *MatchRecord) error {
	return r.db.Save(rec).Error
}

// DeleteMatch soft-deletes a match record.
func (r *GormMatchRepository) DeleteMatch(id uint) error {
	return r.db.Delete(&MatchRecord{}, id).Error
}

// GetMatches retrieves matches based on filters with pagination.
func (r *GormMatchRepository) GetMatches(filters map[string]interface{}, page, pageSize int) ([]MatchRecord, int64, error) {
	var records []MatchRecord
	var total int64

	query := r.db.Model(&MatchRecord{})
	for key, value := range filters {
		query = query.Where(key, value)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	result := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&records)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return records, total, nil
}

// GetCompletedMatches returns every completed match, oldest first, for
// career aggregation.
func (r *GormMatchRepository) GetCompletedMatches() ([]MatchRecord, error) {
	var records []MatchRecord
	result := r.db.Where("completed = ?", true).Order("created_at ASC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}
