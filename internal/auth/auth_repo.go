package auth

import (
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateScorer(s *Scorer) error
	GetScorerByUsername(username string) (*Scorer, error)
	GetScorerByID(id uint) (*Scorer, error)
	UpdateScorer(s *Scorer) error
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateScorer(s *Scorer) error {
	return r.db.Create(s).Error
}

func (r *authRepository) GetScorerByUsername(username string) (*Scorer, error) {
	var s Scorer
	if err := r.db.Where("username = ?", username).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *authRepository) GetScorerByID(id uint) (*Scorer, error) {
	var s Scorer
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *authRepository) UpdateScorer(s *Scorer) error {
	return r.db.Save(s).Error
}
