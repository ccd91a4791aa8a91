package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines methods to interact with the player catalog.
type PlayerRepository interface {
	CreatePlayer(p *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayerByCode(code string) (*Player, error)
	UpdatePlayer(p *Player) error
	DeletePlayer(id uint) error
	GetPlayers(page, pageSize int) ([]Player, int64, error)
	NamesByCode(codes []string) (map[string]string, error)
}

// GormPlayerRepository implements PlayerRepository using GORM.
type GormPlayerRepository struct {
	db *gorm.DB
}

func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{db: db}
}

func (r *GormPlayerRepository) CreatePlayer(p *Player) error {
	return r.db.Create(p).Error
}

func (r *GormPlayerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	result := r.db.First(&p, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &p, nil
}

func (r *GormPlayerRepository) GetPlayerByCode(code string) (*Player, error) {
	var p Player
	result := r.db.Where("code = ?", code).First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &p, nil
}

func (r *GormPlayerRepository) UpdatePlayer(p *Player) error {
	return r.db.Save(p).Error
}

// DeletePlayer soft-deletes a player record.
func (r *GormPlayerRepository) DeletePlayer(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}

func (r *GormPlayerRepository) GetPlayers(page, pageSize int) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	result := query.Order("code").Offset(offset).Limit(pageSize).Find(&players)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return players, total, nil
}

// NamesByCode resolves display names for a set of scoring identifiers.
// Unknown codes are simply absent from the result.
func (r *GormPlayerRepository) NamesByCode(codes []string) (map[string]string, error) {
	if len(codes) == 0 {
		return map[string]string{}, nil
	}
	var players []Player
	if err := r.db.Where("code IN ?", codes).Find(&players).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.Code] = p.Name
	}
	return names, nil
}
