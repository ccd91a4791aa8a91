package auth

import (
	"time"

	"gorm.io/gorm"
)

// Scorer is an account allowed to run live scoring. All mutating match
// operations sit behind a scorer token.
type Scorer struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"-" gorm:"not null"`
	LastLoginAt  *time.Time
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=30" example:"ravi_scorer"`
	DisplayName string `json:"display_name,omitempty" example:"Ravi"`
	Password    string `json:"password" binding:"required,min=8,max=72" example:"password123"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ravi_scorer"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	Scorer      ScorerResponse `json:"scorer"`
}

type ScorerResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func FilterScorerRecord(s *Scorer) ScorerResponse {
	return ScorerResponse{
		ID:          s.ID,
		Username:    s.Username,
		DisplayName: s.DisplayName,
		CreatedAt:   s.CreatedAt,
	}
}
