package player

import (
	"gorm.io/gorm"
)

// Player is a roster entry. Code is the short identifier the scoring
// engine stores in match state; display names are resolved through
// this catalog only.
type Player struct {
	gorm.Model
	Code         string `json:"code" gorm:"uniqueIndex;not null"`
	Name         string `json:"name" gorm:"not null"`
	Nickname     string `json:"nickname,omitempty"`
	BattingStyle string `json:"batting_style,omitempty"` // "right_hand", "left_hand"
	BowlingStyle string `json:"bowling_style,omitempty"` // e.g. "right_arm_medium", "leg_spin"
}

type CreatePlayerRequest struct {
	Code         string `json:"code" binding:"required,min=1,max=30" example:"p7"`
	Name         string `json:"name" binding:"required,min=1,max=100" example:"Ravi Sharma"`
	Nickname     string `json:"nickname,omitempty" example:"Rav"`
	BattingStyle string `json:"batting_style,omitempty" binding:"omitempty,oneof=right_hand left_hand"`
	BowlingStyle string `json:"bowling_style,omitempty"`
}

type UpdatePlayerRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Nickname     *string `json:"nickname,omitempty"`
	BattingStyle *string `json:"batting_style,omitempty" binding:"omitempty,oneof=right_hand left_hand"`
	BowlingStyle *string `json:"bowling_style,omitempty"`
}
