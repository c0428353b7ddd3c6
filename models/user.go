package models

import "time"

// GameUser is the externally-identified player account. One row per distinct
// user_id, created lazily on first /webapp contact. The user_id is trusted as
// supplied by the caller; there is no auth layer in front of this service.
type GameUser struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	PhotoURL  *string   `gorm:"type:varchar(255)" json:"photo_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (GameUser) TableName() string { return "game_users" }
