package models

import "time"

// Character is a player's stat sheet, owned 1:1 by a GameUser. The stored
// level column is never rewritten after creation; the effective level is
// derived from experience against the experience_levels table at read time.
type Character struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        int64     `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Strength      int       `json:"strength"`
	Agility       int       `json:"agility"`
	Intuition     int       `json:"intuition"`
	Endurance     int       `json:"endurance"`
	Intelligence  int       `json:"intelligence"`
	Wisdom        int       `json:"wisdom"`
	UpgradePoints int       `gorm:"column:upgrade_points" json:"upgrade_points"`
	Level         int       `json:"level"`
	Experience    int       `json:"experience"`
	Health        int       `json:"health"`
	MaxHealth     int       `gorm:"column:max_health" json:"max_health"`
	Mana          int       `json:"mana"`
	MaxMana       int       `gorm:"column:max_mana" json:"max_mana"`
	Damage        int       `json:"damage"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Character) TableName() string { return "characters" }

// NewCharacter returns a fresh stat sheet with the schema defaults. These
// mirror the column defaults the reconciler declares for the characters
// table, so rows created through the API and rows backfilled by ALTER TABLE
// look the same.
func NewCharacter(userID int64) Character {
	return Character{
		UserID:        userID,
		Strength:      15,
		Agility:       10,
		Intuition:     10,
		Endurance:     10,
		Intelligence:  10,
		Wisdom:        10,
		UpgradePoints: 5,
		Level:         0,
		Experience:    0,
		Health:        100,
		MaxHealth:     150,
		Mana:          50,
		MaxMana:       50,
		Damage:        10,
	}
}
