package models

import "time"

// BattleStatus is the closed set of battle lifecycle states.
type BattleStatus string

const (
	BattleWaiting    BattleStatus = "waiting"
	BattleInProgress BattleStatus = "in_progress"
	BattleFinished   BattleStatus = "finished"
)

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// step. The machine only moves forward: waiting → in_progress → finished.
func (s BattleStatus) CanTransitionTo(next BattleStatus) bool {
	switch s {
	case BattleWaiting:
		return next == BattleInProgress
	case BattleInProgress:
		return next == BattleFinished
	default:
		return false
	}
}

// Valid reports whether s is one of the known lifecycle states.
func (s BattleStatus) Valid() bool {
	switch s {
	case BattleWaiting, BattleInProgress, BattleFinished:
		return true
	}
	return false
}

// Battle is a matchmaking record pairing up to two players. Created in
// waiting with no opponent; a successful join sets the opponent and moves it
// to in_progress. Only waiting battles may be deleted.
type Battle struct {
	ID         string       `gorm:"primaryKey;type:uuid" json:"id"`
	Name       string       `gorm:"type:varchar(255);not null" json:"name"`
	CreatorID  int64        `gorm:"column:creator_id;not null;index" json:"creator_id"`
	OpponentID *int64       `gorm:"column:opponent_id" json:"opponent_id"`
	Status     BattleStatus `gorm:"type:varchar(50)" json:"status"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (Battle) TableName() string { return "battles" }

// BattleListing is a Battle joined with both sides' display attributes, the
// shape GET /battles returns.
type BattleListing struct {
	Battle
	CreatorPhoto  *string `json:"creator_photo"`
	OpponentPhoto *string `json:"opponent_photo"`
}
