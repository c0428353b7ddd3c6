package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"game-arena-backend/metrics"
	"game-arena-backend/models"
)

// BattleService manages the matchmaking lifecycle: create, list, join,
// cancel. All shared state lives in the battles table; the conditional
// writes here are the only concurrency control and must stay that way.
type BattleService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewBattleService(db *gorm.DB, log *zap.Logger) *BattleService {
	return &BattleService{DB: db, Log: log}
}

// List returns battles joined with both sides' photo URLs, newest first.
// An empty status means all statuses.
func (s *BattleService) List(status string) ([]models.BattleListing, error) {
	q := s.DB.Table("battles b").
		Select("b.*, gu1.photo_url AS creator_photo, gu2.photo_url AS opponent_photo").
		Joins("LEFT JOIN game_users gu1 ON b.creator_id = gu1.user_id").
		Joins("LEFT JOIN game_users gu2 ON b.opponent_id = gu2.user_id").
		Order("b.created_at DESC")
	if status != "" {
		q = q.Where("b.status = ?", status)
	}

	battles := []models.BattleListing{}
	if err := q.Scan(&battles).Error; err != nil {
		return nil, err
	}
	return battles, nil
}

// Create inserts a new waiting battle for creatorID. The identifier is a
// UUID, not a timestamp token, so creation is collision-free under load. A
// client-supplied name is slugified; otherwise one is generated from the id.
func (s *BattleService) Create(creatorID int64, name string) (models.Battle, error) {
	id := uuid.NewString()

	name = strings.TrimSpace(name)
	if name != "" {
		name = slug.Make(name)
	} else {
		name = fmt.Sprintf("battle-%s", strings.SplitN(id, "-", 2)[0])
	}

	battle := models.Battle{
		ID:        id,
		Name:      name,
		CreatorID: creatorID,
		Status:    models.BattleWaiting,
	}
	if err := s.DB.Create(&battle).Error; err != nil {
		return models.Battle{}, err
	}

	metrics.BattlesCreatedTotal.Inc()
	s.Log.Info("battle created",
		zap.String("battle_id", battle.ID), zap.Int64("creator_id", creatorID))
	return battle, nil
}

// Join sets userID as the opponent of a waiting battle and moves it to
// in_progress. The write is a compare-and-set: the UPDATE itself requires
// the opponent slot to still be empty, so two concurrent joins can never
// both land. Returns ErrBattleNotFound when the battle is absent or full,
// ErrSelfJoin when userID created the battle.
func (s *BattleService) Join(battleID string, userID int64) (models.Battle, error) {
	res := s.DB.Model(&models.Battle{}).
		Where("id = ? AND opponent_id IS NULL AND creator_id <> ?", battleID, userID).
		Updates(map[string]interface{}{
			"opponent_id": userID,
			"status":      models.BattleInProgress,
		})
	if res.Error != nil {
		return models.Battle{}, res.Error
	}

	if res.RowsAffected == 0 {
		// Lost the CAS. Re-read once to tell the caller why.
		var b models.Battle
		err := s.DB.Where("id = ?", battleID).First(&b).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Battle{}, ErrBattleNotFound
		}
		if err != nil {
			return models.Battle{}, err
		}
		if b.CreatorID == userID && b.Status.CanTransitionTo(models.BattleInProgress) {
			return models.Battle{}, ErrSelfJoin
		}
		return models.Battle{}, ErrBattleNotFound
	}

	var battle models.Battle
	if err := s.DB.Where("id = ?", battleID).First(&battle).Error; err != nil {
		return models.Battle{}, err
	}

	metrics.BattlesJoinedTotal.Inc()
	s.Log.Info("battle joined",
		zap.String("battle_id", battleID), zap.Int64("opponent_id", userID))
	return battle, nil
}

// Cancel deletes a battle that is still waiting. The DELETE carries the
// status condition itself, so a battle that a concurrent join just moved to
// in_progress survives. Returns ErrBattleNotFound when the battle is absent,
// ErrBattleNotCancellable when it exists but already left waiting.
func (s *BattleService) Cancel(battleID string) error {
	res := s.DB.Where("id = ? AND status = ?", battleID, models.BattleWaiting).
		Delete(&models.Battle{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		var b models.Battle
		err := s.DB.Where("id = ?", battleID).First(&b).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBattleNotFound
		}
		if err != nil {
			return err
		}
		return ErrBattleNotCancellable
	}

	metrics.BattlesCancelledTotal.Inc()
	s.Log.Info("battle cancelled", zap.String("battle_id", battleID))
	return nil
}

// SweepStale deletes waiting battles created more than ttl ago and returns
// how many were removed. Joined battles are untouched: the status condition
// makes the delete race-safe against concurrent joins.
func (s *BattleService) SweepStale(ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)
	res := s.DB.Where("status = ? AND created_at < ?", models.BattleWaiting, cutoff).
		Delete(&models.Battle{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		metrics.BattlesSweptTotal.Add(float64(res.RowsAffected))
	}
	return res.RowsAffected, nil
}
