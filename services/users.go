package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"game-arena-backend/metrics"
	"game-arena-backend/models"
)

// UserService is the character store: one GameUser plus one Character per
// player, created together on first contact.
type UserService struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Leveling *LevelingService
}

func NewUserService(db *gorm.DB, log *zap.Logger, leveling *LevelingService) *UserService {
	return &UserService{DB: db, Log: log, Leveling: leveling}
}

// PlayerView is everything GET /webapp/:user_id reports: the account, the
// stat sheet, the full curve, and the derived level position.
type PlayerView struct {
	User                  models.GameUser
	Character             models.Character
	Levels                []models.ExperienceLevel
	CurrentLevel          int
	ExperienceToNextLevel int
}

// EnsurePlayerAndCharacter returns the existing player and stat sheet for
// user_id, creating both inside one transaction when the player is new.
// The returned created flag distinguishes 200 from 201 at the boundary.
// The character's Level field carries the level derived from experience, not
// the stored column.
func (s *UserService) EnsurePlayerAndCharacter(userID int64, photoURL *string) (models.GameUser, models.Character, bool, error) {
	var user models.GameUser
	err := s.DB.Where("user_id = ?", userID).First(&user).Error
	if err == nil {
		var ch models.Character
		if err := s.DB.Where("user_id = ?", userID).First(&ch).Error; err != nil {
			return models.GameUser{}, models.Character{}, false, err
		}
		if err := s.deriveLevel(&ch); err != nil {
			return models.GameUser{}, models.Character{}, false, err
		}
		return user, ch, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.GameUser{}, models.Character{}, false, err
	}

	user = models.GameUser{UserID: userID, PhotoURL: photoURL}
	ch := models.NewCharacter(userID)
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&ch).Error
	})
	if err != nil {
		return models.GameUser{}, models.Character{}, false, err
	}

	metrics.PlayersCreatedTotal.Inc()
	s.Log.Info("player created", zap.Int64("user_id", userID))
	return user, ch, true, nil
}

// GetPlayerView loads the player, stat sheet, and curve for user_id.
// Returns ErrUserNotFound when no such player exists.
func (s *UserService) GetPlayerView(userID int64) (PlayerView, error) {
	var user models.GameUser
	if err := s.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PlayerView{}, ErrUserNotFound
		}
		return PlayerView{}, err
	}

	var ch models.Character
	if err := s.DB.Where("user_id = ?", userID).First(&ch).Error; err != nil {
		return PlayerView{}, err
	}

	levels, err := s.Leveling.Levels()
	if err != nil {
		return PlayerView{}, err
	}

	current, toNext := Progress(levels, ch.Experience)
	ch.Level = current

	return PlayerView{
		User:                  user,
		Character:             ch,
		Levels:                levels,
		CurrentLevel:          current,
		ExperienceToNextLevel: toNext,
	}, nil
}

// deriveLevel overwrites the in-memory Level with the curve lookup. The
// stored column stays untouched.
func (s *UserService) deriveLevel(ch *models.Character) error {
	levels, err := s.Leveling.Levels()
	if err != nil {
		return err
	}
	ch.Level, _ = Progress(levels, ch.Experience)
	return nil
}
