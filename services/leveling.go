package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"game-arena-backend/models"
)

// levelRanges is the full experience curve. Contiguous, non-overlapping,
// levels 0 through 10. Changing a range after first seed requires a manual
// migration; the seeder deliberately never overwrites existing rows.
var levelRanges = []models.ExperienceLevel{
	{Level: 0, MinExperience: 0, MaxExperience: 50},
	{Level: 1, MinExperience: 51, MaxExperience: 100},
	{Level: 2, MinExperience: 101, MaxExperience: 300},
	{Level: 3, MinExperience: 301, MaxExperience: 600},
	{Level: 4, MinExperience: 601, MaxExperience: 1000},
	{Level: 5, MinExperience: 1001, MaxExperience: 1500},
	{Level: 6, MinExperience: 1501, MaxExperience: 2100},
	{Level: 7, MinExperience: 2101, MaxExperience: 2800},
	{Level: 8, MinExperience: 2801, MaxExperience: 3600},
	{Level: 9, MinExperience: 3601, MaxExperience: 4500},
	{Level: 10, MinExperience: 4501, MaxExperience: 5500},
}

// LevelingService owns the static experience curve: seeding it at startup
// and resolving experience values to levels.
type LevelingService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewLevelingService(db *gorm.DB, log *zap.Logger) *LevelingService {
	return &LevelingService{DB: db, Log: log}
}

// Seed inserts the eleven curve rows, ignoring conflicts on level. Safe to
// run every boot: the table ends up with exactly the same eleven rows no
// matter how often it runs.
func (s *LevelingService) Seed() error {
	rows := make([]models.ExperienceLevel, len(levelRanges))
	copy(rows, levelRanges)

	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "level"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		return err
	}
	s.Log.Info("experience levels seeded", zap.Int("levels", len(rows)))
	return nil
}

// Levels returns every curve row ordered by level ascending.
func (s *LevelingService) Levels() ([]models.ExperienceLevel, error) {
	var levels []models.ExperienceLevel
	err := s.DB.Order("level ASC").Find(&levels).Error
	return levels, err
}

// Progress resolves an experience value against the curve. It scans the rows
// in ascending order for the first range containing exp. Experience beyond
// the top range clamps to the highest level with nothing left to earn, and
// an empty curve yields level 0.
func Progress(levels []models.ExperienceLevel, exp int) (currentLevel, toNextLevel int) {
	for _, l := range levels {
		if l.Contains(exp) {
			return l.Level, l.MaxExperience - exp
		}
	}
	if n := len(levels); n > 0 && exp > levels[n-1].MaxExperience {
		return levels[n-1].Level, 0
	}
	return 0, 0
}
