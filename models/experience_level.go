package models

// ExperienceLevel maps a contiguous experience range to a level number.
// Static reference data: seeded once at startup, read-only afterwards.
type ExperienceLevel struct {
	Level         int `gorm:"primaryKey;autoIncrement:false" json:"level"`
	MinExperience int `gorm:"column:min_experience;not null" json:"min_experience"`
	MaxExperience int `gorm:"column:max_experience;not null" json:"max_experience"`
}

func (ExperienceLevel) TableName() string { return "experience_levels" }

// Contains reports whether exp falls inside this level's range.
func (l ExperienceLevel) Contains(exp int) bool {
	return exp >= l.MinExperience && exp <= l.MaxExperience
}
