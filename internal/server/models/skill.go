package models

import "slices"

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

var (
	Levels     = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}
	Categories = []string{"Frontend", "Backend", "Programming Languages", "Database", "DevOps", "Tools"}
)

func ValidLevel(l string) bool    { return slices.Contains(Levels, l) }
func ValidCategory(c string) bool { return slices.Contains(Categories, c) }

type Skill struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"-"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
}
