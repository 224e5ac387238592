package models

import (
	"errors"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("unknown skill category")
	ErrUnknownLevel    = errors.New("unknown skill level")
)

type SkillCategory string

const (
	CategoryFrontend  SkillCategory = "Frontend"
	CategoryBackend   SkillCategory = "Backend"
	CategoryLanguages SkillCategory = "Programming Languages"
	CategoryDatabase  SkillCategory = "Database"
	CategoryDevOps    SkillCategory = "DevOps"
	CategoryTools     SkillCategory = "Tools"
)

// Categories lists the selectable categories in display order.
var Categories = []SkillCategory{
	CategoryFrontend, CategoryBackend, CategoryLanguages,
	CategoryDatabase, CategoryDevOps, CategoryTools,
}

func (c SkillCategory) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (SkillCategory, error) {
	s = strings.TrimSpace(s)
	for _, v := range Categories {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return "", ErrUnknownCategory
}

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

var Levels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

func (l SkillLevel) Valid() bool {
	for _, v := range Levels {
		if v == l {
			return true
		}
	}
	return false
}

func ParseLevel(s string) (SkillLevel, error) {
	s = strings.TrimSpace(s)
	for _, v := range Levels {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return "", ErrUnknownLevel
}

// Skill is a named competency owned by one user. Name and category are
// fixed once created; only the level changes.
type Skill struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	Level    SkillLevel    `json:"level"`
}

// NewSkill is the creation payload.
type NewSkill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	Level    SkillLevel    `json:"level"`
}

// Complete reports whether every field is filled with a known value.
func (s NewSkill) Complete() bool {
	return strings.TrimSpace(s.Name) != "" && s.Category.Valid() && s.Level.Valid()
}
