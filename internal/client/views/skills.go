package views

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/client/ui"
)

var (
	ErrIncompleteSkill = errors.New("skill name, category and level are required")
	ErrUnknownSkill    = errors.New("no such skill")
)

type Skills struct {
	base

	loading bool
	user    *models.User
	skills  []models.Skill
}

func NewSkills(vc Context) *Skills {
	return &Skills{base: base{vc: vc}}
}

type SkillsState struct {
	Loading     bool
	User        *models.User
	Skills      []models.Skill
	LevelCounts map[models.SkillLevel]int
}

func (s *Skills) Mount(parent context.Context) error {
	ctx := s.begin(parent)
	if err := s.apply(ctx, func() {
		s.loading = true
		s.user, s.skills = nil, nil
	}); err != nil {
		return err
	}

	user, ok := s.loadUser(ctx)
	if !ok {
		return s.apply(ctx, func() { s.loading = false })
	}

	r := s.vc.API.FetchSkills(ctx, user.ID)
	if r.IsFailed() {
		s.vc.Log.Warn(ctx, "skills fetch failed", "user_id", user.ID, "error", r.Err())
	}

	return s.apply(ctx, func() {
		s.user = user
		s.skills = r.Value()
		s.loading = false
	})
}

func (s *Skills) State() SkillsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SkillsState{
		Loading:     s.loading,
		User:        s.user,
		Skills:      s.skills,
		LevelCounts: LevelCounts(s.skills),
	}
}

// LevelShare is the bar width for level, in percent.
func (s *Skills) LevelShare(level models.SkillLevel) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LevelShare(s.skills, level)
}

// Add creates a skill and appends the server's record. Incomplete input is
// refused locally with an alert and no request.
func (s *Skills) Add(ns models.NewSkill) (models.Skill, error) {
	ctx, err := s.current()
	if err != nil {
		return models.Skill{}, err
	}

	ns.Name = strings.TrimSpace(ns.Name)
	if !ns.Complete() {
		s.vc.Alerts.Alert(ui.MsgFillAllFields)
		return models.Skill{}, ErrIncompleteSkill
	}

	user := s.owner()
	if user == nil {
		return models.Skill{}, ErrNoUser
	}

	added, err := outcome(ctx, s.vc, "add skill", s.vc.API.AddSkill(ctx, user.ID, ns))
	if err != nil {
		return models.Skill{}, err
	}

	return added, s.apply(ctx, func() {
		s.skills = append(slices.Clip(s.skills), added)
	})
}

// UpdateLevel changes one skill's level and replaces it with the server's
// record.
func (s *Skills) UpdateLevel(skillID int64, level models.SkillLevel) (models.Skill, error) {
	ctx, err := s.current()
	if err != nil {
		return models.Skill{}, err
	}
	if !level.Valid() {
		return models.Skill{}, models.ErrUnknownLevel
	}
	if !s.has(skillID) {
		return models.Skill{}, ErrUnknownSkill
	}

	updated, err := outcome(ctx, s.vc, "update skill level", s.vc.API.UpdateSkillLevel(ctx, skillID, level))
	if err != nil {
		return models.Skill{}, err
	}

	return updated, s.apply(ctx, func() {
		s.skills = replaceByID(s.skills, skillID, updated, func(k models.Skill) int64 { return k.ID })
	})
}

func (s *Skills) owner() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Skills) has(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.ContainsFunc(s.skills, func(k models.Skill) bool { return k.ID == id })
}

// replaceByID returns a new slice with every element whose id matches
// swapped for v. The input is not modified.
func replaceByID[T any](in []T, id int64, v T, idOf func(T) int64) []T {
	out := make([]T, len(in))
	for i, e := range in {
		if idOf(e) == id {
			out[i] = v
		} else {
			out[i] = e
		}
	}
	return out
}

func removeByID[T any](in []T, id int64, idOf func(T) int64) []T {
	out := make([]T, 0, len(in))
	for _, e := range in {
		if idOf(e) != id {
			out = append(out, e)
		}
	}
	return out
}
