package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/careerpath/internal/client/client"
	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/client/ui"
	"github.com/dmitrijs2005/careerpath/internal/client/views"
)

func (a *App) Dashboard(ctx context.Context) error {
	a.goTo(ctx, ui.RouteDashboard)
	return nil
}

func (a *App) Skills(ctx context.Context) error {
	a.goTo(ctx, ui.RouteSkills)
	return nil
}

func (a *App) Roadmap(ctx context.Context) error {
	a.goTo(ctx, ui.RouteRoadmap)
	return nil
}

func (a *App) Settings(ctx context.Context) error {
	a.goTo(ctx, ui.RouteSettings)
	return nil
}

// Jobs opens the job board; any arguments form the search query.
func (a *App) Jobs(ctx context.Context, args []string) error {
	a.jobs.Search(strings.Join(args, " "))
	a.goTo(ctx, ui.RouteJobs)
	return nil
}

func (a *App) ToggleAlerts(ctx context.Context) error {
	if a.Route() != ui.RouteJobs {
		a.goTo(ctx, ui.RouteJobs)
	}
	if a.jobs.ToggleAlerts() {
		printlnFn("Job alerts enabled.")
	} else {
		printlnFn("Job alerts disabled.")
	}
	return nil
}

// AddSkill prompts for a skill on the skills page and adds it.
func (a *App) AddSkill(ctx context.Context) error {
	if !a.ensure(ctx, ui.RouteSkills, a.skills) {
		return views.ErrNoUser
	}

	name, err := getSimpleText(a.reader, "Enter skill name", a.out)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Enter category ("+joinNames(models.Categories)+")", a.out)
	if err != nil {
		return err
	}
	level, err := getSimpleText(a.reader, "Enter level ("+joinNames(models.Levels)+")", a.out)
	if err != nil {
		return err
	}

	// Unknown names stay empty and are refused by the view.
	c, _ := models.ParseCategory(category)
	l, _ := models.ParseLevel(level)

	if _, err := a.skills.Add(models.NewSkill{Name: name, Category: c, Level: l}); err != nil {
		return a.report(err)
	}
	renderSkills(a.out, a.skills)
	return nil
}

// UpdateLevel handles "level <id> <level>", prompting for what is missing.
func (a *App) UpdateLevel(ctx context.Context, args []string) error {
	if !a.ensure(ctx, ui.RouteSkills, a.skills) {
		return views.ErrNoUser
	}

	id, err := idArg(a.reader, args, "Enter skill id", a.out)
	if err != nil {
		return a.report(err)
	}

	raw := ""
	if len(args) > 1 {
		raw = strings.Join(args[1:], " ")
	} else if raw, err = getSimpleText(a.reader, "Enter level ("+joinNames(models.Levels)+")", a.out); err != nil {
		return err
	}
	level, err := models.ParseLevel(raw)
	if err != nil {
		return a.report(err)
	}

	if _, err := a.skills.UpdateLevel(id, level); err != nil {
		return a.report(err)
	}
	renderSkills(a.out, a.skills)
	return nil
}

// AddStep prompts for a roadmap step and adds it as pending.
func (a *App) AddStep(ctx context.Context) error {
	if !a.ensure(ctx, ui.RouteRoadmap, a.roadmap) {
		return views.ErrNoUser
	}

	var ns models.NewRoadmapStep
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter step title", &ns.Title},
		{"Enter description", &ns.Description},
		{"Enter duration (e.g. 2 weeks)", &ns.Duration},
		{"Enter topics, comma separated", &ns.Topics},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if _, err := a.roadmap.AddStep(ns); err != nil {
		return a.report(err)
	}
	renderRoadmap(a.out, a.roadmap.State())
	return nil
}

func (a *App) Start(ctx context.Context, args []string) error {
	return a.stepAction(ctx, args, a.roadmap.Start)
}

func (a *App) Complete(ctx context.Context, args []string) error {
	return a.stepAction(ctx, args, a.roadmap.Complete)
}

func (a *App) stepAction(ctx context.Context, args []string, fn func(int64) (models.RoadmapStep, error)) error {
	if !a.ensure(ctx, ui.RouteRoadmap, a.roadmap) {
		return views.ErrNoUser
	}
	id, err := idArg(a.reader, args, "Enter step id", a.out)
	if err != nil {
		return a.report(err)
	}
	if _, err := fn(id); err != nil {
		return a.report(err)
	}
	renderRoadmap(a.out, a.roadmap.State())
	return nil
}

// Delete removes a roadmap step after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.ensure(ctx, ui.RouteRoadmap, a.roadmap) {
		return views.ErrNoUser
	}
	id, err := idArg(a.reader, args, "Enter step id to delete", a.out)
	if err != nil {
		return a.report(err)
	}
	if err := a.roadmap.Delete(id); err != nil {
		return a.report(err)
	}
	renderRoadmap(a.out, a.roadmap.State())
	return nil
}

// report prints errors the views did not already show as an alert and
// passes err through.
func (a *App) report(err error) error {
	var re *client.RequestError
	switch {
	case errors.As(err, &re),
		errors.Is(err, views.ErrEmptyResponse),
		errors.Is(err, views.ErrIncompleteSkill),
		errors.Is(err, views.ErrUnmounted):
	case errors.Is(err, views.ErrDeclined):
		printlnFn("Cancelled.")
	default:
		printlnFn("Error:", err)
	}
	return err
}

func joinNames[T ~string](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
