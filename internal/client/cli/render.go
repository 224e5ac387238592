package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/client/views"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleAlert  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

	statusStyles = map[models.StepStatus]lipgloss.Style{
		models.StatusPending:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

// barWidth is the number of cells a 100% bar takes.
const barWidth = 20

func renderHome(w io.Writer) {
	fmt.Fprintln(w, styleTitle.Render("CareerPath"))
	fmt.Fprintln(w, "Track your skills, plan your learning roadmap and find matching jobs.")
	fmt.Fprintln(w, styleMuted.Render("Type 'register' to get started or 'login' if you have an account."))
}

func renderDashboard(w io.Writer, st views.DashboardState) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Welcome back, %s!", st.FirstName)))
	if st.User != nil && st.User.CareerGoal != "" {
		fmt.Fprintln(w, styleMuted.Render("Goal: "+st.User.CareerGoal))
	}
	if st.Loading {
		fmt.Fprintln(w, "Loading...")
		return
	}

	fmt.Fprintf(w, "Skills: %d  Roadmap steps: %d  Completed: %d  Progress: %d%%\n",
		len(st.Skills), len(st.Steps), st.Completed, st.Progress)
	fmt.Fprintln(w, bar(float64(st.Progress)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeader.Render("Current focus"))
	switch st.FocusAction {
	case views.FocusContinue:
		fmt.Fprintf(w, "  %s %s\n", st.Focus.Title, statusLabel(st.Focus.Status))
	case views.FocusAllDone:
		fmt.Fprintln(w, "  All steps completed.")
	default:
		fmt.Fprintln(w, "  No roadmap yet. Type 'roadmap' to create your roadmap.")
	}

	if len(st.Skills) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleHeader.Render("Your skills"))
		for _, s := range st.Skills {
			fmt.Fprintf(w, "  %-24s %s\n", s.Name, s.Level)
		}
	}

	if len(st.RecentSteps) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleHeader.Render("Roadmap"))
		for _, s := range st.RecentSteps {
			fmt.Fprintf(w, "  %-32s %s\n", s.Title, statusLabel(s.Status))
		}
	}
}

func renderSkills(w io.Writer, v *views.Skills) {
	st := v.State()
	fmt.Fprintln(w, styleTitle.Render("Skills"))
	if st.Loading {
		fmt.Fprintln(w, "Loading...")
		return
	}

	for _, l := range models.Levels {
		fmt.Fprintf(w, "  %-13s %s %s\n", l, bar(v.LevelShare(l)), plural(st.LevelCounts[l], "skill"))
	}
	fmt.Fprintln(w)

	if len(st.Skills) == 0 {
		fmt.Fprintln(w, styleMuted.Render("No skills yet. Type 'addskill' to add one."))
		return
	}

	fmt.Fprintln(w, styleHeader.Render(fmt.Sprintf("%-6s %-24s %-22s %s", "ID", "Name", "Category", "Level")))
	for _, s := range st.Skills {
		fmt.Fprintf(w, "%-6d %-24s %-22s %s\n", s.ID, s.Name, s.Category, s.Level)
	}
}

func renderRoadmap(w io.Writer, st views.RoadmapState) {
	fmt.Fprintln(w, styleTitle.Render("Learning roadmap"))
	if st.Loading {
		fmt.Fprintln(w, "Loading...")
		return
	}

	fmt.Fprintf(w, "Progress: %d%%  %s\n", st.Progress, bar(float64(st.Progress)))
	fmt.Fprintf(w, "Pending: %d  In progress: %d  Completed: %d\n",
		st.StatusCounts[models.StatusPending], st.StatusCounts[models.StatusInProgress], st.StatusCounts[models.StatusCompleted])
	fmt.Fprintln(w)

	if len(st.Steps) == 0 {
		fmt.Fprintln(w, styleMuted.Render("Your roadmap is empty. Type 'addstep' to create your roadmap."))
		return
	}

	for i, s := range st.Steps {
		fmt.Fprintf(w, "%d. [#%d] %s %s\n", i+1, s.ID, styleHeader.Render(s.Title), statusLabel(s.Status))
		if s.Description != "" {
			fmt.Fprintf(w, "   %s\n", s.Description)
		}
		if s.Duration != "" {
			fmt.Fprintf(w, "   %s\n", styleMuted.Render("Duration: "+s.Duration))
		}
		if topics := s.TopicList(); len(topics) > 0 {
			fmt.Fprintf(w, "   %s\n", styleMuted.Render("Topics: "+strings.Join(topics, " | ")))
		}
		if actions := views.StepActions(s); len(actions) > 0 {
			fmt.Fprintf(w, "   %s\n", styleMuted.Render("Actions: "+actionHints(s.ID, actions)))
		}
	}
}

func renderJobs(w io.Writer, v *views.Jobs) {
	fmt.Fprintln(w, styleTitle.Render("Job matches"))
	if q := v.Query(); q != "" {
		fmt.Fprintln(w, styleMuted.Render("Search: "+q))
	}

	results := v.Results()
	if len(results) == 0 {
		fmt.Fprintln(w, "No jobs match your search.")
	}
	for _, j := range results {
		fmt.Fprintf(w, "%s  %s\n", styleHeader.Render(j.Title), styleMuted.Render(fmt.Sprintf("%d%% match (%s)", j.MatchScore, j.Tier())))
		fmt.Fprintf(w, "  %s · %s · %s · %s\n", j.Company, j.Location, j.Type, j.Salary)
		fmt.Fprintf(w, "  Skills: %s  Posted %s\n", strings.Join(j.Skills, ", "), j.Posted)
	}

	state := "off"
	if v.AlertsEnabled() {
		state = "on"
	}
	fmt.Fprintln(w, styleMuted.Render("Job alerts: "+state+" (type 'alerts' to toggle)"))
}

func renderProfile(w io.Writer, p views.Profile, ok bool) {
	fmt.Fprintln(w, styleTitle.Render("Settings"))
	if !ok {
		fmt.Fprintln(w, "Not signed in.")
		return
	}
	fmt.Fprintf(w, "[%s] %s\n", p.Initials, p.Name)
	fmt.Fprintf(w, "Email:       %s\n", p.Email)
	fmt.Fprintf(w, "Career goal: %s\n", p.CareerGoal)
}

func statusLabel(s models.StepStatus) string {
	s = s.OrPending()
	return statusStyles[s].Render("(" + s.Label() + ")")
}

func actionHints(id int64, actions []models.StepStatus) string {
	hints := make([]string, 0, len(actions)+1)
	for _, to := range actions {
		switch to {
		case models.StatusInProgress:
			hints = append(hints, fmt.Sprintf("start %d", id))
		case models.StatusCompleted:
			hints = append(hints, fmt.Sprintf("complete %d", id))
		}
	}
	hints = append(hints, fmt.Sprintf("delete %d", id))
	return strings.Join(hints, ", ")
}

// bar draws pct (0..100) as a fixed-width gauge.
func bar(pct float64) string {
	filled := int(pct / 100 * barWidth)
	filled = max(0, min(filled, barWidth))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}
