package models

import "strings"

// Job is an entry of the static job catalog.
type Job struct {
	ID         int
	Title      string
	Company    string
	Location   string
	Salary     string
	Type       string
	Posted     string
	MatchScore int
	Skills     []string
}

type MatchTier string

const (
	TierTop    MatchTier = "top"
	TierStrong MatchTier = "strong"
	TierFair   MatchTier = "fair"
)

func (j Job) Tier() MatchTier {
	switch {
	case j.MatchScore >= 90:
		return TierTop
	case j.MatchScore >= 80:
		return TierStrong
	default:
		return TierFair
	}
}

// Matches reports whether query is a case-insensitive substring of the
// title, the company or any skill. An empty query matches everything.
func (j Job) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(j.Title), q) || strings.Contains(strings.ToLower(j.Company), q) {
		return true
	}
	for _, s := range j.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// Catalog returns a fresh copy of the built-in job listings.
func Catalog() []Job {
	return []Job{
		{1, "Senior Full Stack Engineer", "TechNova Solutions", "Remote (San Francisco, CA)", "$140k - $180k", "Full-time", "2 hours ago", 98,
			[]string{"React", "Node.js", "AWS", "TypeScript"}},
		{2, "Product Designer", "CreativeFlow", "Hybrid (New York, NY)", "$120k - $150k", "Full-time", "5 hours ago", 92,
			[]string{"Figma", "UI/UX", "User Research"}},
		{3, "Backend Developer (Go)", "Streamline Systems", "Remote", "$130k - $170k", "Contract", "1 day ago", 85,
			[]string{"Golang", "PostgreSQL", "Docker", "gRPC"}},
		{4, "Frontend Lead", "BrightPixel", "Austin, TX", "$150k - $190k", "Full-time", "3 days ago", 78,
			[]string{"React", "Next.js", "Tailwind CSS", "Architecture"}},
		{5, "DevOps Architect", "CloudScale", "Remote", "$160k - $210k", "Full-time", "1 week ago", 72,
			[]string{"Kubernetes", "Terraform", "CI/CD", "Azure"}},
	}
}
