package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstName(t *testing.T) {
	var anon *SessionUser
	assert.Equal(t, "Student", anon.FirstName())
	assert.Equal(t, "Student", (&SessionUser{Name: "   "}).FirstName())
	assert.Equal(t, "Anamika", (&SessionUser{Name: "Anamika Singh"}).FirstName())

	var u *User
	assert.Equal(t, "Student", u.FirstName())
	assert.Equal(t, "Ravi", (&User{Name: "Ravi"}).FirstName())
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AS", SessionUser{Name: "anamika singh"}.Initials())
	assert.Equal(t, "AB", SessionUser{Name: "Ana Bea Cruz"}.Initials())
	assert.Equal(t, "", SessionUser{}.Initials())
}

func TestParseCategoryAndLevel(t *testing.T) {
	c, err := ParseCategory("programming languages")
	require.NoError(t, err)
	assert.Equal(t, CategoryLanguages, c)

	_, err = ParseCategory("Cooking")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	l, err := ParseLevel(" advanced ")
	require.NoError(t, err)
	assert.Equal(t, LevelAdvanced, l)

	_, err = ParseLevel("Expert")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNewSkill_Complete(t *testing.T) {
	assert.True(t, NewSkill{Name: "Go", Category: CategoryBackend, Level: LevelBeginner}.Complete())
	assert.False(t, NewSkill{Name: " ", Category: CategoryBackend, Level: LevelBeginner}.Complete())
	assert.False(t, NewSkill{Name: "Go", Category: "", Level: LevelBeginner}.Complete())
	assert.False(t, NewSkill{Name: "Go", Category: CategoryBackend, Level: "Guru"}.Complete())
}

func TestStepStatus(t *testing.T) {
	assert.Equal(t, StatusPending, StepStatus("").OrPending())
	assert.Equal(t, StatusPending, StepStatus("weird").OrPending())
	assert.Equal(t, StatusCompleted, StatusCompleted.OrPending())
	assert.Equal(t, "in progress", StatusInProgress.Label())

	s, err := ParseStatus("In-Progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = ParseStatus("done")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestTopicList(t *testing.T) {
	assert.Nil(t, RoadmapStep{}.TopicList())
	assert.Equal(t, []string{"HTML", "CSS", "HTML"}, RoadmapStep{Topics: "HTML, CSS,,HTML "}.TopicList())
}

func TestJobs(t *testing.T) {
	jobs := Catalog()
	require.Len(t, jobs, 5)

	assert.Equal(t, TierTop, jobs[0].Tier())
	assert.Equal(t, TierStrong, jobs[2].Tier())
	assert.Equal(t, TierFair, jobs[3].Tier())

	assert.True(t, jobs[2].Matches("golang"), "skill match")
	assert.True(t, jobs[1].Matches("CREATIVE"), "company match")
	assert.True(t, jobs[4].Matches("architect"), "title match")
	assert.False(t, jobs[1].Matches("kubernetes"))
	assert.True(t, jobs[0].Matches("  "))

	jobs[0].Skills[0] = "mutated"
	assert.Equal(t, "React", Catalog()[0].Skills[0], "catalog is copied per call")
}
