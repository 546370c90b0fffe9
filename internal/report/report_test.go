package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGradeThresholdsAreInclusive(t *testing.T) {
	tests := []struct {
		percentage int
		grade      string
	}{
		{100, "A"}, {90, "A"},
		{89, "B"}, {80, "B"},
		{79, "C"}, {70, "C"},
		{69, "D"}, {60, "D"},
		{59, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.grade, GradeFor(tt.percentage), "percentage %d", tt.percentage)
	}
}

func TestPercentageRounds(t *testing.T) {
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 50, Percentage(1, 2))
	assert.Equal(t, 0, Percentage(0, 100))
	assert.Equal(t, 100, Percentage(100, 100))
	assert.Equal(t, 0, Percentage(10, 0))
}

func encounterWith(intents map[string]int, questions int) Encounter {
	start := time.Now().Add(-15 * time.Minute)
	return Encounter{
		SessionID:  "s1",
		UserID:     "u1",
		Condition:  "dengue fever",
		Start:      start,
		End:        time.Now(),
		Intents:    intents,
		Questions:  questions,
		Objectives: []string{"a", "b", "c"},
	}
}

func TestFromEncounterStrengths(t *testing.T) {
	rep := FromEncounter(encounterWith(map[string]int{
		"history_taking":     3,
		"symptom_assessment": 4,
		"family_history":     1,
		"social_history":     1,
		"medication_history": 1,
	}, 10))

	assert.Contains(t, rep.Strengths, "comprehensive history taking")
	assert.Contains(t, rep.Strengths, "thorough questioning")
	assert.Empty(t, rep.AreasForImprovement)
	assert.Equal(t, "A", rep.Grade)
	assert.Equal(t, 100, rep.Percentage)
}

func TestFromEncounterFlagsMissedIntents(t *testing.T) {
	rep := FromEncounter(encounterWith(map[string]int{
		"history_taking": 2,
	}, 2))

	assert.Contains(t, rep.AreasForImprovement, "ask about medications and allergies")
	assert.Contains(t, rep.AreasForImprovement, "explore the social and occupational history")
	assert.Contains(t, rep.AreasForImprovement, "cover the family history")
	assert.NotContains(t, rep.Strengths, "thorough questioning")
}

func TestFromEncounterDuration(t *testing.T) {
	rep := FromEncounter(encounterWith(map[string]int{}, 0))
	assert.Equal(t, 15, rep.DurationMinutes)
}

func TestFromActions(t *testing.T) {
	start := time.Now().Add(-10 * time.Minute)
	rep := FromActions(ActionOutcome{
		SessionID:  "s1",
		UserID:     "u1",
		Condition:  "malaria",
		Title:      "Drowsy child with high fever",
		Start:      start,
		End:        time.Now(),
		Score:      85,
		MaxScore:   100,
		Actions:    7,
		Decisions:  2,
		Objectives: []string{"a", "b", "c", "d"},
		Steps:      7,
		TotalSteps: 7,
	})

	assert.Equal(t, 85, rep.Percentage)
	assert.Equal(t, "B", rep.Grade)
	assert.Contains(t, rep.Strengths, "completed the full management pathway")
	assert.Contains(t, rep.Strengths, "sound clinical decision making")
	assert.Len(t, rep.ObjectivesMet, 3) // 4 * 85 / 100
	assert.NotEmpty(t, rep.Resources)
}

func TestFromActionsNoDecisions(t *testing.T) {
	rep := FromActions(ActionOutcome{
		SessionID: "s1", UserID: "u1", Condition: "malaria",
		Start: time.Now(), End: time.Now(),
		Score: 10, MaxScore: 100, Actions: 2,
		Objectives: []string{"a"}, Steps: 2, TotalSteps: 7,
	})
	assert.Contains(t, rep.AreasForImprovement, "commit to explicit management decisions")
	assert.Equal(t, "F", rep.Grade)
}
