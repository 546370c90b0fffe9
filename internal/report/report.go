package report

import (
	"fmt"
	"math"
	"time"
)

// Report is the end-of-session competency summary returned to the
// trainee and merged into their durable memory.
type Report struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Condition string `json:"condition"`
	Mode      string `json:"mode"` // "conversational" or "structured"

	Score      int    `json:"score"`
	MaxScore   int    `json:"max_score"`
	Percentage int    `json:"percentage"`
	Grade      string `json:"grade"`

	DurationMinutes int `json:"duration_minutes"`
	QuestionCount   int `json:"question_count"`
	ActionCount     int `json:"action_count"`
	DecisionCount   int `json:"decision_count"`

	ObjectivesMet       []string `json:"objectives_met"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	Resources           []string `json:"resources"`

	Summary string `json:"summary"`
}

// Percentage rounds score/max to a whole percent. A zero max yields 0.
func Percentage(score, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(max) * 100))
}

// GradeFor applies the fixed thresholds with inclusive lower bounds.
func GradeFor(percentage int) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

// Encounter is the completed free-text session distilled to what the
// report needs. The simulation package builds it so report stays free
// of session types.
type Encounter struct {
	SessionID  string
	UserID     string
	Condition  string
	Start      time.Time
	End        time.Time
	Intents    map[string]int
	Questions  int
	Objectives []string
}

// FromEncounter scores a conversational session. One point per distinct
// intent covered plus one per question asked, against a rubric of all
// expected intents plus a ten-question baseline.
func FromEncounter(e Encounter) *Report {
	expected := []string{"history_taking", "symptom_assessment", "family_history", "social_history", "medication_history"}

	score := 0
	for _, in := range expected {
		if e.Intents[in] > 0 {
			score += 10
		}
	}
	questionPoints := e.Questions * 5
	if questionPoints > 50 {
		questionPoints = 50
	}
	score += questionPoints
	maxScore := len(expected)*10 + 50

	rep := &Report{
		SessionID:       e.SessionID,
		UserID:          e.UserID,
		Condition:       e.Condition,
		Mode:            "conversational",
		Score:           score,
		MaxScore:        maxScore,
		Percentage:      Percentage(score, maxScore),
		DurationMinutes: durationMinutes(e.Start, e.End),
		QuestionCount:   e.Questions,
		Resources:       resourcesFor(e.Condition),
	}
	rep.Grade = GradeFor(rep.Percentage)

	distinct := 0
	for _, n := range e.Intents {
		if n > 0 {
			distinct++
		}
	}
	if distinct >= 5 {
		rep.Strengths = append(rep.Strengths, "comprehensive history taking")
	}
	if e.Questions >= 10 {
		rep.Strengths = append(rep.Strengths, "thorough questioning")
	}
	for missed, label := range map[string]string{
		"medication_history": "ask about medications and allergies",
		"social_history":     "explore the social and occupational history",
		"family_history":     "cover the family history",
	} {
		if e.Intents[missed] == 0 {
			rep.AreasForImprovement = append(rep.AreasForImprovement, label)
		}
	}
	// A covered objective is approximated by history coverage: each
	// distinct intent unlocks one learning objective in order.
	for i, obj := range e.Objectives {
		if i < distinct {
			rep.ObjectivesMet = append(rep.ObjectivesMet, obj)
		}
	}

	rep.Summary = fmt.Sprintf("You interviewed the %s patient with %d questions across %d question types, scoring %d%% (grade %s).",
		e.Condition, e.Questions, distinct, rep.Percentage, rep.Grade)
	return rep
}

// ActionOutcome is the completed structured session distilled for the
// report.
type ActionOutcome struct {
	SessionID  string
	UserID     string
	Condition  string
	Title      string
	Start      time.Time
	End        time.Time
	Score      int
	MaxScore   int
	Actions    int
	Decisions  int
	Objectives []string
	Steps      int
	TotalSteps int
}

// FromActions scores a structured scenario run.
func FromActions(a ActionOutcome) *Report {
	rep := &Report{
		SessionID:       a.SessionID,
		UserID:          a.UserID,
		Condition:       a.Condition,
		Mode:            "structured",
		Score:           a.Score,
		MaxScore:        a.MaxScore,
		Percentage:      Percentage(a.Score, a.MaxScore),
		DurationMinutes: durationMinutes(a.Start, a.End),
		ActionCount:     a.Actions,
		DecisionCount:   a.Decisions,
		Resources:       resourcesFor(a.Condition),
	}
	rep.Grade = GradeFor(rep.Percentage)

	if a.Steps >= a.TotalSteps && a.TotalSteps > 0 {
		rep.Strengths = append(rep.Strengths, "completed the full management pathway")
	}
	if rep.Percentage >= 80 {
		rep.Strengths = append(rep.Strengths, "sound clinical decision making")
	} else if rep.Percentage < 60 {
		rep.AreasForImprovement = append(rep.AreasForImprovement, "review the management priorities for this presentation")
	}
	if a.Decisions == 0 {
		rep.AreasForImprovement = append(rep.AreasForImprovement, "commit to explicit management decisions")
	}
	// Objectives are met proportionally to the score.
	met := 0
	if a.MaxScore > 0 {
		met = len(a.Objectives) * a.Score / a.MaxScore
	}
	if met > len(a.Objectives) {
		met = len(a.Objectives)
	}
	rep.ObjectivesMet = append(rep.ObjectivesMet, a.Objectives[:met]...)

	rep.Summary = fmt.Sprintf("Scenario %q finished with %d/%d points (%d%%, grade %s) over %d actions.",
		a.Title, a.Score, a.MaxScore, rep.Percentage, rep.Grade, a.Actions)
	return rep
}

func durationMinutes(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(math.Round(end.Sub(start).Minutes()))
}

var conditionResources = map[string][]string{
	"dengue fever": {
		"WHO dengue clinical management handbook",
		"Review: warning signs and fluid therapy in dengue",
	},
	"malaria": {
		"WHO guidelines for the treatment of malaria",
		"Review: severe malaria recognition in children",
	},
	"typhoid fever": {
		"Review: enteric fever diagnosis and antibiotic choice",
	},
	"diabetes": {
		"ADA standards of care summary",
	},
	"hypertension": {
		"ISH global hypertension practice guidelines",
	},
}

func resourcesFor(condition string) []string {
	if res, ok := conditionResources[condition]; ok {
		return res
	}
	return []string{"Review the approach to the undifferentiated patient"}
}
