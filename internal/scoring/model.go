package scoring

import (
	"time"

	"github.com/google/uuid"

	"medsim-engine/internal/catalog"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Action is one discrete clinical move submitted by the trainee.
type Action struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// ActionRecord is an executed action with its scored outcome.
type ActionRecord struct {
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data"`
	Outcome   string                 `json:"outcome"`
	Score     int                    `json:"score"`
	Timestamp time.Time              `json:"timestamp"`
}

// ExtraSteps pads the step budget beyond the scenario objectives so a
// run always includes assessment and wrap-up moves.
const ExtraSteps = 3

// BestActionScore is the highest base score any action type carries;
// MaxScore is TotalSteps times this.
const BestActionScore = 15

// ActionSession is the structured-mode counterpart to a conversational
// session: a scored sequence of discrete actions.
type ActionSession struct {
	ID       uuid.UUID                  `json:"session_id"`
	UserID   string                     `json:"user_id"`
	Scenario catalog.ScenarioDefinition `json:"scenario"`

	CurrentStep int `json:"current_step"`
	TotalSteps  int `json:"total_steps"`
	Score       int `json:"score"`
	MaxScore    int `json:"max_score"`

	Status  Status         `json:"status"`
	Actions []ActionRecord `json:"actions"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// Computed from StartTime when the session is cloned for a caller;
	// the stored session leaves it zero.
	TimeRemainingSeconds int `json:"time_remaining_seconds"`
}

// TimeRemaining is the scenario budget minus elapsed time, floored at
// zero. Informational only; running out of time does not end a session.
func (s *ActionSession) TimeRemaining(now time.Time) time.Duration {
	budget := time.Duration(s.Scenario.DurationMinutes) * time.Minute
	left := budget - now.Sub(s.StartTime)
	if left < 0 {
		return 0
	}
	return left
}

func newActionSession(userID string, sc catalog.ScenarioDefinition, now time.Time) *ActionSession {
	totalSteps := len(sc.Objectives) + ExtraSteps
	return &ActionSession{
		ID:         uuid.New(),
		UserID:     userID,
		Scenario:   sc,
		TotalSteps: totalSteps,
		MaxScore:   totalSteps * BestActionScore,
		Status:     StatusActive,
		StartTime:  now,
	}
}
