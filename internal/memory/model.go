package memory

import "time"

// CompletedCase is one finished simulation in a trainee's history.
type CompletedCase struct {
	SessionID       string    `json:"session_id"`
	Condition       string    `json:"condition"`
	Mode            string    `json:"mode"`
	Date            time.Time `json:"date"`
	Feedback        string    `json:"feedback"`
	DurationMinutes int       `json:"duration_minutes"`
	Percentage      int       `json:"percentage"`
	Grade           string    `json:"grade"`
}

// ConditionProgress tracks repeated attempts at one condition.
type ConditionProgress struct {
	Attempts  int      `json:"attempts"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

// UserMemory is the durable cross-session record for one trainee.
// It is append-only: completed cases and progress are merged in,
// never rewritten or deleted.
type UserMemory struct {
	UserID           string                        `json:"user_id"`
	TotalSimulations int                           `json:"total_simulations"`
	CompletedCases   []CompletedCase               `json:"completed_cases"`
	QuestionTypes    map[string]int                `json:"question_types"`
	Conditions       map[string]*ConditionProgress `json:"conditions"`
	Strengths        []string                      `json:"strengths"`
	AreasForGrowth   []string                      `json:"areas_for_improvement"`
	UpdatedAt        time.Time                     `json:"updated_at"`
}

func NewUserMemory(userID string) *UserMemory {
	return &UserMemory{
		UserID:        userID,
		QuestionTypes: map[string]int{},
		Conditions:    map[string]*ConditionProgress{},
	}
}

// HasSession reports whether a session id was already merged. The merge
// uses it to stay idempotent per session.
func (m *UserMemory) HasSession(sessionID string) bool {
	for _, c := range m.CompletedCases {
		if c.SessionID == sessionID {
			return true
		}
	}
	return false
}
