package simulation

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"medsim-engine/internal/intent"
)

type Stage string

const (
	StageInitial   Stage = "initial"
	StageActive    Stage = "active"
	StageCompleted Stage = "completed"
)

type Mood string

const (
	MoodCooperative Mood = "cooperative"
	MoodAnxious     Mood = "anxious"
	MoodIrritable   Mood = "irritable"
	MoodConfused    Mood = "confused"
)

type Consciousness string

const (
	ConsciousnessAlert       Consciousness = "alert"
	ConsciousnessDrowsy      Consciousness = "drowsy"
	ConsciousnessConfusedLvl Consciousness = "confused"
	ConsciousnessUnconscious Consciousness = "unconscious"
)

type EmotionalState string

const (
	EmotionWorried EmotionalState = "worried"
	EmotionCalm    EmotionalState = "calm"
	EmotionAngry   EmotionalState = "angry"
	EmotionScared  EmotionalState = "scared"
)

// PatientProfile is the randomized persona the trainee interviews.
type PatientProfile struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	Occupation    string   `json:"occupation"`
	Location      string   `json:"location"`
	Education     string   `json:"education"`
	FamilyHistory []string `json:"family_history"`
}

type EntryType string

const (
	EntryQuestion EntryType = "question"
	EntryResponse EntryType = "response"
)

type HistoryEntry struct {
	Type      EntryType        `json:"type"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Analysis  *intent.Analysis `json:"analysis,omitempty"`
}

// Session is the live state of one trainee's simulated encounter.
// All mutation happens under the store's per-user lock.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Condition string    `json:"condition"`
	Language  string    `json:"language"`

	Profile PatientProfile `json:"patient_profile"`
	History []HistoryEntry `json:"conversation_history"`

	Stage             Stage    `json:"current_stage"`
	SymptomStageIndex int      `json:"current_symptom_stage_index"`
	Progression       []string `json:"progression"`

	Vitals          map[string]string `json:"vitals"`
	Labs            map[string]string `json:"labs"`
	ExamFindings    map[string]string `json:"exam_findings"`
	CulturalContext map[string]string `json:"cultural_context,omitempty"`

	PainLevel     int            `json:"pain_level"`
	Consciousness Consciousness  `json:"consciousness"`
	Mood          Mood           `json:"patient_mood"`
	Emotion       EmotionalState `json:"emotional_state"`

	Revealed map[string]bool `json:"revealed_information_keys"`

	StartTime    time.Time  `json:"start_time"`
	LastActivity time.Time  `json:"last_activity"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

// Reveal marks a disclosure key as used. It returns false when the key
// was already present, which the responder treats as "already told".
func (s *Session) Reveal(key string) bool {
	if s.Revealed[key] {
		return false
	}
	s.Revealed[key] = true
	return true
}

// AskedIntents counts questions per classified intent.
func (s *Session) AskedIntents() map[string]int {
	out := map[string]int{}
	for _, e := range s.History {
		if e.Type == EntryQuestion && e.Analysis != nil {
			out[e.Analysis.Intent]++
		}
	}
	return out
}

// QuestionCount counts trainee questions in the history.
func (s *Session) QuestionCount() int {
	n := 0
	for _, e := range s.History {
		if e.Type == EntryQuestion {
			n++
		}
	}
	return n
}

var (
	profileNames = map[string][]string{
		"female": {"Amina", "Grace", "Neema", "Joyce", "Fatuma"},
		"male":   {"Juma", "David", "Baraka", "Peter", "Hassan"},
	}
	profileOccupations = []string{"market vendor", "teacher", "farmer", "boda boda rider", "tailor", "shopkeeper"}
	profileLocations   = []string{"Kariakoo", "Mwanza", "Arusha", "Tandale", "Moshi"}
	profileEducation   = []string{"primary school", "secondary school", "vocational training", "university"}
	profileFamilyNotes = []string{
		"my mother has high blood pressure",
		"my father had diabetes",
		"an uncle died of a stroke",
		"nobody has had a serious illness",
	}
)

// RandomProfile builds a patient persona from the injected source so
// tests can pin the outcome with a fixed seed.
func RandomProfile(rng *rand.Rand) PatientProfile {
	gender := "female"
	if rng.Intn(2) == 1 {
		gender = "male"
	}
	names := profileNames[gender]
	return PatientProfile{
		Name:          names[rng.Intn(len(names))],
		Age:           18 + rng.Intn(50),
		Gender:        gender,
		Occupation:    profileOccupations[rng.Intn(len(profileOccupations))],
		Location:      profileLocations[rng.Intn(len(profileLocations))],
		Education:     profileEducation[rng.Intn(len(profileEducation))],
		FamilyHistory: []string{profileFamilyNotes[rng.Intn(len(profileFamilyNotes))]},
	}
}
