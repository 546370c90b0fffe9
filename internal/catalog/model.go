package catalog

// CaseDefinition is the immutable clinical picture for one condition.
// Progression is ordered from presentation to late disease; the session
// state machine advances through it by elapsed time.
type CaseDefinition struct {
	Condition          string            `yaml:"condition"`
	Symptoms           []string          `yaml:"symptoms"`
	Vitals             map[string]string `yaml:"vitals"`
	Labs               map[string]string `yaml:"labs"`
	ExamFindings       map[string]string `yaml:"exam_findings"`
	Progression        []string          `yaml:"progression"`
	LearningObjectives []string          `yaml:"learning_objectives"`
	// CulturalContext carries per-language notes the responder can
	// weave into answers (beliefs, common local phrasing).
	CulturalContext map[string]string `yaml:"cultural_context"`
}

// ScenarioDefinition describes one structured, action-scored encounter.
type ScenarioDefinition struct {
	ID              string         `yaml:"id"`
	Title           string         `yaml:"title"`
	Condition       string         `yaml:"condition"`
	Objectives      []string       `yaml:"objectives"`
	DurationMinutes int            `yaml:"duration_minutes"`
	Difficulty      string         `yaml:"difficulty"`
	Specialty       string         `yaml:"specialty"`
	PatientProfile  PatientSummary `yaml:"patient_profile"`
}

// PatientSummary is the fixed patient sketch shown when a scenario starts.
type PatientSummary struct {
	Age        int    `yaml:"age"`
	Gender     string `yaml:"gender"`
	Complaint  string `yaml:"complaint"`
	Background string `yaml:"background"`
}
