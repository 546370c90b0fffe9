package intent

import "strings"

// Analysis is the classified reading of one trainee utterance.
type Analysis struct {
	Intent              string `json:"intent"`
	Topic               string `json:"topic"`
	Urgency             string `json:"urgency"`
	Specificity         string `json:"specificity"`
	IsFollowUp          bool   `json:"is_follow_up"`
	CulturalSensitivity bool   `json:"cultural_sensitivity"`
}

// Intent names.
const (
	HistoryTaking     = "history_taking"
	SymptomAssessment = "symptom_assessment"
	FamilyHistory     = "family_history"
	SocialHistory     = "social_history"
	MedicationHistory = "medication_history"
	Identity          = "identity"
	General           = "general"
)

// Topic names.
const (
	TopicOnset     = "onset"
	TopicPain      = "pain"
	TopicFever     = "fever"
	TopicFamily    = "family"
	TopicJob       = "occupation"
	TopicUrinary   = "urinary"
	TopicAllergies = "allergies"
	TopicIdentity  = "identity"
	TopicTiming    = "timing"
	TopicLocation  = "location"
	TopicGeneral   = "general"
)

// Urgency levels.
const (
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
)

type rule struct {
	keywords    []string
	intent      string
	topic       string
	specificity string
}

// The rule table is ordered by priority; the first rule with a keyword
// hit wins and later rules are not consulted. Tests depend on this
// order, so new rules go at the end unless they must outrank one.
var rules = []rule{
	{[]string{"what happened", "how did it start", "how did this start", "what brought you", "tell me what happened"}, HistoryTaking, TopicOnset, "open"},
	{[]string{"pain", "hurt", "ache", "aching", "sore"}, SymptomAssessment, TopicPain, "focused"},
	{[]string{"fever", "temperature", "feel hot", "chills", "shivering"}, SymptomAssessment, TopicFever, "focused"},
	{[]string{"family", "mother", "father", "parents", "relatives", "hereditary", "runs in"}, FamilyHistory, TopicFamily, "focused"},
	{[]string{"work", "job", "occupation", "for a living", "employed"}, SocialHistory, TopicJob, "focused"},
	{[]string{"urine", "urinat", "pee", "bladder", "water works"}, SymptomAssessment, TopicUrinary, "focused"},
	{[]string{"allerg", "medication", "medicine", "drugs", "tablets"}, MedicationHistory, TopicAllergies, "focused"},
	{[]string{"your name", "how old", "your age", "who are you", "where do you live"}, Identity, TopicIdentity, "focused"},
	{[]string{"how long", "since when", "duration", "how many days", "how many weeks"}, HistoryTaking, TopicTiming, "focused"},
	{[]string{"where", "which part", "point to", "show me", "located"}, SymptomAssessment, TopicLocation, "focused"},
}

var followUpMarkers = []string{" and ", "also", "what about", "anything else", "what else", "besides"}

var urgencyMarkers = []string{"emergency", "can't breathe", "cannot breathe", "unconscious", "chest pain", "severe bleeding", "collapsed", "not responding"}

var culturalMarkers = []string{"belief", "traditional", "herbal", "religion", "religious", "healer", "home remedy"}

// Classify maps a free-text trainee utterance to an intent analysis
// using ordered lexical matching. It is a pure function; identical
// input always yields identical output.
func Classify(utterance string) Analysis {
	text := strings.ToLower(strings.TrimSpace(utterance))

	a := Analysis{
		Intent:      General,
		Topic:       TopicGeneral,
		Urgency:     UrgencyNormal,
		Specificity: "open",
	}

	for _, r := range rules {
		if matchesAny(text, r.keywords) {
			a.Intent = r.intent
			a.Topic = r.topic
			a.Specificity = r.specificity
			break
		}
	}

	// Independent flags: these never change the chosen intent.
	a.IsFollowUp = matchesAny(text, followUpMarkers)
	if matchesAny(text, urgencyMarkers) {
		a.Urgency = UrgencyHigh
	}
	a.CulturalSensitivity = matchesAny(text, culturalMarkers)

	return a
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
