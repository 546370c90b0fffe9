package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		intent    string
		topic     string
	}{
		{"onset question", "What happened to you?", HistoryTaking, TopicOnset},
		{"pain question", "Do you have any pain?", SymptomAssessment, TopicPain},
		{"fever question", "Have you had a fever?", SymptomAssessment, TopicFever},
		{"family question", "Does anyone in your family have this?", FamilyHistory, TopicFamily},
		{"occupation question", "What do you do for work?", SocialHistory, TopicJob},
		{"urinary question", "Any problems with your urine?", SymptomAssessment, TopicUrinary},
		{"allergy question", "Are you allergic to any medication?", MedicationHistory, TopicAllergies},
		{"identity question", "What is your name?", Identity, TopicIdentity},
		{"timing question", "How long has this been going on?", HistoryTaking, TopicTiming},
		{"location question", "Where does it bother you?", SymptomAssessment, TopicLocation},
		{"unmatched", "okay then", General, TopicGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Classify(tt.utterance)
			assert.Equal(t, tt.intent, a.Intent)
			assert.Equal(t, tt.topic, a.Topic)
		})
	}
}

func TestClassifyTieBreakByRuleOrder(t *testing.T) {
	// Matches both the pain rule and the location rule; the pain rule
	// is earlier in the table and must win.
	a := Classify("Where exactly is the pain?")
	assert.Equal(t, SymptomAssessment, a.Intent)
	assert.Equal(t, TopicPain, a.Topic)
}

func TestClassifyFollowUpFlag(t *testing.T) {
	a := Classify("What about your fever?")
	assert.True(t, a.IsFollowUp)
	assert.Equal(t, TopicFever, a.Topic)

	assert.False(t, Classify("Do you have a fever?").IsFollowUp)
}

func TestClassifyUrgency(t *testing.T) {
	a := Classify("This is an emergency, she is unconscious!")
	assert.Equal(t, UrgencyHigh, a.Urgency)
	// The urgency flag is independent of the chosen intent.
	assert.Equal(t, General, a.Intent)

	assert.Equal(t, UrgencyNormal, Classify("Any pain today?").Urgency)
}

func TestClassifyCulturalFlag(t *testing.T) {
	assert.True(t, Classify("Have you tried any traditional medicine?").CulturalSensitivity)
	assert.False(t, Classify("Any pain?").CulturalSensitivity)
}

func TestClassifyIsPure(t *testing.T) {
	first := Classify("What happened to you?")
	second := Classify("What happened to you?")
	assert.Equal(t, first, second)
}
