package simulation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsim-engine/internal/content"
	"medsim-engine/internal/intent"
)

func testSession() *Session {
	return &Session{
		UserID:    "u1",
		Condition: "dengue fever",
		Language:  "en",
		Profile: PatientProfile{
			Name: "Amina", Age: 27, Gender: "female",
			Occupation: "teacher", Location: "Mwanza",
		},
		Progression:   []string{"febrile phase", "critical phase"},
		PainLevel:     4,
		Consciousness: ConsciousnessAlert,
		Mood:          MoodCooperative,
		Emotion:       EmotionCalm,
		Revealed:      map[string]bool{},
		ExamFindings:  map[string]string{},
	}
}

func TestRespondFillsPlaceholders(t *testing.T) {
	r := NewResponder(content.NewBundle())
	sess := testSession()

	resp := r.Respond(sess, intent.Classify("do you have pain?"))
	assert.Contains(t, resp, "4 out of ten")
	assert.False(t, strings.Contains(resp, "{"), "unreplaced placeholder in %q", resp)
}

func TestRespondMarksDisclosure(t *testing.T) {
	r := NewResponder(content.NewBundle())
	sess := testSession()
	a := intent.Classify("what happened to you?")

	first := r.Respond(sess, a)
	second := r.Respond(sess, a)

	assert.NotEqual(t, first, second)
	assert.Equal(t, content.NewBundle().Text("already_told", "en"), second)
	assert.True(t, sess.Revealed["onset_history_taking"])
}

func TestRespondEmotionalSuffixOnHighPain(t *testing.T) {
	bundle := content.NewBundle()
	r := NewResponder(bundle)
	sess := testSession()
	sess.PainLevel = 8

	resp := r.Respond(sess, intent.Classify("any fever?"))
	assert.Contains(t, resp, strings.TrimSpace(bundle.Text("suffix_emotional", "en")))
}

func TestRespondBehavioralSuffixWhenAnxious(t *testing.T) {
	bundle := content.NewBundle()
	r := NewResponder(bundle)
	sess := testSession()
	sess.Mood = MoodAnxious

	resp := r.Respond(sess, intent.Classify("any fever?"))
	assert.Contains(t, resp, strings.TrimSpace(bundle.Text("suffix_behavioral", "en")))
}

func TestRespondWeavesCulturalContext(t *testing.T) {
	bundle := content.NewBundle()
	r := NewResponder(bundle)
	sess := testSession()
	sess.CulturalContext = map[string]string{
		"en": "At home we thought it was just the weather, so I waited before coming.",
	}

	a := intent.Classify("have you tried any traditional medicine?")
	require.True(t, a.CulturalSensitivity)

	resp := r.Respond(sess, a)
	assert.Contains(t, resp, sess.CulturalContext["en"])
}

func TestRespondCulturalQuestionWithoutNarrative(t *testing.T) {
	bundle := content.NewBundle()
	r := NewResponder(bundle)
	sess := testSession()
	sess.CulturalContext = map[string]string{
		"en": "We usually go to the local healer first before the clinic.",
	}

	a := intent.Classify("do you usually go to a healer for this?")
	require.True(t, a.CulturalSensitivity)

	resp := r.Respond(sess, a)
	assert.Equal(t, sess.CulturalContext["en"], resp)
	assert.NotEqual(t, bundle.Text("dont_understand", "en"), resp)
}

func TestRespondUnmatchedCombinationFallsBack(t *testing.T) {
	bundle := content.NewBundle()
	r := NewResponder(bundle)
	sess := testSession()

	resp := r.Respond(sess, intent.Classify("hmm, interesting"))
	assert.Equal(t, bundle.Text("dont_understand", "en"), resp)
}

func TestOpening(t *testing.T) {
	r := NewResponder(content.NewBundle())
	sess := testSession()

	opening := r.Opening(sess, "high fever and severe headache")
	require.NotEmpty(t, opening)
	assert.Contains(t, opening, "Amina")
	assert.Contains(t, opening, "27")
	assert.Contains(t, opening, "high fever and severe headache")
}
