package simulation

import (
	"strconv"
	"strings"

	"medsim-engine/internal/content"
	"medsim-engine/internal/intent"
)

// Responder turns a classified question into the patient's next
// utterance. It is fully deterministic: disclosure state plus the
// authored content table decide everything, and no generative backend
// is ever consulted.
type Responder struct {
	bundle *content.Bundle
}

func NewResponder(bundle *content.Bundle) *Responder {
	return &Responder{bundle: bundle}
}

// Respond applies the disclosure policy and renders the narrative for
// the session's condition and language. Asking about an already
// revealed fact yields the localized "already told you" reply.
func (r *Responder) Respond(sess *Session, a intent.Analysis) string {
	key := a.Topic + "_" + a.Intent
	if !sess.Reveal(key) {
		return r.bundle.Text("already_told", sess.Language)
	}

	text, ok := r.bundle.Narrative(sess.Condition, a.Intent, a.Topic, sess.Language)
	if !ok {
		// A culturally sensitive question with no authored narrative is
		// still answered in the patient's own terms.
		if note := culturalNote(sess, a); note != "" {
			return r.fill(sess, note)
		}
		return r.bundle.Text("dont_understand", sess.Language)
	}
	text = r.fill(sess, text)
	if note := culturalNote(sess, a); note != "" {
		text += " " + note
	}

	if sess.Emotion == EmotionWorried || sess.PainLevel > 7 {
		text += r.bundle.Text("suffix_emotional", sess.Language)
	}
	if sess.Mood == MoodAnxious || sess.Consciousness == ConsciousnessDrowsy {
		text += r.bundle.Text("suffix_behavioral", sess.Language)
	}
	return text
}

// culturalNote picks the case's cultural framing in the session
// language, falling back to the default language, when the question
// touched beliefs around traditional care.
func culturalNote(sess *Session, a intent.Analysis) string {
	if !a.CulturalSensitivity {
		return ""
	}
	if note, ok := sess.CulturalContext[sess.Language]; ok {
		return note
	}
	return sess.CulturalContext[content.DefaultLanguage]
}

// Opening renders the patient's self-presentation for a new session.
func (r *Responder) Opening(sess *Session, complaint string) string {
	text := r.bundle.Text("opening", sess.Language)
	return strings.ReplaceAll(r.fill(sess, text), "{complaint}", complaint)
}

func (r *Responder) fill(sess *Session, text string) string {
	stage := "a few days ago"
	if sess.SymptomStageIndex >= 0 && sess.SymptomStageIndex < len(sess.Progression) {
		stage = "like this: " + sess.Progression[sess.SymptomStageIndex]
	}
	family := "nothing serious that I know of"
	if len(sess.Profile.FamilyHistory) > 0 {
		family = strings.Join(sess.Profile.FamilyHistory, ", ")
	}
	rep := strings.NewReplacer(
		"{name}", sess.Profile.Name,
		"{age}", strconv.Itoa(sess.Profile.Age),
		"{occupation}", sess.Profile.Occupation,
		"{location}", sess.Profile.Location,
		"{pain}", strconv.Itoa(sess.PainLevel),
		"{family}", family,
		"{stage}", stage,
	)
	return rep.Replace(text)
}
