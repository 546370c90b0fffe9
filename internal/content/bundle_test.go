package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrativeLookupPrefersExactCondition(t *testing.T) {
	b := NewBundle()

	exact, ok := b.Narrative("dengue fever", "history_taking", "onset", "en")
	require.True(t, ok)
	generic, ok := b.Narrative("hypertension", "history_taking", "onset", "en")
	require.True(t, ok)

	assert.NotEqual(t, exact, generic)
}

func TestNarrativeFallsBackToEnglish(t *testing.T) {
	b := NewBundle()

	text, ok := b.Narrative("dengue fever", "history_taking", "onset", "fr")
	require.True(t, ok)
	en, _ := b.Narrative("dengue fever", "history_taking", "onset", "en")
	assert.Equal(t, en, text)
}

func TestNarrativeMiss(t *testing.T) {
	b := NewBundle()
	_, ok := b.Narrative("dengue fever", "general", "general", "en")
	assert.False(t, ok)
}

func TestTextFallsBackToEnglish(t *testing.T) {
	b := NewBundle()
	assert.NotEmpty(t, b.Text("already_told", "sw"))
	assert.Equal(t, b.Text("already_told", "en"), b.Text("already_told", "de"))
	assert.Empty(t, b.Text("no_such_string", "en"))
}

func TestLoadOverlayMerges(t *testing.T) {
	dir := t.TempDir()
	overlay := `
narratives:
  - condition: dengue fever
    intent: history_taking
    topic: onset
    text:
      fr: "Ca a commence il y a trois jours, docteur."
  - intent: general
    topic: general
    text:
      en: "I am not sure what you mean, doctor."
strings:
  already_told:
    fr: "Je vous l'ai deja dit, docteur."
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "narratives.yaml"), []byte(overlay), 0o644))

	b := NewBundle()
	require.NoError(t, b.LoadOverlay(dir))

	// New language merged without dropping the built-in English.
	fr, ok := b.Narrative("dengue fever", "history_taking", "onset", "fr")
	require.True(t, ok)
	assert.Contains(t, fr, "docteur")
	_, ok = b.Narrative("dengue fever", "history_taking", "onset", "en")
	assert.True(t, ok)

	// Empty condition becomes the wildcard.
	generic, ok := b.Narrative("diabetes", "general", "general", "en")
	require.True(t, ok)
	assert.Contains(t, generic, "not sure")

	assert.Contains(t, b.Text("already_told", "fr"), "deja")
}

func TestLoadOverlayMissingFileIsFine(t *testing.T) {
	b := NewBundle()
	assert.NoError(t, b.LoadOverlay(t.TempDir()))
}
