package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIsCaseInsensitive(t *testing.T) {
	c := New()

	def, ok := c.Get("Dengue Fever")
	require.True(t, ok)
	assert.Equal(t, "dengue fever", def.Condition)
	assert.NotEmpty(t, def.Progression)
	assert.NotEmpty(t, def.LearningObjectives)

	_, ok = c.Get("common cold")
	assert.False(t, ok)
}

func TestSeedCasesAreComplete(t *testing.T) {
	c := New()
	for _, name := range c.Conditions() {
		def, ok := c.Get(name)
		require.True(t, ok)
		assert.NotEmpty(t, def.Symptoms, name)
		assert.NotEmpty(t, def.Vitals, name)
		assert.GreaterOrEqual(t, len(def.Progression), 2, name)
	}
}

func TestScenarioFiltering(t *testing.T) {
	c := New()

	all := c.Scenarios("", "")
	assert.NotEmpty(t, all)

	peds := c.Scenarios("", "pediatrics")
	require.Len(t, peds, 1)
	assert.Equal(t, "malaria-er-01", peds[0].ID)

	beginners := c.Scenarios("beginner", "")
	for _, sc := range beginners {
		assert.Equal(t, "beginner", sc.Difficulty)
	}

	assert.Empty(t, c.Scenarios("impossible", ""))
}

func TestLoadOverlayAddsCase(t *testing.T) {
	dir := t.TempDir()
	overlay := `
cases:
  - condition: Cholera
    symptoms: ["profuse watery diarrhoea", "vomiting"]
    vitals:
      blood_pressure: "90/60 mmHg"
    progression:
      - "acute onset of rice-water stools"
      - "severe dehydration"
scenarios:
  - id: cholera-camp-01
    title: Outbreak triage
    condition: cholera
    objectives: ["assess dehydration", "start rehydration"]
    duration_minutes: 10
    difficulty: beginner
    specialty: internal medicine
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cases.yaml"), []byte(overlay), 0o644))

	c := New()
	require.NoError(t, c.LoadOverlay(dir))

	def, ok := c.Get("cholera")
	require.True(t, ok)
	assert.Len(t, def.Progression, 2)

	sc, ok := c.Scenario("cholera-camp-01")
	require.True(t, ok)
	assert.Equal(t, "cholera", sc.Condition)
}
