package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is the fallback for any language without an authored
// translation.
const DefaultLanguage = "en"

// Key addresses one authored patient narrative. Condition "*" matches
// any condition and is consulted after the exact entry.
type Key struct {
	Condition string
	Intent    string
	Topic     string
}

// Bundle is the full authored content table: patient narratives keyed
// by (condition, intent, topic) and fixed UI strings keyed by name,
// each in one or more languages. It is read-only after loading.
type Bundle struct {
	narratives map[Key]map[string]string
	fixed      map[string]map[string]string
}

func NewBundle() *Bundle {
	return &Bundle{
		narratives: defaultNarratives(),
		fixed:      defaultFixed(),
	}
}

// Narrative resolves the patient's answer for a classified question.
// Lookup order: exact condition, then the "*" wildcard. The boolean is
// false when no authored entry exists for the combination.
func (b *Bundle) Narrative(condition, intent, topic, lang string) (string, bool) {
	condition = strings.ToLower(condition)
	for _, k := range []Key{
		{Condition: condition, Intent: intent, Topic: topic},
		{Condition: "*", Intent: intent, Topic: topic},
	} {
		langs, ok := b.narratives[k]
		if !ok {
			continue
		}
		if text, ok := langs[lang]; ok {
			return text, true
		}
		if text, ok := langs[DefaultLanguage]; ok {
			return text, true
		}
	}
	return "", false
}

// Text resolves a fixed string by name, falling back to English and
// finally to an empty string for unknown names.
func (b *Bundle) Text(name, lang string) string {
	langs, ok := b.fixed[name]
	if !ok {
		return ""
	}
	if text, ok := langs[lang]; ok {
		return text
	}
	return langs[DefaultLanguage]
}

type overlayNarrative struct {
	Condition string            `yaml:"condition"`
	Intent    string            `yaml:"intent"`
	Topic     string            `yaml:"topic"`
	Text      map[string]string `yaml:"text"`
}

type overlayFile struct {
	Narratives []overlayNarrative           `yaml:"narratives"`
	Strings    map[string]map[string]string `yaml:"strings"`
}

// LoadOverlay merges narratives.yaml from dir over the built-in table.
// Overlay languages merge per entry; they do not wipe other languages.
func (b *Bundle) LoadOverlay(dir string) error {
	path := filepath.Join(dir, "narratives.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read content overlay: %w", err)
	}
	var f overlayFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse content overlay: %w", err)
	}
	for _, n := range f.Narratives {
		k := Key{Condition: strings.ToLower(n.Condition), Intent: n.Intent, Topic: n.Topic}
		if k.Condition == "" {
			k.Condition = "*"
		}
		langs, ok := b.narratives[k]
		if !ok {
			langs = map[string]string{}
			b.narratives[k] = langs
		}
		for lang, text := range n.Text {
			langs[lang] = text
		}
	}
	for name, texts := range f.Strings {
		langs, ok := b.fixed[name]
		if !ok {
			langs = map[string]string{}
			b.fixed[name] = langs
		}
		for lang, text := range texts {
			langs[lang] = text
		}
	}
	return nil
}
