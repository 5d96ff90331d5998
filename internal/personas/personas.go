// Package personas holds the static debater and language tables.
package personas

import "sort"

type Persona string

const (
	Optimist    Persona = "Optimist"
	Critic      Persona = "Critic"
	Analyst     Persona = "Analyst"
	Visionary   Persona = "Visionary"
	Investor    Persona = "Investor"
	Scientist   Persona = "Scientist"
	Philosopher Persona = "Philosopher"
	Strategist  Persona = "Strategist"
)

// Fallback is used for any identifier outside the known set.
const Fallback = Analyst

const DefaultLanguage = "English"

var systemPrompts = map[Persona]string{
	Optimist:    OptimistSystemPrompt,
	Critic:      CriticSystemPrompt,
	Analyst:     AnalystSystemPrompt,
	Visionary:   VisionarySystemPrompt,
	Investor:    InvestorSystemPrompt,
	Scientist:   ScientistSystemPrompt,
	Philosopher: PhilosopherSystemPrompt,
	Strategist:  StrategistSystemPrompt,
}

var languages = map[string]string{
	"en": "English",
	"ar": "Arabic",
	"fr": "French",
	"es": "Spanish",
	"de": "German",
	"nl": "Dutch",
}

// SystemPrompt returns the prompt for id and whether id is a known persona.
// Unknown ids get the Analyst prompt. Matching is case-sensitive.
func SystemPrompt(id string) (string, bool) {
	if prompt, ok := systemPrompts[Persona(id)]; ok {
		return prompt, true
	}
	return systemPrompts[Fallback], false
}

// LanguageName maps a two-letter code to its display name, defaulting to English.
func LanguageName(code string) string {
	if name, ok := languages[code]; ok {
		return name
	}
	return DefaultLanguage
}

// All returns the known personas in alphabetical order.
func All() []Persona {
	all := make([]Persona, 0, len(systemPrompts))
	for p := range systemPrompts {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}
