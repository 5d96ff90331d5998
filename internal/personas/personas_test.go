package personas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemPrompt_Known(t *testing.T) {
	for _, p := range All() {
		t.Run(string(p), func(t *testing.T) {
			prompt, ok := SystemPrompt(string(p))
			require.True(t, ok)
			assert.Contains(t, prompt, "(2-3 sentences)")
		})
	}
}

func TestSystemPrompt_UnknownFallsBackToAnalyst(t *testing.T) {
	tests := []string{"Pirate", "optimist", ""}

	for _, id := range tests {
		prompt, ok := SystemPrompt(id)
		assert.False(t, ok, "id %q", id)
		assert.Equal(t, AnalystSystemPrompt, prompt)
	}
}

func TestSystemPrompt_Distinct(t *testing.T) {
	seen := make(map[string]Persona)
	for _, p := range All() {
		prompt, _ := SystemPrompt(string(p))
		if other, dup := seen[prompt]; dup {
			t.Fatalf("%s and %s share a prompt", p, other)
		}
		seen[prompt] = p
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"ar", "Arabic"},
		{"fr", "French"},
		{"es", "Spanish"},
		{"de", "German"},
		{"nl", "Dutch"},
		{"jp", "English"},
		{"FR", "English"},
		{"", "English"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageName(tt.code))
		})
	}
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 8)
	assert.Equal(t, Analyst, all[0])
	assert.Equal(t, Visionary, all[len(all)-1])
	assert.True(t, strings.HasPrefix(OptimistSystemPrompt, "You are an optimistic debater"))
}
