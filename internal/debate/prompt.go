package debate

import (
	"fmt"

	"github.com/BerylCAtieno/nlvx-arena/internal/personas"
)

// buildUserMessage picks the opening template when there is no prior
// context and the rebuttal template otherwise. The context is embedded as-is.
func buildUserMessage(topic, debater, languageCode, priorContext string) string {
	language := personas.LanguageName(languageCode)

	if priorContext == "" {
		return fmt.Sprintf("Topic: \"%s\"\n\nProvide your initial perspective as a %s. Keep it concise (2-3 sentences). Respond in %s.",
			topic, debater, language)
	}

	return fmt.Sprintf("Topic: \"%s\"\n\nPrevious discussion history:\n%s\n\n"+
		"INSTRUCTIONS for %s:\n"+
		"1. READ the last message carefully.\n"+
		"2. DIRECTLY REPLY or REBUT the last speaker's points.\n"+
		"3. Maintain your persona as a %s.\n"+
		"4. Keep it conversational and natural.\n"+
		"5. Respond in %s. (2-3 sentences max)",
		topic, priorContext, debater, debater, language)
}
