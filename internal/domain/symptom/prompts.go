package symptom

import "fmt"

// explanationPrompt asks for a plain-language cause summary under the
// configured token budget.
func explanationPrompt(symptoms string) string {
	return fmt.Sprintf("Explain in simple terms what might cause %s. Answer in at most 50 words.", symptoms)
}

// triagePrompt pins the response format so parseTriage can read it back.
func triagePrompt(symptoms string) string {
	return fmt.Sprintf(
		"A patient reports the following symptoms: %s. Rate the severity on a scale of 1 to 5, "+
			"where 1 is minimal and 5 is a medical emergency, and give one short recommendation. "+
			"Answer in exactly this format: Severity: X/5. Recommendation: <text>", symptoms)
}
