package bedrock

const maxResumeSnippet = 12000

func buildFitPrompt(rawText, roleDescription string) string {
	snippet := rawText
	if len(snippet) > maxResumeSnippet {
		snippet = snippet[:maxResumeSnippet]
	}

	return `You are a technical recruiter scoring a candidate against a role.
Respond with exactly one line of JSON, no markdown, no extra keys, matching:
{"score": number 0-100, "summary": string, "strengths": [string], "concerns": [string], "matched_skills": [string], "missing_skills": [string], "level": "Junior"|"Mid"|"Senior"|"Lead"}

Role description:
` + roleDescription + `

Candidate resume text:
` + snippet
}
