package scoring

import "fmt"

const scorePromptTemplate = `You are an ATS (Applicant Tracking System) resume evaluator.

Evaluate the resume below for ATS compatibility. Consider contact details,
clear section headings (skills, education, experience), relevant technical
keywords, quantified achievements and overall readability by automated parsers.

Respond using EXACTLY this format and nothing else:
ATS_SCORE: <integer from 0 to 100>
FEEDBACK: <short, specific suggestions for improving the resume>

Resume:
%s
`

// BuildScorePrompt embeds the full resume text into the scoring instructions.
func BuildScorePrompt(resumeText string) string {
	return fmt.Sprintf(scorePromptTemplate, resumeText)
}
