package llm

import "fmt"

const structureGuidance = "To compose a compelling cover letter, scrutinize the job description for key qualifications. " +
	"Begin with a succinct introduction about the candidate's identity and career goals. " +
	"Highlight skills aligned with the job, underpinned by tangible examples. " +
	"Incorporate details about the company, emphasizing its mission or unique aspects that align with the candidate's values. " +
	"Conclude by reaffirming the candidate's suitability, inviting further discussion. " +
	"Do not make anything up, but feel free to use neighboring examples based on my resume. " +
	"Use job-specific terminology and maintain a professional style suitable for the job role. " +
	"Please provide your response in under 250 words."

// RoleInstruction returns the fixed system instruction, parameterized only by
// title and company: body-only output starting at the salutation, no contact
// details, date, closing, signature, or bracketed placeholder text.
func RoleInstruction(title, company string) string {
	return fmt.Sprintf(
		"You are a cover letter generator with 20 years of experience. "+
			"Your task is to create a professional and concise cover letter body only, starting with the salutation (e.g., 'Dear Hiring Committee,') and ending before the signature or any closing formalities. "+
			"Do NOT include your name, contact information, date, enclosure lines, or signature. "+
			"Never emit placeholder tokens such as '[Your Name]' or bracketed fill-ins. "+
			"Focus only on the core letter content tailored for the position of '%s' at '%s'.",
		title, company,
	)
}

// BuildCoverLetterPrompt assembles the request messages for one generation:
// the role instruction as the system message, and a user message that repeats
// the role instruction followed by the structural guidance, the literal job
// description, and the literal resume text under labeled headings. Pure
// string assembly; no network calls.
func BuildCoverLetterPrompt(title, company, jobDescription, resumeText string) []Message {
	role := RoleInstruction(title, company)
	user := fmt.Sprintf("%s\n\n%s\n\nJob Description:\n%s\n\nResume:\n%s",
		role, structureGuidance, jobDescription, resumeText)

	return []Message{
		{Role: "system", Content: role},
		{Role: "user", Content: user},
	}
}
