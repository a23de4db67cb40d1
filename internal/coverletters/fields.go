package coverletters

import (
	"regexp"
	"strings"
)

// Fallback values when the job description carries no labeled lines.
const (
	UnknownPosition = "Unknown_Position"
	UnknownCompany  = "Unknown_Company"
)

// The separator class is intra-line whitespace only; \s would swallow the
// newline after a bare label and capture the following line instead.
var (
	titleLineRe   = regexp.MustCompile(`(?im)^(?:Position|Title|Job Title)[: \t]*(.*)$`)
	companyLineRe = regexp.MustCompile(`(?im)^(?:Company|Organization)[: \t]*(.*)$`)
)

// ExtractTitleAndCompany recovers a job title and company name from
// unstructured job-description text. It scans for the first line beginning
// with a known label and captures the remainder of that line, trimmed. A
// matching label with nothing after it yields an empty capture, not the
// Unknown_* fallback.
func ExtractTitleAndCompany(jobDescription string) (title, company string) {
	title = UnknownPosition
	company = UnknownCompany

	if m := titleLineRe.FindStringSubmatch(jobDescription); m != nil {
		title = strings.TrimSpace(m[1])
	}
	if m := companyLineRe.FindStringSubmatch(jobDescription); m != nil {
		company = strings.TrimSpace(m[1])
	}
	return title, company
}

// ResolveTitleAndCompany applies the override precedence rule: an explicit
// value that is non-blank after trimming wins outright and skips extraction
// for that field.
func ResolveTitleAndCompany(jobDescription, titleOverride, companyOverride string) (string, string) {
	title := strings.TrimSpace(titleOverride)
	company := strings.TrimSpace(companyOverride)
	if title != "" && company != "" {
		return title, company
	}

	extractedTitle, extractedCompany := ExtractTitleAndCompany(jobDescription)
	if title == "" {
		title = extractedTitle
	}
	if company == "" {
		company = extractedCompany
	}
	return title, company
}
