package resume

import "fmt"

// Fixed natural-language description of the required CV shape. Identical for
// both languages; only the surrounding framing differs.
const schemaDescription = `Required JSON Schema:
{
  "contact": {
    "github": "string (GitHub profile URL)",
    "mobile": "string (phone number)",
    "email": "string (valid email)",
    "linkedin": "string (LinkedIn profile URL)"
  },
  "name": "string (full name)",
  "title": "string (professional title/headline)",
  "location": "string (current location)",
  "summary": "string (professional summary)",
  "skills": {
    "mainSkills": ["array of main technical skills"],
    "languages": [{"name": "language", "level": "proficiency level"}]
  },
  "experience": [{
    "company": "string",
    "position": "string",
    "startDate": "string (Month Year)",
    "endDate": "string (Month Year)",
    "duration": "string",
    "location": "string",
    "description": ["description of tasks in the company (optional, can be empty.)"]
  }],
  "education": [{
    "institution": "string",
    "degree": "string",
    "field": "string",
    "period": "string (e.g Month Year - Month Year)"
  }]
}`

const extractionSystemPrompt = "You are a resume data extraction engine. Reply with JSON only, no commentary."

// BuildPrompt assembles the single extraction prompt from the section slices.
// One prompt per request; no retries, no conversation state.
func BuildPrompt(s Sections, lang Language) (system, user string) {
	intro := "Extract and structure information from this English LinkedIn resume into the exact JSON format specified."
	translationRule := ""
	if lang == LangES {
		intro = "Extract and structure information from this Spanish LinkedIn resume into the exact JSON format specified."
		translationRule = "- Use proper Spanish-to-English translations for field names where appropriate\n"
	}

	user = fmt.Sprintf(`%s

RESUME SECTIONS:
Header/Contact: %s
Contact Info: %s
Summary: %s
Experience: %s
Education: %s
Skills: %s

%s

Instructions:
- Extract ALL information accurately from the provided sections
- Return ONLY valid JSON matching the schema exactly
%s- If a field is missing, use empty string "" or empty array [] as appropriate
- Ensure email format is valid
- Format dates consistently

JSON Response:`,
		intro,
		s.Header,
		s.Contact,
		s.Summary,
		s.Experience,
		s.Education,
		s.Skills,
		schemaDescription,
		translationRule,
	)
	return extractionSystemPrompt, user
}
