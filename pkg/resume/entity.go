package resume

// Language is the classification of a resume's source language.
type Language string

const (
	LangEN      Language = "EN"
	LangES      Language = "ES"
	LangUnknown Language = "Unrecognized"
)

// Sections holds the contiguous slices of the cleaned resume text,
// in source order. Contact is a sub-slice of Header.
type Sections struct {
	Header     string
	Summary    string
	Experience string
	Education  string
	Skills     string
	Contact    string
}

// CV is the validated structured resume. Instances are only produced by
// ParseCV after schema validation succeeds and are never mutated afterwards.
type CV struct {
	Contact    Contact      `json:"contact"`
	Name       string       `json:"name"`
	Title      string       `json:"title"`
	Location   string       `json:"location"`
	Summary    string       `json:"summary"`
	Skills     Skills       `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

type Contact struct {
	Github   string `json:"github"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Linkedin string `json:"linkedin"`
}

type Skills struct {
	MainSkills []string         `json:"mainSkills"`
	Languages  []SpokenLanguage `json:"languages"`
}

// SpokenLanguage is a human language with a proficiency level.
type SpokenLanguage struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Experience struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Duration    string   `json:"duration"`
	Location    string   `json:"location"`
	Description []string `json:"description,omitempty"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Period      string `json:"period"`
}
