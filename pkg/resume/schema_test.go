package resume

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

const validCVJSON = `{
  "contact": {
    "github": "https://github.com/janedoe",
    "mobile": "+34 600 000 000",
    "email": "jane@doe.dev",
    "linkedin": "https://linkedin.com/in/janedoe"
  },
  "name": "Jane Doe",
  "title": "Staff Engineer",
  "location": "Madrid, Spain",
  "summary": "Builds backend systems.",
  "skills": {
    "mainSkills": ["Go", "SQL"],
    "languages": [{"name": "Spanish", "level": "Native"}]
  },
  "experience": [{
    "company": "Acme Corp",
    "position": "Staff Engineer",
    "startDate": "January 2020",
    "endDate": "Present",
    "duration": "4 years",
    "location": "Madrid",
    "description": ["Led the platform team"]
  }],
  "education": [{
    "institution": "MIT",
    "degree": "BSc",
    "field": "Computer Science",
    "period": "September 2012 - June 2016"
  }]
}`

func TestParseCV_Valid(t *testing.T) {
	cv, err := ParseCV(validCVJSON)
	if err != nil {
		t.Fatalf("ParseCV: %v", err)
	}
	if cv.Name != "Jane Doe" {
		t.Errorf("name = %q", cv.Name)
	}
	if cv.Contact.Email != "jane@doe.dev" {
		t.Errorf("email = %q", cv.Contact.Email)
	}
	if len(cv.Experience) != 1 || cv.Experience[0].Company != "Acme Corp" {
		t.Errorf("experience = %+v", cv.Experience)
	}
	if len(cv.Skills.Languages) != 1 || cv.Skills.Languages[0].Level != "Native" {
		t.Errorf("languages = %+v", cv.Skills.Languages)
	}
}

func TestParseCV_SyntaxError(t *testing.T) {
	if _, err := ParseCV("{not json"); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func mutateValidCV(t *testing.T, mutate func(m map[string]any)) string {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(validCVJSON), &m); err != nil {
		t.Fatal(err)
	}
	mutate(m)
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestParseCV_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing name", func(m map[string]any) { delete(m, "name") }},
		{"empty name", func(m map[string]any) { m["name"] = "" }},
		{"missing summary", func(m map[string]any) { delete(m, "summary") }},
		{"wrong-typed experience", func(m map[string]any) { m["experience"] = "none" }},
		{"null education", func(m map[string]any) { m["education"] = nil }},
		{"invalid email", func(m map[string]any) {
			m["contact"].(map[string]any)["email"] = "not-an-email"
		}},
		{"experience entry missing duration", func(m map[string]any) {
			entry := m["experience"].([]any)[0].(map[string]any)
			delete(entry, "duration")
		}},
		{"language entry missing level", func(m map[string]any) {
			lang := m["skills"].(map[string]any)["languages"].([]any)[0].(map[string]any)
			delete(lang, "level")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := mutateValidCV(t, tc.mutate)
			if _, err := ParseCV(doc); err == nil {
				t.Fatalf("expected rejection, got none (doc: %s)", doc)
			}
		})
	}
}

func TestParseCV_EmptyEmailAllowed(t *testing.T) {
	doc := mutateValidCV(t, func(m map[string]any) {
		m["contact"].(map[string]any)["email"] = ""
	})
	if _, err := ParseCV(doc); err != nil {
		t.Fatalf("empty email should be valid: %v", err)
	}
}

func TestParseCV_OptionalFieldsAbsent(t *testing.T) {
	doc := mutateValidCV(t, func(m map[string]any) {
		delete(m, "location")
		delete(m, "contact")
		m["contact"] = map[string]any{}
		entry := m["experience"].([]any)[0].(map[string]any)
		delete(entry, "description")
	})
	cv, err := ParseCV(doc)
	if err != nil {
		t.Fatalf("ParseCV: %v", err)
	}
	if cv.Location != "" || cv.Contact.Email != "" {
		t.Errorf("optional fields should decode to zero values: %+v", cv)
	}
}

// validate∘serialize must be the identity on already-valid CVs.
func TestParseCV_RoundTrip(t *testing.T) {
	first, err := ParseCV(validCVJSON)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	b, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := ParseCV(string(b))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("round trip changed the CV:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestParseCV_ErrorMentionsField(t *testing.T) {
	doc := mutateValidCV(t, func(m map[string]any) { delete(m, "title") })
	_, err := ParseCV(doc)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "title") {
		t.Errorf("error should name the failing field: %v", err)
	}
}
