package resume

import "testing"

func TestIsLinkedInResume(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"profile url present", "Visit linkedin.com/in/jdoe", true},
		{"mixed case", "WWW.LinkedIn.COM/IN/jdoe", true},
		{"marker mid-text", "Contact\nwww.linkedin.com/in/jane-doe\nJane Doe", true},
		{"similar but wrong domain", "LinkedIn profile: linked.in/xyz", false},
		{"company url only", "see linkedin.com/company/acme", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLinkedInResume(tc.text); got != tc.want {
				t.Fatalf("IsLinkedInResume(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
