package coverletters

import "testing"

func TestExtractTitleAndCompany(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantTitle   string
		wantCompany string
	}{
		{
			name:        "both labeled",
			in:          "Position: Staff Engineer\nCompany: Acme",
			wantTitle:   "Staff Engineer",
			wantCompany: "Acme",
		},
		{
			name:        "no labels",
			in:          "no labeled lines here",
			wantTitle:   UnknownPosition,
			wantCompany: UnknownCompany,
		},
		{
			name:        "alternate labels",
			in:          "Job Title: Designer\nOrganization: Globex Inc",
			wantTitle:   "Designer",
			wantCompany: "Globex Inc",
		},
		{
			name:        "case insensitive",
			in:          "pOsItIoN: Backend Developer\ncOmPaNy: Initech",
			wantTitle:   "Backend Developer",
			wantCompany: "Initech",
		},
		{
			name:        "label with empty remainder stays empty",
			in:          "Position:\nCompany: Acme",
			wantTitle:   "",
			wantCompany: "Acme",
		},
		{
			name:        "bare label does not capture the next line",
			in:          "Title:\nSenior Platform Role\nOrganization:\nGlobex",
			wantTitle:   "",
			wantCompany: "",
		},
		{
			name:        "first matching line wins",
			in:          "Title: First\nTitle: Second\nCompany: One\nOrganization: Two",
			wantTitle:   "First",
			wantCompany: "One",
		},
		{
			name:        "label mid-line does not match",
			in:          "We are a great Company: truly\nApply now",
			wantTitle:   UnknownPosition,
			wantCompany: UnknownCompany,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			title, company := ExtractTitleAndCompany(tt.in)
			if title != tt.wantTitle {
				t.Fatalf("title = %q, want %q", title, tt.wantTitle)
			}
			if company != tt.wantCompany {
				t.Fatalf("company = %q, want %q", company, tt.wantCompany)
			}
		})
	}
}

func TestResolveTitleAndCompanyOverridePrecedence(t *testing.T) {
	jd := "Position: Extracted Title\nCompany: Extracted Co"

	title, company := ResolveTitleAndCompany(jd, "X", "")
	if title != "X" {
		t.Fatalf("override title must win, got %q", title)
	}
	if company != "Extracted Co" {
		t.Fatalf("company should come from extraction, got %q", company)
	}

	title, company = ResolveTitleAndCompany(jd, "  ", "\t")
	if title != "Extracted Title" || company != "Extracted Co" {
		t.Fatalf("blank overrides must fall back to extraction, got %q, %q", title, company)
	}

	title, company = ResolveTitleAndCompany("anything at all", " Explicit Title ", " Explicit Co ")
	if title != "Explicit Title" || company != "Explicit Co" {
		t.Fatalf("expected trimmed overrides, got %q, %q", title, company)
	}
}
