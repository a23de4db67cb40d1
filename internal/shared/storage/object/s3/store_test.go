package s3

import "testing"

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  ", want: ""},
		{in: "/resumes/", want: "resumes"},
		{in: "resumes", want: "resumes"},
		{in: "a/b/", want: "a/b"},
	}
	for _, tt := range tests {
		if got := normalizePrefix(tt.in); got != tt.want {
			t.Fatalf("normalizePrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		key    string
		want   string
	}{
		{prefix: "", key: "resume.pdf", want: "resume.pdf"},
		{prefix: "resumes", key: "resume.pdf", want: "resumes/resume.pdf"},
		{prefix: "resumes/", key: "/resume.pdf", want: "resumes/resume.pdf"},
		{prefix: "resumes", key: "", want: "resumes"},
	}
	for _, tt := range tests {
		if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
			t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
		}
	}
}
