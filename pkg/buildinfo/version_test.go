package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q, want cobra name placeholder prefix", tmpl)
	}
	if !strings.Contains(tmpl, Commit) || !strings.Contains(tmpl, Date) {
		t.Errorf("Template() = %q, missing commit or date", tmpl)
	}
}

func TestUserAgent(t *testing.T) {
	if got, want := UserAgent(), "inspiration/"+Version; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}
