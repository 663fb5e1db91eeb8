package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)
	Version = "v1.2.3"
	Commit = "0123456789abcdef0123"

	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(got, "commit: 0123456789ab\n") {
		t.Errorf("commit should be shortened: %q", got)
	}
}

func TestString(t *testing.T) {
	got := String()
	for _, want := range []string{"version: ", "commit: ", "built: ", "platform: "} {
		if !strings.Contains(got, want) {
			t.Errorf("String() missing %q: %q", want, got)
		}
	}
}
