package buildinfo

import (
	"strings"
	"testing"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func TestShort(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{"unstamped", "dev", "none", "circos dev"},
		{"dev with commit", "dev", "abc1234", "circos dev (abc1234)"},
		{"release", "v0.4.0", "abc1234", "circos v0.4.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamp(t, tt.version, tt.commit, "unknown")
			if got := Short(); got != tt.want {
				t.Errorf("Short() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserAgent(t *testing.T) {
	stamp(t, "v0.4.0", "abc1234", "unknown")
	if got := UserAgent(); got != "circos/v0.4.0" {
		t.Errorf("UserAgent() = %q", got)
	}
}

func TestTemplate(t *testing.T) {
	stamp(t, "v0.4.0", "abc1234", "2026-01-02T03:04:05Z")
	got := Template()
	for _, want := range []string{"circos v0.4.0\n", "commit: abc1234\n", "built: 2026-01-02T03:04:05Z\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "{{") {
		t.Errorf("Template() = %q should not defer to cobra fields", got)
	}
}
