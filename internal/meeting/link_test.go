package meeting

import (
	"regexp"
	"testing"
)

func TestNewLink_Format(t *testing.T) {
	t.Parallel()

	link, err := NewLink("https://meet.jit.si/peerskill")
	if err != nil {
		t.Fatalf("NewLink error: %v", err)
	}

	pattern := regexp.MustCompile(`^https://meet\.jit\.si/peerskill/[0-9a-z]{5}-[0-9a-z]{5}-[0-9a-z]+$`)
	if !pattern.MatchString(link) {
		t.Fatalf("link %q does not match expected shape", link)
	}
}

func TestNewLink_Distinct(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		link, err := NewLink("https://example.com/rooms")
		if err != nil {
			t.Fatalf("NewLink error: %v", err)
		}
		if seen[link] {
			t.Fatalf("duplicate link generated: %s", link)
		}
		seen[link] = true
	}
}
