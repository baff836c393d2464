package matching

import (
	"strings"
	"testing"

	"peerskill/api/internal/models"
)

func user(email string, teach, learn []string) models.User {
	return models.User{
		ID:    email,
		Email: email,
		Name:  email,
		Teach: teach,
		Learn: learn,
	}
}

func emails(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Email)
	}
	return out
}

func TestLabelMatches_SubstringFoldsCase(t *testing.T) {
	t.Parallel()

	if !LabelMatches("Python Basics", "python", ModeSubstring) {
		t.Fatal("expected 'Python Basics' to match learn label 'python'")
	}
	if !LabelMatches("JavaScript", "java", ModeSubstring) {
		t.Fatal("substring containment is asymmetric on purpose: 'java' matches 'javascript'")
	}
	if LabelMatches("java", "javascript", ModeSubstring) {
		t.Fatal("teach label shorter than learn label must not match")
	}
}

func TestLabelMatches_Exact(t *testing.T) {
	t.Parallel()

	if !LabelMatches("Python", "python", ModeExact) {
		t.Fatal("exact mode should still fold case")
	}
	if LabelMatches("Python Basics", "python", ModeExact) {
		t.Fatal("exact mode must not do containment")
	}
}

func TestLabelMatches_BlankLabels(t *testing.T) {
	t.Parallel()

	if LabelMatches("", "python", ModeSubstring) {
		t.Fatal("empty teach label must not match")
	}
	if LabelMatches("python", "  ", ModeSubstring) {
		t.Fatal("blank learn label must not match (it is a substring of everything)")
	}
}

func TestRecommend_SubstringSemantics(t *testing.T) {
	t.Parallel()

	requester := user("a@example.com", nil, []string{"python"})
	candidates := []models.User{
		user("b@example.com", []string{"Python Basics"}, nil),
		user("c@example.com", []string{"Go"}, nil),
		user("d@example.com", []string{"Advanced PYTHON"}, nil),
	}

	got := emails(Recommend(requester, candidates, ModeSubstring))
	want := []string{"b@example.com", "d@example.com"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("recommend mismatch: got %v want %v", got, want)
	}
}

func TestRecommend_EmptyLearnSet(t *testing.T) {
	t.Parallel()

	requester := user("a@example.com", nil, nil)
	candidates := []models.User{user("b@example.com", []string{"Go"}, nil)}

	if got := Recommend(requester, candidates, ModeSubstring); len(got) != 0 {
		t.Fatalf("empty learn set must yield empty result, got %v", emails(got))
	}
}

func TestRecommend_ExcludesRequester(t *testing.T) {
	t.Parallel()

	requester := user("a@example.com", []string{"go"}, []string{"go"})
	candidates := []models.User{
		user("A@EXAMPLE.COM", []string{"go"}, nil),
		user("b@example.com", []string{"golang"}, nil),
	}

	got := emails(Recommend(requester, candidates, ModeSubstring))
	if len(got) != 1 || got[0] != "b@example.com" {
		t.Fatalf("requester must be excluded case-insensitively, got %v", got)
	}
}

func TestRandomPeers_CapAndExclusion(t *testing.T) {
	t.Parallel()

	candidates := make([]models.User, 0, 12)
	candidates = append(candidates, user("me@example.com", nil, nil))
	for _, e := range []string{"b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		candidates = append(candidates, user(e+"@example.com", nil, nil))
	}

	got := RandomPeers(candidates, "ME@example.com", 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 peers, got %d", len(got))
	}

	seen := map[string]bool{}
	for _, u := range got {
		if strings.EqualFold(u.Email, "me@example.com") {
			t.Fatal("random peers must never include the requester")
		}
		if seen[u.Email] {
			t.Fatalf("duplicate peer %s", u.Email)
		}
		seen[u.Email] = true
	}
}

func TestRandomPeers_FewerThanCap(t *testing.T) {
	t.Parallel()

	candidates := []models.User{
		user("me@example.com", nil, nil),
		user("b@example.com", nil, nil),
	}

	got := RandomPeers(candidates, "me@example.com", 5)
	if len(got) != 1 || got[0].Email != "b@example.com" {
		t.Fatalf("expected the single other user, got %v", emails(got))
	}
}

func TestSearchProfiles(t *testing.T) {
	t.Parallel()

	candidates := []models.User{
		{Email: "b@example.com", Name: "Bea", Teach: []string{"Data Structures"}, Branch: "CSE", StudyYear: "2"},
		{Email: "c@example.com", Name: "Carl", Teach: []string{"Painting"}, Branch: "Arts", StudyYear: "3"},
	}

	got := emails(SearchProfiles(candidates, "a@example.com", "data"))
	if len(got) != 1 || got[0] != "b@example.com" {
		t.Fatalf("teach-label search failed: %v", got)
	}

	got = emails(SearchProfiles(candidates, "a@example.com", "ARTS"))
	if len(got) != 1 || got[0] != "c@example.com" {
		t.Fatalf("branch search should fold case: %v", got)
	}

	if got := SearchProfiles(candidates, "a@example.com", "   "); len(got) != 0 {
		t.Fatalf("blank query must yield empty result, got %v", emails(got))
	}
}
