package recommend

import (
	"reflect"
	"testing"
)

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"49 minutes", 49},
		{"30", 30},
		{"", 0},
		{"varies", 0},
		{"approx. 15 min", 15},
	}
	for _, tc := range cases {
		if got := ParseDurationMinutes(tc.in); got != tc.want {
			t.Fatalf("ParseDurationMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeYesNo(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Yes", "Yes"},
		{"TRUE", "Yes"},
		{"y", "Yes"},
		{"1", "Yes"},
		{" yes ", "Yes"},
		{"", "No"},
		{"no", "No"},
		{"maybe", "No"},
	}
	for _, tc := range cases {
		if got := NormalizeYesNo(tc.in); got != tc.want {
			t.Fatalf("NormalizeYesNo(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapTestTypesToCodes(t *testing.T) {
	got := MapTestTypesToCodes([]string{"Ability", "Knowledge", "Ability"})
	if !reflect.DeepEqual(got, []string{"A", "K"}) {
		t.Fatalf("expected [A K], got %v", got)
	}

	// Already-coded letters and lowercase names are accepted; unknown
	// entries are dropped.
	got = MapTestTypesToCodes([]string{"P", "personality", "Mystery", "situational"})
	if !reflect.DeepEqual(got, []string{"P", "S"}) {
		t.Fatalf("expected [P S], got %v", got)
	}

	got = MapTestTypesToCodes(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://Example.com/Test/", "https://example.com/test"},
		{"https://example.com/a//", "https://example.com/a"},
		{" https://example.com/b ", "https://example.com/b"},
	}
	for _, tc := range cases {
		if got := NormalizeURL(tc.in); got != tc.want {
			t.Fatalf("NormalizeURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
