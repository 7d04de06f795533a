package normalize_test

import (
	"testing"

	"github.com/harmonyhealth/harmony/internal/app/system/normalize"
)

func TestEmail(t *testing.T) {
	if got := normalize.Email("  Doc@Example.com "); got != "Doc@Example.com" {
		t.Errorf("Email: got %q, want %q", got, "Doc@Example.com")
	}
}

func TestRole(t *testing.T) {
	if got := normalize.Role("  Doctor "); got != "doctor" {
		t.Errorf("Role: got %q, want %q", got, "doctor")
	}
}

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Clinic", "acme-clinic"},
		{"Community Clinic A", "community-clinic-a"},
		{"General Hospital B", "general-hospital-b"},
		{" St. Mary's -- ER ", "st-mary-s-er"},
		{"ALL CAPS", "all-caps"},
		{"--already--slugged--", "already-slugged"},
		{"clinic42", "clinic42"},
		{"", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := normalize.Slug(c.in); got != c.want {
			t.Errorf("Slug(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}
