package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Sea View Villa", "sea-view-villa"},
		{"  Downtown  Loft  ", "downtown-loft"},
		{"3BR / 2BA — Penthouse!", "3br-2ba-penthouse"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER Case", "upper-case"},
		{"---", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
