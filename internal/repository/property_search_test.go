package repository

import (
	"strings"
	"testing"
)

func TestFilterClause_BaselineOnly(t *testing.T) {
	cond, args := PropertyFilter{}.clause()
	if cond != "p.is_published = 1" {
		t.Errorf("empty filter clause = %q", cond)
	}
	if len(args) != 0 {
		t.Errorf("empty filter args = %v", args)
	}
}

func TestFilterClause_CriteriaCombineWithAND(t *testing.T) {
	min, max := 100000.0, 500000.0
	cond, args := PropertyFilter{
		TypeSlug:     "villa",
		LocationSlug: "palm-hills",
		MinPrice:     &min,
		MaxPrice:     &max,
	}.clause()

	if !strings.HasPrefix(cond, "p.is_published = 1 AND ") {
		t.Errorf("clause must start from the published baseline: %q", cond)
	}
	for _, want := range []string{
		"p.type_id = (SELECT id FROM property_types WHERE slug = ?)",
		"l.slug = ?",
		"p.price >= ?",
		"p.price <= ?",
	} {
		if !strings.Contains(cond, want) {
			t.Errorf("clause missing %q: %q", want, cond)
		}
	}
	if got := strings.Count(cond, " AND "); got != 4 {
		t.Errorf("clause joins %d conditions with AND, want 4: %q", got, cond)
	}
	if len(args) != 4 {
		t.Fatalf("args = %v, want 4 values", args)
	}
	if args[0] != "villa" || args[1] != "palm-hills" || args[2] != min || args[3] != max {
		t.Errorf("args out of order: %v", args)
	}
}

func TestFilterClause_FreeTextExpandsToOR(t *testing.T) {
	cond, args := PropertyFilter{Query: "Garden View"}.clause()

	if !strings.Contains(cond, "LOWER(p.title) LIKE ? OR LOWER(p.description) LIKE ? OR LOWER(p.address) LIKE ? OR LOWER(l.name) LIKE ?") {
		t.Errorf("free text must OR across the four columns: %q", cond)
	}
	if len(args) != 4 {
		t.Fatalf("free text args = %v, want the needle four times", args)
	}
	for _, a := range args {
		if a != "%garden view%" {
			t.Errorf("needle = %v, want lowercase %%garden view%%", a)
		}
	}
}

func TestFilterClause_BlankQueryDegenerates(t *testing.T) {
	cond, args := PropertyFilter{Query: "   "}.clause()
	if cond != "p.is_published = 1" || len(args) != 0 {
		t.Errorf("whitespace query must add nothing: %q %v", cond, args)
	}
}

func TestFilterClause_FeaturedOnly(t *testing.T) {
	cond, _ := PropertyFilter{FeaturedOnly: true}.clause()
	if cond != "p.is_published = 1 AND p.is_featured = 1" {
		t.Errorf("featured clause = %q", cond)
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(1); got != "?" {
		t.Errorf("placeholders(1) = %q", got)
	}
	if got := placeholders(3); got != "?,?,?" {
		t.Errorf("placeholders(3) = %q", got)
	}
}
