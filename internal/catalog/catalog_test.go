package catalog

import "testing"

func TestSeedItemsWellFormed(t *testing.T) {
	items := SeedItems()
	if len(items) == 0 {
		t.Fatal("seed catalog is empty")
	}

	known := make(map[string]bool)
	for _, c := range Categories() {
		known[c.ID] = true
	}

	seen := make(map[string]bool)
	for _, item := range items {
		if item.ID == "" || item.Name == "" {
			t.Fatalf("seed item missing id or name: %+v", item)
		}
		if seen[item.ID] {
			t.Fatalf("duplicate seed id %s", item.ID)
		}
		seen[item.ID] = true
		if item.Price < 0 || item.Quantity < 0 {
			t.Fatalf("seed item %s has negative price or quantity", item.ID)
		}
		if item.Rating < 0 || item.Rating > 5 {
			t.Fatalf("seed item %s rating out of range: %f", item.ID, item.Rating)
		}
		if !known[item.Category] {
			t.Fatalf("seed item %s references unknown category %s", item.ID, item.Category)
		}
	}
}

func TestSeedItemsReturnsCopies(t *testing.T) {
	first := SeedItems()
	first[0].Quantity = -999

	second := SeedItems()
	if second[0].Quantity == -999 {
		t.Fatal("SeedItems leaked its backing array")
	}
}

func TestFindCategory(t *testing.T) {
	if c := FindCategory("electronics"); c == nil || c.Name != "Electronics" {
		t.Fatalf("FindCategory(electronics) = %+v", c)
	}
	if c := FindCategory("nope"); c != nil {
		t.Fatalf("expected nil for unknown category, got %+v", c)
	}
}
