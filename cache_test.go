package assetbook

import "testing"

func TestCacheReplace(t *testing.T) {
	var c Cache
	if c.Len() != 0 {
		t.Fatalf("new cache has %d assets, want 0", c.Len())
	}

	first := c.Begin()
	second := c.Begin()

	if !c.Replace(second, []Asset{{ID: "2"}, {ID: "1"}}) {
		t.Fatal("Replace(second) = false, want true")
	}
	// the first fetch lands after the second one: it is stale.
	if c.Replace(first, []Asset{{ID: "1"}}) {
		t.Error("Replace(first) = true after second was applied, want false")
	}
	if got := c.Snapshot(); len(got) != 2 || got[0].ID != "2" || got[1].ID != "1" {
		t.Errorf("Snapshot() = %v, want [2 1]", got)
	}
	// the same ticket cannot be applied twice.
	if c.Replace(second, nil) {
		t.Error("Replace(second) applied twice")
	}

	third := c.Begin()
	if !c.Replace(third, nil) {
		t.Error("Replace(third) = false, want true")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after empty replace, want 0", c.Len())
	}
}

func TestCacheSnapshotIsACopy(t *testing.T) {
	var c Cache
	c.Replace(c.Begin(), []Asset{{ID: "1", Name: "a"}})

	snap := c.Snapshot()
	snap[0].Name = "changed"

	if a, ok := c.Find("1"); !ok || a.Name != "a" {
		t.Errorf("Find(1) = %+v, %v; the cache was modified through a snapshot", a, ok)
	}
	if _, ok := c.Find("2"); ok {
		t.Error("Find(2) found an asset that is not cached")
	}
}
