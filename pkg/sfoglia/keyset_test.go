package sfoglia

import "testing"

func TestKeySetPreservesInsertionOrder(t *testing.T) {
	var set KeySet
	set.Add("c")
	set.Add("a")
	set.Add("b")
	set.Add("a") // duplicate, ignored

	wantKeys(t, "keys", set.Keys(), []string{"c", "a", "b"})
	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", set.Len())
	}
}

func TestKeySetRemove(t *testing.T) {
	var set KeySet
	set.Add("a")
	set.Add("b")
	set.Add("c")
	set.Remove("b")
	set.Remove("missing")

	wantKeys(t, "keys", set.Keys(), []string{"a", "c"})
	if set.Has("b") {
		t.Fatalf("removed key still present")
	}
}

func TestKeySetZeroValueUsable(t *testing.T) {
	var set KeySet
	if !set.Empty() || set.Has("a") || set.Len() != 0 {
		t.Fatalf("zero value should behave as an empty set")
	}
	set.Remove("a") // no-op on empty set
	set.Add("a")
	if !set.Has("a") {
		t.Fatalf("Add after zero value failed")
	}
}

func TestKeySetCloneIsIndependent(t *testing.T) {
	var set KeySet
	set.Add("a")

	dup := set.clone()
	dup.Add("b")
	dup.Remove("a")

	wantKeys(t, "original", set.Keys(), []string{"a"})
	wantKeys(t, "clone", dup.Keys(), []string{"b"})
}

func TestKeySetKeysReturnsACopy(t *testing.T) {
	var set KeySet
	set.Add("a")
	set.Add("b")

	keys := set.Keys()
	keys[0] = "mutated"
	wantKeys(t, "keys", set.Keys(), []string{"a", "b"})
}
