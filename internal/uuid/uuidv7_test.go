package uuid

import "testing"

func TestNew(t *testing.T) {
	t.Run("generates_v7", func(t *testing.T) {
		id := New()
		if !IsValid(id) {
			t.Fatalf("New() = %q, not a valid uuid", id)
		}
		if v := Version(id); v != 7 {
			t.Errorf("Version() = %d, want 7", v)
		}
	})

	t.Run("unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := New()
			if seen[id] {
				t.Fatalf("duplicate id %q", id)
			}
			seen[id] = true
		}
	})
}

func TestIsValid(t *testing.T) {
	if IsValid("not-a-uuid") {
		t.Error("IsValid(not-a-uuid) = true")
	}
	if Version("garbage") != 0 {
		t.Error("Version(garbage) should be 0")
	}
}
