package togglelist

import (
	"reflect"
	"testing"
)

func TestNewFromRaw_AllActiveByDefault(t *testing.T) {
	s := NewFromRaw(`["a", "b", "c"]`)

	want := []string{"a", "b", "c"}
	if got := s.ActiveNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveNames() = %v, want %v", got, want)
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3", s.Count())
	}
}

func TestNewFromRaw_CoercesNonStrings(t *testing.T) {
	s := NewFromRaw(`[1, 2.5, true, null, "x"]`)

	want := []string{"1", "2.5", "true", "null", "x"}
	if got := s.ActiveNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveNames() = %v, want %v", got, want)
	}
}

func TestNewFromValues(t *testing.T) {
	s := NewFromValues([]any{"a", 1, false})

	want := []string{"a", "1", "false"}
	if got := s.ActiveNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveNames() = %v, want %v", got, want)
	}
}

func TestNewFromRaw_CommaFallback(t *testing.T) {
	// Plain comma-separated text must parse without JSON quoting
	s := NewFromRaw("a, b, c")

	want := []string{"a", "b", "c"}
	if got := s.ActiveNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveNames() = %v, want %v", got, want)
	}
}

func TestNewFromRaw_UnparsableDegradesToEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", ",,,"} {
		s := NewFromRaw(raw)
		if s.Len() != 0 {
			t.Errorf("NewFromRaw(%q).Len() = %d, want 0", raw, s.Len())
		}
	}
}

func TestNewFromRaw_EmptyList(t *testing.T) {
	s := NewFromRaw(`[]`)
	if got := s.ActiveNames(); len(got) != 0 {
		t.Errorf("ActiveNames() = %v, want empty", got)
	}
	if s.Count() != 0 {
		t.Errorf("Count() = %d, want 0", s.Count())
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	s := NewFromNames([]string{"a", "b", "c"})
	s.Toggle("b")

	s.Reconcile([]string{"a", "b", "c"})
	once := s.Entries()

	s.Reconcile([]string{"a", "b", "c"})
	twice := s.Entries()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second reconcile changed state: %v vs %v", once, twice)
	}
}

func TestReconcile_PreservesFlagsAcrossReorder(t *testing.T) {
	s := NewFromNames([]string{"a", "b", "c"})
	s.Toggle("b")

	s.Reconcile([]string{"c", "b", "a"})

	// Order follows the new list; "b" stays inactive
	want := []string{"c", "a"}
	if got := s.ActiveNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveNames() = %v, want %v", got, want)
	}
}

func TestReconcile_NewEntriesDefaultActive(t *testing.T) {
	s := NewFromNames([]string{"a"})
	s.Toggle("a")

	s.Reconcile([]string{"a", "b"})

	entries := s.Entries()
	if entries[0].Active {
		t.Error("prior inactive flag for 'a' was not carried forward")
	}
	if !entries[1].Active {
		t.Error("new entry 'b' should default to active")
	}
}

func TestReconcile_DropsMissingNamesSilently(t *testing.T) {
	s := NewFromNames([]string{"a", "b", "c"})
	s.Reconcile([]string{"b"})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if got := s.Entries()[0].Name; got != "b" {
		t.Errorf("remaining entry = %q, want %q", got, "b")
	}
}

func TestToggle_ByName(t *testing.T) {
	s := NewFromNames([]string{"a", "b"})

	active, err := s.Toggle("a")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if active {
		t.Error("Toggle() = true, want false after flipping an active entry")
	}

	active, err = s.Toggle("a")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !active {
		t.Error("Toggle() = false, want true after flipping back")
	}
}

func TestToggle_NotFound(t *testing.T) {
	s := NewFromNames([]string{"a"})
	if _, err := s.Toggle("missing"); err != ErrEntryNotFound {
		t.Errorf("Toggle() error = %v, want ErrEntryNotFound", err)
	}
}

func TestToggleIndex(t *testing.T) {
	s := NewFromNames([]string{"a", "b", "c"})

	if _, err := s.ToggleIndex(1); err != nil {
		t.Fatalf("ToggleIndex(1) error = %v", err)
	}
	want := []string{"a", "c"}
	if got := s.ActiveNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveNames() = %v, want %v", got, want)
	}

	for _, idx := range []int{-1, 3} {
		if _, err := s.ToggleIndex(idx); err != ErrEntryNotFound {
			t.Errorf("ToggleIndex(%d) error = %v, want ErrEntryNotFound", idx, err)
		}
	}
}

func TestSelectAllDeselectAll(t *testing.T) {
	s := NewFromNames([]string{"a", "b", "c"})

	s.DeselectAll()
	if s.Count() != 0 {
		t.Errorf("Count() after DeselectAll = %d, want 0", s.Count())
	}

	s.SelectAll()
	if s.Count() != 3 {
		t.Errorf("Count() after SelectAll = %d, want 3", s.Count())
	}
}

func TestSelectedIndices(t *testing.T) {
	s := NewFromNames([]string{"a", "b", "c", "d"})
	s.Toggle("b")

	want := []int{0, 2, 3}
	if got := s.SelectedIndices(); !reflect.DeepEqual(got, want) {
		t.Errorf("SelectedIndices() = %v, want %v", got, want)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	s := NewFromNames([]string{"a", "b", "c"})
	s.Toggle("b")

	restored := Deserialize(s.Serialize())
	if !s.Equal(restored) {
		t.Errorf("round trip mismatch: %v vs %v", s.Entries(), restored.Entries())
	}
}

func TestSerialize_EmptyState(t *testing.T) {
	if got := New().Serialize(); got != "[]" {
		t.Errorf("Serialize() = %q, want %q", got, "[]")
	}
}

func TestDeserialize_MalformedYieldsEmpty(t *testing.T) {
	for _, data := range []string{"", "not json", `{"name":"a"}`} {
		s := Deserialize(data)
		if s.Len() != 0 {
			t.Errorf("Deserialize(%q).Len() = %d, want 0", data, s.Len())
		}
	}
}

func TestEqual(t *testing.T) {
	a := NewFromNames([]string{"x", "y"})
	b := NewFromNames([]string{"x", "y"})
	if !a.Equal(b) {
		t.Error("identical states should be equal")
	}

	b.Toggle("y")
	if a.Equal(b) {
		t.Error("states with different flags should not be equal")
	}

	if a.Equal(nil) {
		t.Error("state should not equal nil")
	}
}
