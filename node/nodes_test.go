package node

import (
	"testing"

	"github.com/xiaoyuanzhu-com/list-filter/togglelist"
)

func TestListFilterToggle_FreshStateAllActive(t *testing.T) {
	result := ListFilterToggle{}.Evaluate(`["a","b","c"]`, "")

	if result.FilteredJSON != `["a","b","c"]` {
		t.Errorf("FilteredJSON = %s, want all items", result.FilteredJSON)
	}
	if result.Count != 3 {
		t.Errorf("Count = %d, want 3", result.Count)
	}

	state := togglelist.Deserialize(result.StateJSON)
	if state.Len() != 3 || state.Count() != 3 {
		t.Errorf("state = %v, want 3 active entries", state.Entries())
	}
}

func TestListFilterToggle_StateCarriesAcrossEvaluations(t *testing.T) {
	first := ListFilterToggle{}.Evaluate(`["a","b","c"]`, "")

	state := togglelist.Deserialize(first.StateJSON)
	state.Toggle("b")

	// Reordered upstream list; "b" must stay inactive
	second := ListFilterToggle{}.Evaluate(`["c","b","a"]`, state.Serialize())

	if second.FilteredJSON != `["c","a"]` {
		t.Errorf("FilteredJSON = %s, want [\"c\",\"a\"]", second.FilteredJSON)
	}
	if second.Count != 2 {
		t.Errorf("Count = %d, want 2", second.Count)
	}
}

func TestListFilterToggle_UnparsableItems(t *testing.T) {
	result := ListFilterToggle{}.Evaluate("", "")

	if result.FilteredJSON != "[]" || result.Count != 0 {
		t.Errorf("got (%s, %d), want ([], 0)", result.FilteredJSON, result.Count)
	}
	if result.StateJSON != "[]" {
		t.Errorf("StateJSON = %s, want []", result.StateJSON)
	}
}

func TestListFilterInput_PassThrough(t *testing.T) {
	if got := (ListFilterInput{}).Evaluate(`["a", "b"]`); got != `["a", "b"]` {
		t.Errorf("Evaluate() = %s, want input unchanged", got)
	}
	if got := (ListFilterInput{}).Evaluate("not json"); got != "[]" {
		t.Errorf("Evaluate() = %s, want []", got)
	}
	if got := (ListFilterInput{}).Evaluate(`{"a":1}`); got != "[]" {
		t.Errorf("Evaluate() = %s, want [] for non-array", got)
	}
}

func TestListFilterOutput(t *testing.T) {
	filtered, count := ListFilterOutput{}.Evaluate(`["x","y"]`)
	if filtered != `["x","y"]` || count != 2 {
		t.Errorf("Evaluate() = (%s, %d), want ([\"x\",\"y\"], 2)", filtered, count)
	}

	filtered, count = ListFilterOutput{}.Evaluate("broken")
	if filtered != "[]" || count != 0 {
		t.Errorf("Evaluate() = (%s, %d), want ([], 0)", filtered, count)
	}
}

func TestRegistry(t *testing.T) {
	r := &Registry{}
	for _, d := range defaultDefinitions {
		r.Register(d)
	}

	defs := r.GetAll()
	if len(defs) != 3 {
		t.Fatalf("GetAll() returned %d definitions, want 3", len(defs))
	}
	if defs[0].Type != "ListFilterToggle" || defs[0].Deprecated {
		t.Errorf("first definition = %+v, want non-deprecated ListFilterToggle", defs[0])
	}

	if _, ok := r.Get("ListFilterInput"); !ok {
		t.Error("Get(ListFilterInput) not found")
	}
	if _, ok := r.Get("Unknown"); ok {
		t.Error("Get(Unknown) unexpectedly found")
	}
}
