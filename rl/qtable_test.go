package rl

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type stubState string

func (s stubState) Hash() string { return string(s) }

func newTestTable(t *testing.T, alpha, gamma float64) *QTablePolicy {
	t.Helper()
	q, err := NewQTablePolicy(3, alpha, gamma, 0)
	if err != nil {
		t.Fatalf("NewQTablePolicy: %v", err)
	}
	return q
}

func TestNewQTablePolicyValidation(t *testing.T) {
	cases := []struct {
		name         string
		alpha, gamma float64
	}{
		{"zero alpha", 0, 0.9},
		{"alpha above one", 1.1, 0.9},
		{"negative gamma", 0.5, -0.1},
		{"gamma above one", 0.5, 1.5},
	}
	for _, c := range cases {
		if _, err := NewQTablePolicy(3, c.alpha, c.gamma, 0); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestUpdateBellmanRule(t *testing.T) {
	q := newTestTable(t, 0.5, 0.9)
	s, next := stubState("s"), stubState("next")

	// Seed the next state with a known max value of 4.
	q.table["next"] = []float64{1, 4, 2}

	q.Update(s, 1, 2, next, false)
	want := 0.5 * (2 + 0.9*4)
	if got := q.Values("s")[1]; got != want {
		t.Errorf("Q(s,1) = %v, want %v", got, want)
	}
}

func TestUpdateTerminalHasNoBootstrap(t *testing.T) {
	q := newTestTable(t, 0.5, 0.9)
	s, next := stubState("s"), stubState("next")
	q.table["next"] = []float64{100, 100, 100}

	q.Update(s, 0, -10, next, true)
	want := 0.5 * -10.0
	if got := q.Values("s")[0]; got != want {
		t.Errorf("terminal update Q(s,0) = %v, want %v (next-state values must not leak)", got, want)
	}
}

func TestGreedySelectionDeterministicTieBreak(t *testing.T) {
	q := newTestTable(t, 0.5, 0.9)
	s := stubState("s")

	// Unseen state: all zeroes, lowest index wins.
	for i := 0; i < 10; i++ {
		if a := q.SelectAction(s, false); a != 0 {
			t.Fatalf("greedy action on unseen state = %d, want 0", a)
		}
	}

	q.table["s"] = []float64{1, 3, 3}
	for i := 0; i < 10; i++ {
		if a := q.SelectAction(s, false); a != 1 {
			t.Fatalf("tie between 1 and 2 broke to %d, want 1", a)
		}
	}

	q.table["s"] = []float64{-1, -5, -0.5}
	if a := q.SelectAction(s, false); a != 2 {
		t.Errorf("greedy action = %d, want 2", a)
	}
}

func TestFrozenSelectionIgnoresEpsilon(t *testing.T) {
	q := newTestTable(t, 0.5, 0.9)
	q.SetEpsilon(1.0)
	q.table["s"] = []float64{0, 2, 1}
	for i := 0; i < 50; i++ {
		if a := q.SelectAction(stubState("s"), false); a != 1 {
			t.Fatalf("frozen selection explored: got %d", a)
		}
	}
}

func TestExploringSelectionCoversAllActions(t *testing.T) {
	q := newTestTable(t, 0.5, 0.9)
	q.SetEpsilon(1.0)
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		a := q.SelectAction(stubState("s"), true)
		if a < 0 || a >= 3 {
			t.Fatalf("action %d outside domain", a)
		}
		seen[a] = true
	}
	if len(seen) != 3 {
		t.Errorf("exploration only produced actions %v", seen)
	}
}

func TestGreedySelectionDoesNotGrowTable(t *testing.T) {
	q := newTestTable(t, 0.5, 0.9)
	q.SelectAction(stubState("never-updated"), false)
	if q.States() != 0 {
		t.Errorf("greedy lookup inserted a state")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	q := newTestTable(t, 0.5, 0.9)
	q.table["a"] = []float64{0.1 + 0.2, -1e-17, 0}
	q.table["b"] = []float64{-10, math.SmallestNonzeroFloat64, 123456.789e-7}
	q.table["c"] = []float64{0, 0, 0}

	path := filepath.Join(t.TempDir(), "qtable.json")
	if err := q.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := newTestTable(t, 0.5, 0.9)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(q.table, loaded.table) {
		t.Errorf("round trip not exact:\n got %v\nwant %v", loaded.table, q.table)
	}
}

func TestSaveLoadEmptyTable(t *testing.T) {
	q := newTestTable(t, 0.5, 0.9)
	path := filepath.Join(t.TempDir(), "qtable.json")
	if err := q.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded := newTestTable(t, 0.5, 0.9)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.States() != 0 {
		t.Errorf("empty table loaded %d states", loaded.States())
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	q := newTestTable(t, 0.5, 0.9)
	if err := q.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("expected error for a missing checkpoint")
	}
}

func TestLoadCorruptFileErrors(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.json")
	if err := os.WriteFile(garbage, []byte("not json {{{"), 0644); err != nil {
		t.Fatal(err)
	}
	q := newTestTable(t, 0.5, 0.9)
	if err := q.Load(garbage); err == nil {
		t.Errorf("expected error for a corrupt checkpoint")
	}

	wrongShape := filepath.Join(dir, "shape.json")
	if err := os.WriteFile(wrongShape, []byte(`{"actions":3,"qtable":{"s":[1,2]}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := q.Load(wrongShape); err == nil {
		t.Errorf("expected error for a truncated value row")
	}

	wrongActions := filepath.Join(dir, "actions.json")
	if err := os.WriteFile(wrongActions, []byte(`{"actions":5,"qtable":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := q.Load(wrongActions); err == nil {
		t.Errorf("expected error for a mismatched action count")
	}
}
