package report

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"snake-rl/rl"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4, 5}, 3)
	want := []float64{1, 1.5, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("window[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMovingAverageShortInput(t *testing.T) {
	got := MovingAverage([]float64{4, 8}, 100)
	if !reflect.DeepEqual(got, []float64{4, 6}) {
		t.Errorf("got %v, want the running mean", got)
	}
	if out := MovingAverage(nil, 10); len(out) != 0 {
		t.Errorf("empty input produced %v", out)
	}
}

func TestNewTrainSummary(t *testing.T) {
	cfg := &rl.Config{
		Grid: 12, Episodes: 3, MaxSteps: 600, Seed: 7,
		Alpha: 0.05, Gamma: 0.9, EpsStart: 1.0, EpsEnd: 0.001,
	}
	result := &rl.TrainResult{Scores: []int{1, 2, 3}, BestScore: 3, BestEpisode: 2}

	s := NewTrainSummary(cfg, result)
	if !almostEqual(s.MeanScore, 2) {
		t.Errorf("mean %v, want 2", s.MeanScore)
	}
	// Population standard deviation of {1,2,3} is sqrt(2/3).
	if want := math.Sqrt(2.0 / 3.0); !almostEqual(s.StdScore, want) {
		t.Errorf("std %v, want %v", s.StdScore, want)
	}
	if !almostEqual(s.Last100Mean, 2) {
		t.Errorf("last-100 mean %v, want 2", s.Last100Mean)
	}
	if s.BestScore != 3 || s.BestEpisode != 2 {
		t.Errorf("best %d@%d, want 3@2", s.BestScore, s.BestEpisode)
	}
	if s.Grid != 12 || s.Seed != 7 {
		t.Errorf("config fields not carried over: %+v", s)
	}
}

func TestNewTrainSummaryEmptyRun(t *testing.T) {
	cfg := &rl.Config{Grid: 12, Episodes: 10, MaxSteps: 600, Alpha: 0.05, Gamma: 0.9, EpsStart: 1, EpsEnd: 0.001}
	s := NewTrainSummary(cfg, &rl.TrainResult{BestScore: -1, BestEpisode: -1})
	if s.MeanScore != 0 || s.StdScore != 0 {
		t.Errorf("empty run should report zero stats, got %+v", s)
	}
}

func TestNewEvalReport(t *testing.T) {
	result := &rl.EvalResult{Scores: []int{5, 0, 9, 2}, Steps: []int{50, 10, 80, 30}}
	r := NewEvalReport("runs/x/qtable.json", 12, 3, result)
	if r.Episodes != 4 {
		t.Errorf("episodes %d, want 4", r.Episodes)
	}
	if r.MinScore != 0 || r.MaxScore != 9 {
		t.Errorf("min/max %d/%d, want 0/9", r.MinScore, r.MaxScore)
	}
	if !almostEqual(r.MeanScore, 4) {
		t.Errorf("mean %v, want 4", r.MeanScore)
	}
	if r.Checkpoint != "runs/x/qtable.json" {
		t.Errorf("checkpoint %q not recorded", r.Checkpoint)
	}
}

func TestSaveScoresCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	if err := SaveScoresCSV(path, []int{0, 3, 1}); err != nil {
		t.Fatalf("SaveScoresCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "episode,score\n1,0\n2,3\n3,1\n"
	if string(data) != want {
		t.Errorf("csv contents:\n%q\nwant:\n%q", data, want)
	}
}

func TestSaveJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	in := TrainSummary{Episodes: 5, Grid: 8, MeanScore: 1.25}
	if err := SaveJSON(path, in); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[0] != '{' {
		t.Errorf("unexpected file contents: %q", data)
	}
}

func TestMakeRunDirAndLatest(t *testing.T) {
	base := t.TempDir()

	older, err := MakeRunDir(base, "first")
	if err != nil {
		t.Fatalf("MakeRunDir: %v", err)
	}
	newer, err := MakeRunDir(base, "second")
	if err != nil {
		t.Fatalf("MakeRunDir: %v", err)
	}

	// Force distinct modification times; back-to-back runs within the
	// same timestamp tick otherwise make ordering ambiguous.
	now := time.Now()
	if err := os.Chtimes(older, now.Add(-time.Hour), now.Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(newer, now, now); err != nil {
		t.Fatal(err)
	}

	got, err := LatestRunDir(base)
	if err != nil {
		t.Fatalf("LatestRunDir: %v", err)
	}
	if got != newer {
		t.Errorf("latest run %q, want %q", got, newer)
	}
}

func TestLatestRunDirEmpty(t *testing.T) {
	if _, err := LatestRunDir(t.TempDir()); err == nil {
		t.Errorf("expected error for an empty runs root")
	}
}
