package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func TestRunSimulationZeroTicks(t *testing.T) {
	arena := config.Default().Arena
	r := runSimulation(arena, simOptions{Seed: 7, Ticks: 0, DeltaTime: 1.0 / 60})

	if r.Ticks != 0 {
		t.Errorf("Ticks = %d, expected 0", r.Ticks)
	}
	if !r.Snapshot.Started {
		t.Error("match should be running after start")
	}
	if r.Snapshot.Ball.Bounds.X != arena.Width/2 || r.Snapshot.Ball.Bounds.Y != arena.Height/2 {
		t.Errorf("ball should be served from the center, got (%v, %v)",
			r.Snapshot.Ball.Bounds.X, r.Snapshot.Ball.Bounds.Y)
	}
	if len(r.Goals) != 0 || r.Winner != "" {
		t.Errorf("no goals expected, got %v winner %q", r.Goals, r.Winner)
	}
}

func TestRunSimulationDeterministic(t *testing.T) {
	arena := config.Default().Arena
	opts := simOptions{Seed: 12345, Ticks: 4000, DeltaTime: 1.0 / 60, Movement: pong.MovementUp}

	a := runSimulation(arena, opts)
	b := runSimulation(arena, opts)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed should give the same report:\n%+v\n%+v", a, b)
	}
}

func TestRunSimulationGoalsMatchScores(t *testing.T) {
	arena := config.Default().Arena
	r := runSimulation(arena, simOptions{Seed: 99, Ticks: 3000, DeltaTime: 1.0 / 60})

	if r.Ticks > 3000 {
		t.Fatalf("Ticks = %d, exceeds requested 3000", r.Ticks)
	}
	if r.Winner != "" {
		// Stop zeroes scores once a side wins
		if r.Snapshot.Started {
			t.Error("match should be stopped after a win")
		}
		if len(r.Goals) < pong.WinScore {
			t.Errorf("winner with only %d goals", len(r.Goals))
		}
		return
	}

	left, right := 0, 0
	for _, g := range r.Goals {
		switch g {
		case "left":
			left++
		case "right":
			right++
		default:
			t.Fatalf("unexpected goal side %q", g)
		}
	}
	if left != r.Snapshot.Left.Score || right != r.Snapshot.Right.Score {
		t.Errorf("goals %d-%d do not match scores %d-%d",
			left, right, r.Snapshot.Left.Score, r.Snapshot.Right.Score)
	}
}

func TestWriteReport(t *testing.T) {
	r := runSimulation(config.Default().Arena, simOptions{Seed: 1, Ticks: 10, DeltaTime: 1.0 / 60, Movement: pong.MovementDown})

	var buf bytes.Buffer
	if err := writeReport(&buf, r); err != nil {
		t.Fatalf("writeReport: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"seed: 1", "ticks: 10", "movement: Down", "snapshot:", "ball:"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	var decoded simReport
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not valid YAML: %v", err)
	}
	if decoded.Snapshot.Left.Bounds != r.Snapshot.Left.Bounds {
		t.Errorf("left paddle = %+v, expected %+v", decoded.Snapshot.Left.Bounds, r.Snapshot.Left.Bounds)
	}
}
