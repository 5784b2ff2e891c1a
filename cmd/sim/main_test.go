package main

import (
	"bytes"
	"strings"
	"testing"

	"cake-defense/internal/app"
	"cake-defense/internal/defs"
)

func TestParseLayout(t *testing.T) {
	got, err := parseLayout(" light:300,300; splash: 400 , 200 ;")
	if err != nil {
		t.Fatalf("parseLayout: %v", err)
	}
	want := []placement{{defs.TowerLight, 300, 300}, {defs.TowerArea, 400, 200}}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Item %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	for _, bad := range []string{"light", "laser:1,2", "light:1", "light:x,2", "light:1,y"} {
		if _, err := parseLayout(bad); err == nil {
			t.Errorf("Expected an error for %q", bad)
		}
	}
}

func TestBuildWaitsForMoney(t *testing.T) {
	g, err := app.NewGame(nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	order := []placement{
		{defs.TowerLight, 300, 300},
		{defs.TowerLight, 55, 300}, // у муравейника, пропускается
		{defs.TowerHeavy, 400, 100},
	}
	left := build(g, order)
	if len(left) != 1 || left[0].Kind != defs.TowerHeavy {
		t.Fatalf("Expected the heavy tower to wait, got %v", left)
	}
	if g.Stats().Towers != 1 || g.Stats().Money != 65 {
		t.Errorf("Expected one tower and 65 money, got %+v", g.Stats())
	}
}

func TestRunReports(t *testing.T) {
	g, err := app.NewGame(nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	s := run(g, nil, 1200, 600, &out)
	if s.Tick != 1200 {
		t.Errorf("Expected 1200 ticks, got %d", s.Tick)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected a header and three reports, got %q", out.String())
	}
	if !strings.Contains(lines[0], "difficulty") || !strings.Contains(lines[1], "600") {
		t.Errorf("Unexpected report %q", out.String())
	}
}
