package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pitwallhq/pitwall/internal/domain/strategy"
	"github.com/pitwallhq/pitwall/internal/domain/team"
)

func TestGenerate_NoResult(t *testing.T) {
	race := strategy.Race{ID: 1, CircuitName: "Monza", Date: "2026-09-06", Weather: "Sunny"}

	out, err := Generate(race, []team.Team{{ID: 1, Name: "Ferrari"}}, time.Now())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if !strings.Contains(out.Summary, "No final result has been recorded yet") {
		t.Fatalf("unexpected summary: %q", out.Summary)
	}
	if len(out.KeyIncidents) != 1 || out.KeyIncidents[0] != incidentNoData {
		t.Fatalf("unexpected incidents: %v", out.KeyIncidents)
	}
	if out.TeamAnalysis == nil || len(out.TeamAnalysis) != 0 {
		t.Fatalf("expected empty non-nil analysis map, got %v", out.TeamAnalysis)
	}
}

func TestGenerate_WinnerAndWetWeather(t *testing.T) {
	race := strategy.Race{
		ID:          7,
		CircuitName: "Spa-Francorchamps",
		Date:        "2026-07-26",
		Weather:     "Heavy Rain",
		Result: []string{
			"P1: Max Verstappen (Red Bull)",
			"P2: Charles Leclerc (Ferrari)",
			"P3: Lewis Hamilton (Ferrari)",
		},
	}
	teams := []team.Team{
		{ID: 1, Name: "Ferrari"},
		{ID: 2, Name: "Red Bull"},
		{ID: 3, Name: "Williams"},
	}

	out, err := Generate(race, teams, time.Now())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	want := "Race Report: Max Verstappen from team Red Bull won the race at Spa-Francorchamps on 2026-07-26. Weather: Heavy Rain."
	if out.Summary != want {
		t.Fatalf("unexpected summary:\n got %q\nwant %q", out.Summary, want)
	}

	if len(out.KeyIncidents) != 2 {
		t.Fatalf("expected clean start plus wet track, got %v", out.KeyIncidents)
	}
	if out.KeyIncidents[0] != incidentCleanStart || out.KeyIncidents[1] != incidentWetTrack {
		t.Fatalf("unexpected incident order: %v", out.KeyIncidents)
	}

	ferrari := out.TeamAnalysis["Ferrari"]
	if !strings.Contains(ferrari, "Best result P2 achieved by Charles Leclerc") {
		t.Fatalf("unexpected Ferrari analysis: %q", ferrari)
	}
	williams := out.TeamAnalysis["Williams"]
	if !strings.Contains(williams, "not present in the final classification") {
		t.Fatalf("unexpected Williams analysis: %q", williams)
	}
}

func TestGenerate_DryWeatherSingleIncident(t *testing.T) {
	race := strategy.Race{
		ID:          2,
		CircuitName: "Suzuka",
		Date:        "2026-04-05",
		Weather:     "Clear",
		Result:      []string{"P1: Oscar Piastri (McLaren)"},
	}

	out, err := Generate(race, nil, time.Now())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if len(out.KeyIncidents) != 1 || out.KeyIncidents[0] != incidentCleanStart {
		t.Fatalf("unexpected incidents: %v", out.KeyIncidents)
	}
}

func TestGenerate_MalformedWinnerLine(t *testing.T) {
	race := strategy.Race{
		ID:          3,
		CircuitName: "Monaco",
		Date:        "2026-05-24",
		Weather:     "Sunny",
		Result:      []string{"garbage"},
	}

	if _, err := Generate(race, nil, time.Now()); !errors.Is(err, ErrMalformedResult) {
		t.Fatalf("expected ErrMalformedResult, got %v", err)
	}
}

func TestGenerate_MalformedTeamLine(t *testing.T) {
	race := strategy.Race{
		ID:          4,
		CircuitName: "Silverstone",
		Date:        "2026-07-05",
		Weather:     "Cloudy",
		Result: []string{
			"P1: Lando Norris (McLaren)",
			"P2 broken line (Ferrari)",
		},
	}

	_, err := Generate(race, []team.Team{{ID: 1, Name: "Ferrari"}}, time.Now())
	if !errors.Is(err, ErrMalformedResult) {
		t.Fatalf("expected ErrMalformedResult, got %v", err)
	}
}
