package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pitwallhq/pitwall/internal/domain/strategy"
	"github.com/pitwallhq/pitwall/internal/domain/team"
)

// Incident strings are fixed so reports stay comparable across races.
const (
	incidentNoData     = "No incidents recorded (race unfinished or data missing)."
	incidentCleanStart = "Clean start with no major incidents."
	incidentWetTrack   = "Wet track conditions early in the race affected tyre strategy."
)

// Generate derives a report from a race and the known teams. It is
// deterministic: the only non-input value is the caller-supplied
// generation timestamp, and the report ID is assigned by the store.
// A malformed result line anywhere the generator must parse aborts
// with ErrMalformedResult.
func Generate(race strategy.Race, teams []team.Team, generatedAt time.Time) (Report, error) {
	out := Report{
		RaceID:       race.ID,
		TeamAnalysis: make(map[string]string, len(teams)),
		GeneratedAt:  generatedAt,
	}

	if len(race.Result) == 0 {
		out.Summary = fmt.Sprintf(
			"No final result has been recorded yet for the race at %s (%s).",
			race.CircuitName, race.Date,
		)
		out.KeyIncidents = []string{incidentNoData}
		return out, nil
	}

	winner, err := ParseResultLine(race.Result[0])
	if err != nil {
		return Report{}, err
	}

	out.Summary = fmt.Sprintf(
		"Race Report: %s from team %s won the race at %s on %s. Weather: %s.",
		winner.Driver, winner.Team, race.CircuitName, race.Date, race.Weather,
	)

	out.KeyIncidents = []string{incidentCleanStart}
	if strings.Contains(race.Weather, "Rain") || strings.Contains(race.Weather, "Wet") {
		out.KeyIncidents = append(out.KeyIncidents, incidentWetTrack)
	}

	// Later teams with the same name overwrite earlier ones; the
	// analysis map is keyed by name, not ID.
	for _, item := range teams {
		analysis, err := analyzeTeam(item.Name, race.Result)
		if err != nil {
			return Report{}, err
		}
		out.TeamAnalysis[item.Name] = analysis
	}

	return out, nil
}

// analyzeTeam finds the team's best finish: the lowest-index result
// line containing the literal "(<name>)" marker. Index 0 is P1.
func analyzeTeam(name string, result []string) (string, error) {
	marker := "(" + name + ")"
	for idx, line := range result {
		if !strings.Contains(line, marker) {
			continue
		}

		best, err := ParseResultLine(line)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf(
			"Team %s delivered a solid performance. Best result P%d achieved by %s.",
			name, idx+1, best.Driver,
		), nil
	}

	return fmt.Sprintf(
		"Team %s is not present in the final classification (DNF or outside the points).",
		name,
	), nil
}
