package report

import (
	"fmt"
	"strconv"
	"strings"
)

// ResultLine is one parsed classification entry.
type ResultLine struct {
	Rank   int
	Driver string
	Team   string
}

// ParseResultLine parses "P<rank>: <driver> (<team>)". The format
// carries no escaping, so a driver or team name containing the
// delimiters cannot be represented.
func ParseResultLine(line string) (ResultLine, error) {
	rankPart, rest, found := strings.Cut(line, ":")
	if !found {
		return ResultLine{}, fmt.Errorf("%w: missing rank separator in %q", ErrMalformedResult, line)
	}

	rankPart = strings.TrimSpace(rankPart)
	if !strings.HasPrefix(rankPart, "P") {
		return ResultLine{}, fmt.Errorf("%w: rank must look like P<n> in %q", ErrMalformedResult, line)
	}

	rank, err := strconv.Atoi(strings.TrimPrefix(rankPart, "P"))
	if err != nil || rank < 1 {
		return ResultLine{}, fmt.Errorf("%w: invalid rank %q in %q", ErrMalformedResult, rankPart, line)
	}

	driverPart, teamPart, found := strings.Cut(rest, "(")
	if !found {
		return ResultLine{}, fmt.Errorf("%w: missing team in %q", ErrMalformedResult, line)
	}

	teamName, _, found := strings.Cut(teamPart, ")")
	if !found {
		return ResultLine{}, fmt.Errorf("%w: unterminated team in %q", ErrMalformedResult, line)
	}

	driverName := strings.TrimSpace(driverPart)
	teamName = strings.TrimSpace(teamName)
	if driverName == "" || teamName == "" {
		return ResultLine{}, fmt.Errorf("%w: empty driver or team in %q", ErrMalformedResult, line)
	}

	return ResultLine{Rank: rank, Driver: driverName, Team: teamName}, nil
}
