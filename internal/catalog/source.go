// Public domain.

// Package catalog reads catalogues of parallax measurements.
//
// A catalogue is a text file with one source per line, fields separated
// by white space:
//
//	id parallax parallax_error [ra dec]
//
// Parallax and error are in mas.  The optional position is in decimal
// degrees or sexagesimal, hh:mm:ss.s for ra and ±dd:mm:ss for dec.
// Blank lines and lines starting with # are ignored.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"
)

// Source is a single catalogue entry.
type Source struct {
	ID     string
	Plx    float64 // mas
	PlxErr float64 // mas
	HasPos bool
	RA     unit.RA
	Dec    unit.Angle
}

// SourceError describes a catalogue line that could not be parsed.
// It is not fatal for reading the rest of the catalogue.
type SourceError struct {
	Line int
	Msg  string
}

func (e SourceError) Error() string {
	return fmt.Sprintf("catalog line %d: %s", e.Line, e.Msg)
}

// ParseSource parses a single catalogue line.  It returns nil, nil for
// comment and blank lines.
func ParseSource(line string) (*Source, error) {
	f := strings.Fields(line)
	if len(f) == 0 || f[0][0] == '#' {
		return nil, nil
	}
	if len(f) != 3 && len(f) != 5 {
		return nil, fmt.Errorf("%d fields, want 3 or 5", len(f))
	}
	s := &Source{ID: f[0]}
	var err error
	if s.Plx, err = strconv.ParseFloat(f[1], 64); err != nil {
		return nil, fmt.Errorf("invalid parallax (%s)", f[1])
	}
	if s.PlxErr, err = strconv.ParseFloat(f[2], 64); err != nil {
		return nil, fmt.Errorf("invalid parallax error (%s)", f[2])
	}
	if len(f) == 3 {
		return s, nil
	}
	ra, err := parseHMS(f[3])
	if err != nil || ra < 0 || ra >= 360 {
		return nil, fmt.Errorf("invalid RA (%s)", f[3])
	}
	dec, err := parseDMS(f[4])
	if err != nil || dec < -90 || dec > 90 {
		return nil, fmt.Errorf("invalid Dec (%s)", f[4])
	}
	s.HasPos = true
	s.RA = unit.RAFromDeg(ra)
	s.Dec = unit.AngleFromDeg(dec)
	return s, nil
}

// parseHMS parses decimal degrees or h:m:s, returning degrees.
func parseHMS(f string) (float64, error) {
	if !strings.Contains(f, ":") {
		return strconv.ParseFloat(f, 64)
	}
	h, err := parseSexa(f)
	return h * 15, err
}

// parseDMS parses decimal degrees or d:m:s, returning degrees.
func parseDMS(f string) (float64, error) {
	if !strings.Contains(f, ":") {
		return strconv.ParseFloat(f, 64)
	}
	return parseSexa(f)
}

var errSexa = errors.New("invalid sexagesimal value")

func parseSexa(f string) (float64, error) {
	neg := strings.HasPrefix(f, "-")
	p := strings.Split(strings.TrimLeft(f, "+-"), ":")
	if len(p) != 3 {
		return 0, errSexa
	}
	d, err := strconv.Atoi(p[0])
	if err != nil {
		return 0, errSexa
	}
	m, err := strconv.Atoi(p[1])
	if err != nil || m < 0 || m >= 60 {
		return 0, errSexa
	}
	s, err := strconv.ParseFloat(p[2], 64)
	if err != nil || s < 0 || s >= 60 {
		return 0, errSexa
	}
	v := (float64(d*60+m)*60 + s) / 3600
	if neg {
		v = -v
	}
	return v, nil
}

// Splitter returns a function that returns successive sources from r.
//
// The function returns io.EOF at the end of r.  Unparseable lines give a
// SourceError, after which reading may continue.  Other errors are read
// errors and reading should stop.
func Splitter(r io.Reader) func() (*Source, error) {
	br := bufio.NewReader(r)
	n := 0
	return func() (*Source, error) {
		for {
			bLine, isPre, err := br.ReadLine()
			if err != nil {
				return nil, err
			}
			n++
			if isPre {
				return nil, errors.New("catalog: unexpected long line")
			}
			s, err := ParseSource(string(bLine))
			if err != nil {
				return nil, SourceError{n, err.Error()}
			}
			if s != nil {
				return s, nil
			}
		}
	}
}
