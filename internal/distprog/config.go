// Public domain.

package distprog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/gaiadist/internal/distsolver"
	"github.com/soniakeys/gaiadist/numeric"
)

type config struct {
	params     distsolver.Params
	headings   bool
	modulus    bool
	position   bool
	repeatable bool
}

func defaultConfig() *config {
	c := &config{
		params:   distsolver.DefaultParams,
		headings: true,
		modulus:  true,
		position: true,
	}
	c.params.Quantiles = append([]float64{}, c.params.Quantiles...)
	return c
}

// readConfig reads the config file.  A missing default config file is
// not an error.
func readConfig(cl *commandLine) *config {
	f, err := os.Open(cl.fixupCP(cl.dc, cfn))
	if err != nil {
		if cl.dc == "" {
			return defaultConfig()
		}
		exit.Log(err)
	}
	defer f.Close()
	c, err := parseConfig(f)
	if err != nil {
		exit.Log(err)
	}
	return c
}

var rxKeyValue = regexp.MustCompile(`^[ \t]*(.*?)[ \t]*=[ \t]*(.+?)[ \t]*$`)

func parseConfig(r io.Reader) (*config, error) {
	c := defaultConfig()
	for lr := bufio.NewReader(r); ; {
		l, isPre, err := lr.ReadLine()
		switch {
		case err == io.EOF:
			return c, nil
		case err != nil:
			return nil, err
		case isPre:
			return nil, errors.New("Unexpected long line in config file.")
		}
		ls := strings.TrimSpace(string(l))
		if ls == "" || ls[0] == '#' {
			continue
		}
		switch ls {
		case "headings":
			c.headings = true
			continue
		case "noheadings":
			c.headings = false
			continue
		case "modulus":
			c.modulus = true
			continue
		case "nomodulus":
			c.modulus = false
			continue
		case "position":
			c.position = true
			continue
		case "noposition":
			c.position = false
			continue
		case "repeatable":
			c.repeatable = true
			continue
		case "random":
			c.repeatable = false
			continue
		}
		ss := rxKeyValue.FindStringSubmatch(ls)
		if len(ss) != 3 {
			return nil, fmt.Errorf("Unrecognized line in config file: %s", ls)
		}
		if err := c.setValue(ss[1], ss[2]); err != nil {
			return nil, fmt.Errorf("%v\nConfig file line: %s", err, ls)
		}
	}
}

func (c *config) setValue(key, val string) error {
	p := &c.params
	switch key {
	case "lscale":
		v, err := cast.ToFloat64E(val)
		if err != nil {
			return err
		}
		if !(v > 0) {
			return errors.New("Length scale must be positive.")
		}
		p.LengthScale = v
	case "errfloor":
		v, err := cast.ToFloat64E(val)
		if err != nil {
			return err
		}
		if !(v >= 0) {
			return errors.New("Parallax error floor must not be negative.")
		}
		p.ErrFloor = v
	case "tol":
		v, err := cast.ToFloat64E(val)
		if err != nil {
			return err
		}
		if !(v > 0 && v < 1) {
			return errors.New("Tolerance must be between 0 and 1.")
		}
		p.Tol = v
	case "draws":
		v, err := cast.ToIntE(val)
		if err != nil {
			return err
		}
		if v < 0 {
			return errors.New("Number of draws must not be negative.")
		}
		p.Draws = v
	case "interp":
		m, err := numeric.ParseInterpolation(val)
		if err != nil {
			return err
		}
		p.Interp = m
	case "quantiles":
		p.Quantiles = p.Quantiles[:0]
		for _, f := range strings.Split(val, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			q, err := cast.ToFloat64E(f)
			if err != nil {
				return err
			}
			if !(q >= 0 && q <= 1) {
				return errors.New("Quantiles must be in the range 0..1.")
			}
			p.Quantiles = append(p.Quantiles, q)
		}
	default:
		return fmt.Errorf("Unrecognized keyword %q.", key)
	}
	return nil
}
