package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/soniakeys/gaiadist/gaia"
	"github.com/soniakeys/gaiadist/internal/catalog"
)

const parentImport = "github.com/soniakeys/gaiadist"
const versionString = "epochprop version 0.1"
const copyrightString = "Public domain."

var years float64
var ignored int

func main() {
	// parse command line
	flag.Usage = func() {
		os.Stderr.WriteString("Usage: epochprop [options] <file>\n")
		flag.PrintDefaults()
		os.Stderr.WriteString(`
For full documentation:
   go doc ` + parentImport + `/epochprop
`)
	}
	flag.Float64Var(&years, "t", 0, "years to propagate, negative for the past")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	f, err := catalog.Open(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()
	w := bufio.NewWriter(os.Stdout)
	if err := propagateAll(f, w, years); err != nil {
		log.Fatalln(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalln(err)
	}
	if ignored != 0 {
		log.Println("lines ignored:", ignored)
	}
}

func propagateAll(r io.Reader, w io.Writer, t float64) error {
	br := bufio.NewReader(r)
	for {
		l, isPre, err := br.ReadLine()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		case isPre:
			return fmt.Errorf("unexpected long line")
		}
		out, ok := propagate(string(l), t)
		if !ok {
			ignored++
			continue
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
}

// propagate returns the line for the new epoch, "" for a comment or blank
// line, or ok false for a line that cannot be parsed.
func propagate(line string, t float64) (out string, ok bool) {
	f := strings.Fields(line)
	if len(f) == 0 || f[0][0] == '#' {
		return "", true
	}
	if len(f) != 6 && len(f) != 7 {
		return "", false
	}
	a := [6]float64{5: math.NaN()}
	for i, s := range f[1:] {
		v, err := cast.ToFloat64E(s)
		if err != nil {
			return "", false
		}
		a[i] = v
	}
	p := gaia.EpochProp(t, a)
	return fmt.Sprintf("%-20s %13.9f %13.9f %9.4f %10.4f %10.4f %8.3f",
		f[0], p[gaia.RA], p[gaia.Dec], p[gaia.Plx],
		p[gaia.PMRA], p[gaia.PMDec], p[gaia.RV]), true
}
