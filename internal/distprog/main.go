// Public domain.

// Package distprog implements the gaiadist command.
package distprog

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/gaiadist/internal/catalog"
	"github.com/soniakeys/gaiadist/internal/distsolver"
)

const versionString = "gaiadist version 0.1 Go source."
const copyrightString = "Public domain."

// config file default name
const cfn = "gaiadist.config"

func Main() {
	defer exit.Handler()

	// setup terminates through exit.Log on any error
	cl := parseCommandLine()
	if cl.v {
		os.Exit(0)
	}
	cfg := readConfig(cl)

	solver := distsolver.New(cfg.params)

	cat, err := catalog.Open(cl.fnCat)
	if err != nil {
		exit.Log(err)
	}
	defer cat.Close()

	// splitter runs as its own goroutine feeding srcChIn with catalogue
	// sources.  A read error goes to errCh and ends splitting.
	srcChIn := make(chan *catalog.Source)
	errCh := make(chan error)
	go splitter(cat, srcChIn, errCh)

	// prCh keeps processed results in submission order.  it is buffered
	// so that a fast worker can drop off a result without waiting for
	// workers ahead of it.  the size must be at least maxWorkers.
	maxWorkers := runtime.GOMAXPROCS(0)
	prCh := make(chan chan string, maxWorkers*2)
	srcChSeq := make(chan *srcSeq)

	// dispatcher.  for each source, attach a return channel that works
	// like a ticket for picking up the result, send the source to a
	// worker and drop the ticket in the queue for printing.
	go func() {
		for s := range srcChIn {
			rch := make(chan string, 1)
			srcChSeq <- &srcSeq{s, rch}
			prCh <- rch
		}
		close(prCh)
	}()

	// start workers as the dispatcher calls for them, up to maxWorkers.
	go func() {
		for n := 0; n < maxWorkers; n++ {
			s, ok := <-srcChSeq
			if !ok {
				return
			}
			go solve(solver, s, srcChSeq, cfg)
		}
	}()

	// headings delayed until now to avoid printing headings only to
	// terminate with an error message if initialization fails.
	printHeadings(cfg)

	for {
		select {
		case err := <-errCh:
			exit.Log(err)
		case rch, ok := <-prCh:
			if !ok {
				return // normal return
			}
			select {
			case err := <-errCh:
				exit.Log(err)
			case r := <-rch:
				fmt.Println(r)
			}
		}
	}
}

type srcSeq struct {
	s   *catalog.Source
	rch chan string
}

// parse errors are dropped without notification.
func splitter(r io.Reader, srcCh chan *catalog.Source, errCh chan error) {
	for next := catalog.Splitter(r); ; {
		s, err := next()
		if err == nil {
			srcCh <- s
			continue
		}
		if err == io.EOF {
			break
		}
		if _, ok := err.(catalog.SourceError); ok {
			continue
		}
		errCh <- err
		break
	}
	close(srcCh)
}

// worker process, solves sources.  the first source to solve is passed
// in s, additional sources are received on srcCh.
func solve(solver *distsolver.Solver, s *srcSeq, srcCh chan *srcSeq,
	cfg *config) {
	rnd := xrand.New(&xrand.PCGSource{})
	if !cfg.repeatable {
		rnd.Seed(uint64(time.Now().UnixNano()))
	}
	// runs until the program shuts down.
	for ; ; s = <-srcCh {
		if cfg.repeatable {
			rnd.Seed(3)
		}
		r := solver.Solve(s.s, rnd)
		if distsolver.ErrDepth(r.Err) {
			log.Printf("%s: %v", s.s.ID, r.Err)
		}
		s.rch <- formatResult(s.s, &r, cfg)
	}
}

type commandLine struct {
	dc    string // config file
	dp    string // default path
	fnCat string // catalogue
	v     bool   // -v option
}

func parseCommandLine() *commandLine {
	var cl commandLine
	if wd, err := os.Getwd(); err == nil {
		cl.dp = wd
	}
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.dc, "c", "", "")
	flag.StringVar(&cl.dp, "p", cl.dp, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: gaiadist [options] <catalogue>   estimate distances for sources in file
       gaiadist [options] -             estimate distances for sources from stdin
       gaiadist -h                      display help and quick reference
       gaiadist -v                      display version and copyright

Options:
       -c <config-file>
       -p <path>

Default:
       -p=` + cl.dp + "\n")
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		cl.v = true
	case flag.NArg() != 1:
		flag.Usage()
		os.Exit(1)
	}
	cl.fnCat = flag.Arg(0)
	return &cl
}

func (cl *commandLine) fixupCP(fnSpec, fnDefault string) string {
	if fnSpec > "" {
		return fnSpec
	}
	return filepath.Join(cl.dp, fnDefault)
}

func printHelp() {
	fmt.Println(`
Gaiadist estimates distances from parallaxes using the Exponentially
Decreasing Space Density prior.  Input is a catalogue with lines of
   id parallax parallax_error [ra dec]
with parallaxes in mas and positions in degrees or sexagesimal.
Catalogues may be gzip, zstd, or lz4 compressed.  Output is the mode
and quantiles of the distance posterior, in parsec.

Config file keywords:
   headings
   noheadings
   modulus
   nomodulus
   position
   noposition
   repeatable
   random
   lscale=<pc>
   errfloor=<mas>
   tol=<cdf tolerance>
   quantiles=<q>[,<q>...]
   draws=<n>
   interp=linear|quadratic|spline

For full documentation:
   go doc github.com/soniakeys/gaiadist`)
}
