// Public domain.

package distprog

import (
	"fmt"
	"math"
	"strings"

	sexa "github.com/soniakeys/sexagesimal"

	"github.com/soniakeys/gaiadist/internal/catalog"
	"github.com/soniakeys/gaiadist/internal/distsolver"
)

// column width of numeric fields
const w = 9

func printHeadings(cfg *config) {
	if !cfg.headings {
		return
	}
	fmt.Println(versionString)
	fmt.Print(headings(cfg))
}

func headings(cfg *config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %*s %*s %*s", "ID", w, "Plx", w, "PlxErr", w, "Mode")
	for _, q := range cfg.params.Quantiles {
		fmt.Fprintf(&b, " %*s", w, fmt.Sprintf("Q%.4g", q*100))
	}
	if cfg.modulus {
		fmt.Fprintf(&b, " %*s", w, "DM")
	}
	if cfg.params.Draws > 0 {
		fmt.Fprintf(&b, " %*s %*s", w, "MCmean", w, "MCsd")
	}
	if cfg.position {
		b.WriteString("  Position")
	}
	b.WriteByte('\n')
	return b.String()
}

// num formats a numeric field, or stars if it could not be computed.
func num(b *strings.Builder, v float64, prec int) {
	if rs := fmt.Sprintf(" %*.*f", w, prec, v); !math.IsNaN(v) &&
		!math.IsInf(v, 0) && len(rs) == w+1 {
		b.WriteString(rs)
		return
	}
	b.WriteString(" " + strings.Repeat("*", w))
}

func formatResult(s *catalog.Source, r *distsolver.Result, cfg *config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s", s.ID)
	num(&b, s.Plx, 4)
	num(&b, r.PlxErr, 4)
	num(&b, r.Mode, 2)
	for _, q := range r.Quantiles {
		num(&b, q, 2)
	}
	if cfg.modulus {
		num(&b, r.Modulus, 3)
	}
	if cfg.params.Draws > 0 {
		num(&b, r.MeanMC, 2)
		num(&b, r.SdMC, 2)
	}
	if cfg.position && s.HasPos {
		fmt.Fprintf(&b, "  %.2s %.1s", sexa.FmtRA(s.RA), sexa.FmtAngle(s.Dec))
	}
	return b.String()
}
