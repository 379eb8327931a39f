// Command splitcalc prints the resolved pane geometry for a range of
// extents, for eyeballing constraint and overflow behavior without
// starting the TUI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/llehouerou/sash/internal/split/constraint"
)

func main() {
	ratio := flag.Float64("ratio", 0.5, "desired ratio in [0,1]")
	minRatio := flag.Float64("min-ratio", 0, "lower ratio bound")
	maxRatio := flag.Float64("max-ratio", 1, "upper ratio bound")
	minStart := flag.Float64("min-start", 10, "minimum start pane cells")
	minEnd := flag.Float64("min-end", 10, "minimum end pane cells")
	policy := flag.String("policy", "favor-start", "overflow policy: favor-start, favor-end, proportional")
	thickness := flag.Float64("thickness", 1, "divider thickness in cells")
	from := flag.Int("from", 10, "smallest total extent to print")
	to := flag.Int("to", 120, "largest total extent to print")
	step := flag.Int("step", 10, "extent increment")

	flag.Parse()

	p, err := constraint.ParsePolicy(*policy)
	if err != nil {
		log.Fatalf("bad policy: %v", err)
	}

	cfg := constraint.Config{
		MinRatio: *minRatio,
		MaxRatio: *maxRatio,
		MinStart: *minStart,
		MinEnd:   *minEnd,
		Policy:   p,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("bad constraints: %v", err)
	}
	if *step <= 0 || *from > *to {
		log.Fatalf("bad extent range %d..%d step %d", *from, *to, *step)
	}

	fmt.Printf("ratio=%.3f bounds=[%.2f,%.2f] min=(%.0f,%.0f) policy=%s thickness=%.0f\n\n",
		*ratio, cfg.MinRatio, cfg.MaxRatio, cfg.MinStart, cfg.MinEnd, cfg.Policy, *thickness)
	fmt.Fprintf(os.Stdout, "%7s %9s %7s %7s %8s\n", "total", "available", "first", "second", "applied")

	for total := *from; total <= *to; total += *step {
		avail := constraint.Available(float64(total), *thickness)
		lo, hi, cramped := constraint.Bounds(cfg, avail)
		s := constraint.ResolveCells(*ratio, avail, cfg)

		note := ""
		if cramped {
			note = "  cramped"
		} else if s.Ratio != *ratio {
			note = fmt.Sprintf("  clamped to [%.3f,%.3f]", lo, hi)
		}
		fmt.Printf("%7d %9.0f %7.0f %7.0f %8.3f%s\n",
			total, avail, s.First, s.Second, s.Ratio, note)
	}
}
