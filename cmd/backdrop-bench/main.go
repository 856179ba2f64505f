// Command backdrop-bench renders every effect at every tier off-screen and reports frame cost.
// It exits non-zero when a tier table is not monotonic or a scene's entity count drifts.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/backdrop/effect"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/theme"
)

var (
	frames   = flag.Int("frames", 600, "Frames per effect and tier")
	width    = flag.Int("width", 160, "Viewport width in cells")
	height   = flag.Int("height", 48, "Viewport height in cells")
	parallel = flag.Int("parallel", 1, "Concurrent runs; above 1 frame times include contention")
)

// frameStep is one reference frame of simulated time
const frameStep = time.Second / time.Duration(parameter.ReferenceFPS)

type result struct {
	Effect   string
	Tier     scene.Tier
	Entities int
	Drifted  bool // entity count changed between frames
	Recycled uint64
	Samples  int
	Frames   int
	Elapsed  float64 // scene clock after the run
	Total    time.Duration
}

func (r result) mean() time.Duration {
	if r.Frames == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Frames)
}

func main() {
	flag.Parse()

	results, err := runAll(effect.Names(), *frames, *width, *height, *parallel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backdrop-bench: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EFFECT\tTIER\tENTITIES\tRECYCLED\tSAMPLES\tMEAN FRAME")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%v\n", r.Effect, r.Tier, r.Entities, r.Recycled, r.Samples, r.mean())
	}
	tw.Flush()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("\nTotal Alloc: %d bytes, Mallocs: %d\n", m.TotalAlloc, m.Mallocs)

	if problems := check(results); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, "FAIL:", p)
		}
		os.Exit(1)
	}
}

// runAll benchmarks names x tiers; results keep that order regardless of parallelism
func runAll(names []string, n, w, h, limit int) ([]result, error) {
	pal, err := theme.Builtin(theme.DefaultName)
	if err != nil {
		return nil, err
	}

	tiers := scene.Tiers()
	results := make([]result, len(names)*len(tiers))

	var g errgroup.Group
	g.SetLimit(max(limit, 1))
	for i, name := range names {
		bp, err := effect.Get(name)
		if err != nil {
			return nil, err
		}
		for j, tier := range tiers {
			slot := &results[i*len(tiers)+j]
			g.Go(func() error {
				r, err := bench(bp, theme.Static(pal), tier, n, w, h)
				if err != nil {
					return fmt.Errorf("%s/%s: %w", name, tier, err)
				}
				*slot = r
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// bench steps one scene n frames on a simulated clock at the reference rate
func bench(bp scene.Blueprint, src theme.Source, tier scene.Tier, n, w, h int) (result, error) {
	sc := scene.New(bp, src, tier, scene.WithViewport(w, h))
	defer sc.Teardown()

	rec := render.NewRecorder(w, h)
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	loop := engine.NewLoop(sc, rec, engine.NewPausableClockWith(mock))

	res := result{Effect: bp.Name, Tier: tier, Entities: sc.Count()}
	for range n {
		mock.Advance(frameStep)
		start := time.Now()
		if err := loop.Step(); err != nil {
			return res, err
		}
		res.Total += time.Since(start)
		res.Frames++
		if sc.Count() != res.Entities {
			res.Drifted = true
		}
	}
	res.Elapsed = sc.Elapsed()
	res.Recycled = sc.Recycled()
	res.Samples = rec.Samples()
	return res, nil
}

// check reports drifting scenes and effects whose entity count falls as the tier rises
func check(results []result) []string {
	var problems []string
	last := make(map[string]result)
	for _, r := range results {
		if r.Drifted {
			problems = append(problems, fmt.Sprintf("%s/%s: entity count changed during run", r.Effect, r.Tier))
		}
		if prev, ok := last[r.Effect]; ok && r.Tier > prev.Tier && r.Entities < prev.Entities {
			problems = append(problems, fmt.Sprintf("%s: %s has %d entities, %s has %d",
				r.Effect, r.Tier, r.Entities, prev.Tier, prev.Entities))
		}
		last[r.Effect] = r
	}
	return problems
}
