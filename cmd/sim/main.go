// cmd/sim runs the simulation headless and prints the economy every few
// seconds of game time. Useful for tuning balance sheets.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"cake-defense/internal/app"
	"cake-defense/internal/defs"
)

// placement is one tower of the build order.
type placement struct {
	Kind defs.TowerKind
	X, Y float64
}

// parseLayout reads a build order like "light:300,300;heavy:400,200".
func parseLayout(s string) ([]placement, error) {
	var out []placement
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, pos, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("tower %q: expected kind:x,y", item)
		}
		kind, err := defs.ParseTowerKind(name)
		if err != nil {
			return nil, fmt.Errorf("tower %q: %w", item, err)
		}
		xs, ys, ok := strings.Cut(pos, ",")
		if !ok {
			return nil, fmt.Errorf("tower %q: expected x,y", item)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("tower %q: %w", item, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("tower %q: %w", item, err)
		}
		out = append(out, placement{Kind: kind, X: x, Y: y})
	}
	return out, nil
}

// build places the next towers of the order that are affordable now and
// returns what is left. A placement refused for any reason other than money
// is dropped.
func build(g *app.Game, order []placement) []placement {
	for len(order) > 0 {
		p := order[0]
		if _, r := g.PlaceTower(p.X, p.Y, p.Kind); !r.OK() {
			if r == app.RejectInsufficientFunds {
				return order
			}
			log.Printf("Sim: skipping %v at (%.0f, %.0f): %s", p.Kind, p.X, p.Y, r)
		}
		order = order[1:]
	}
	return order
}

// run plays up to ticks ticks, reporting every `every` ticks, and returns
// the final stats.
func run(g *app.Game, order []placement, ticks, every int, w io.Writer) app.Stats {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "tick\twave\tcake\tants\tkilled\ttowers\tmoney\tscore\tdifficulty\t")
	report := func(s app.Stats) {
		fmt.Fprintf(tw, "%d\t%d\t%d/%d\t%d\t%d\t%d\t%d\t%d\t%.2f\t\n",
			s.Tick, s.Wave, s.RemainingSlices, s.TotalSlices, s.LiveAnts, s.AntsKilled, s.Towers, s.Money, s.Score, s.Difficulty)
	}

	order = build(g, order)
	for i := 1; i <= ticks; i++ {
		if !g.Step() {
			break
		}
		if every > 0 && i%every == 0 {
			order = build(g, order)
			report(g.Stats())
		}
	}
	s := g.Stats()
	report(s)
	tw.Flush()
	return s
}

func main() {
	seed := flag.Int64("seed", 1, "simulation seed")
	balancePath := flag.String("balance", "", "JSON balance sheet overriding the defaults")
	ticks := flag.Int("ticks", 60*60*10, "ticks to simulate (60 per second)")
	every := flag.Int("every", 600, "report interval in ticks")
	layout := flag.String("towers", "light:200,240;light:200,360;rapid:380,250;heavy:520,350;area:600,240",
		"build order, kind:x,y separated by ';'")
	verbose := flag.Bool("v", false, "keep the game log on stderr while running")
	flag.Parse()

	order, err := parseLayout(*layout)
	if err != nil {
		log.Fatal(err)
	}
	balance := defs.DefaultBalance()
	if *balancePath != "" {
		if balance, err = defs.LoadBalance(*balancePath); err != nil {
			log.Fatal(err)
		}
	}
	g, err := app.NewGame(balance, *seed)
	if err != nil {
		log.Fatal(err)
	}

	// дальше лог мешает таблице
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	s := run(g, order, *ticks, *every, os.Stdout)
	if s.GameOverReason != "" {
		fmt.Printf("%s Survived %d waves, score %d\n", s.GameOverReason, s.Wave, s.Score)
	}
}
