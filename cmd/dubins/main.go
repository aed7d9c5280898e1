// Command dubins computes shortest paths between poses for vehicles with a
// minimum turning radius.
//
// A single request is given with flags:
//
//	dubins -from 0,0,0 -to 10,5,90 -radius 2
//
// Poses are written as x,y,heading with the heading in degrees. A batch of
// requests can be read from a JSON scenario file with -scenario instead.
// Results are written to stdout as JSON. With -plot and -chart the candidate
// paths are additionally drawn to an image (PNG, SVG, or PDF, by extension)
// or an interactive HTML page.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"honnef.co/go/dubins"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "dubins: %v\n", err)
		os.Exit(1)
	}
}

type pathResult struct {
	Word   string  `json:"word"`
	Kind   string  `json:"kind"`
	Length float64 `json:"length"`
	SVG    string  `json:"svg,omitempty"`
}

type caseResult struct {
	Name       string       `json:"name,omitempty"`
	Radius     float64      `json:"radius"`
	Found      bool         `json:"found"`
	Path       *pathResult  `json:"path,omitempty"`
	Candidates []pathResult `json:"candidates,omitempty"`
}

func newPathResult(p dubins.Path, svg bool) pathResult {
	r := pathResult{
		Word:   p.Word.String(),
		Kind:   p.Kind().String(),
		Length: p.Length(),
	}
	if svg {
		r.SVG = p.SVG(1e-3)
	}
	return r
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dubins", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		from     = fs.String("from", "", "start pose as x,y,heading (degrees)")
		to       = fs.String("to", "", "end pose as x,y,heading (degrees)")
		radius   = fs.Float64("radius", 1, "minimum turning radius")
		scenario = fs.String("scenario", "", "JSON scenario file with a batch of cases")
		all      = fs.Bool("all", false, "include every candidate in the output")
		svg      = fs.Bool("svg", false, "include SVG path data in the output")
		plotFile = fs.String("plot", "", "draw candidates to this image file (.png, .svg, .pdf)")
		chart    = fs.String("chart", "", "draw candidates to this HTML file")
		verbose  = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var sc *Scenario
	switch {
	case *scenario != "":
		if *from != "" || *to != "" {
			return errors.New("-scenario cannot be combined with -from and -to")
		}
		var err error
		sc, err = LoadScenario(*scenario)
		if err != nil {
			return err
		}
		logger.Debug("loaded scenario", "file", *scenario, "cases", len(sc.Cases))
	case *from != "" && *to != "":
		start, err := parsePoseSpec(*from)
		if err != nil {
			return fmt.Errorf("-from: %w", err)
		}
		end, err := parsePoseSpec(*to)
		if err != nil {
			return fmt.Errorf("-to: %w", err)
		}
		sc = &Scenario{Radius: *radius, Cases: []Case{{Start: start, End: end}}}
		if err := sc.Validate(); err != nil {
			return err
		}
	default:
		fs.Usage()
		return errors.New("either -scenario or both -from and -to are required")
	}

	multi := len(sc.Cases) > 1
	results := make([]caseResult, 0, len(sc.Cases))
	for i, c := range sc.Cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case-%d", i+1)
		}
		r := sc.RadiusFor(c)
		planner, err := dubins.NewPlanner(r, dubins.WithLogger(logger.With("case", name)))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		start, end := c.Start.Pose(), c.End.Pose()
		candidates, err := planner.Candidates(start, end)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		best, found := dubins.ShortestPath(candidates)

		res := caseResult{Name: c.Name, Radius: r, Found: found}
		if found {
			pr := newPathResult(best, *svg)
			res.Path = &pr
		} else {
			logger.Info("no path found", "case", name)
		}
		if *all {
			for _, p := range candidates {
				res.Candidates = append(res.Candidates, newPathResult(p, *svg))
			}
		}
		results = append(results, res)

		v := view{
			title:      fmt.Sprintf("%s (r=%g)", name, r),
			start:      start,
			end:        end,
			candidates: candidates,
			best:       best,
			found:      found,
		}
		if *plotFile != "" {
			file := outputName(*plotFile, name, multi)
			if err := savePlot(file, v); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Debug("wrote plot", "file", file)
		}
		if *chart != "" {
			file := outputName(*chart, name, multi)
			if err := saveChart(file, v); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Debug("wrote chart", "file", file)
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if *scenario == "" {
		return enc.Encode(results[0])
	}
	return enc.Encode(results)
}

func saveChart(file string, v view) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := writeChart(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// outputName returns the file to write case name to. With several cases,
// the name is inserted before the extension.
func outputName(file, name string, multi bool) string {
	if !multi {
		return file
	}
	ext := filepath.Ext(file)
	return strings.TrimSuffix(file, ext) + "-" + sanitize(name) + ext
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
