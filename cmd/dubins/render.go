package main

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"honnef.co/go/dubins"
	"honnef.co/go/dubins/geom"
)

// view is everything that gets drawn for one case.
type view struct {
	title      string
	start, end dubins.Pose
	candidates []dubins.Path
	best       dubins.Path
	found      bool
}

// tracePoints returns points along p no further apart than step, for drawing.
func tracePoints(p dubins.Path, step float64) []geom.Point {
	pts := []geom.Point{p.StartPoint()}
	for _, seg := range p.Segments() {
		n := max(1, int(math.Ceil(seg.Length()/step)))
		for i := 1; i <= n; i++ {
			pts = append(pts, seg.Eval(float64(i)/float64(n)))
		}
	}
	return pts
}

// square returns a square region containing all of v's geometry, so that
// circles are not drawn as ellipses.
func (v view) square() (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	add := func(pt geom.Point) {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	add(v.start.Position)
	add(v.end.Position)
	for _, c := range v.candidates {
		for _, pt := range tracePoints(c, v.step()) {
			add(pt)
		}
	}
	side := max(maxX-minX, maxY-minY, 1) * 1.1
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	return cx - side/2, cx + side/2, cy - side/2, cy + side/2
}

func (v view) step() float64 {
	d := v.start.Position.Distance(v.end.Position)
	return max(d/200, 1e-3)
}

func (v view) seriesName(i int, p dubins.Path) string {
	name := fmt.Sprintf("%s (%.3f)", p.Word, p.Length())
	if v.found && i == v.bestIndex() {
		name += " *"
	}
	return name
}

func (v view) bestIndex() int {
	for i, c := range v.candidates {
		if c.Word == v.best.Word {
			return i
		}
	}
	return -1
}

// savePlot draws the candidates of v and saves the plot to file. The image
// format is chosen by the file's extension.
func savePlot(file string, v view) error {
	p := plot.New()
	p.Title.Text = v.title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = v.square()
	p.Add(plotter.NewGrid())

	for i, c := range v.candidates {
		pts := tracePoints(c, v.step())
		xys := make(plotter.XYs, len(pts))
		for j, pt := range pts {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plot %s: %w", c.Word, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		if v.found && i == v.bestIndex() {
			line.Width = vg.Points(3)
		}
		p.Add(line)
		p.Legend.Add(v.seriesName(i, c), line)
	}

	poses := plotter.XYs{
		{X: v.start.Position.X, Y: v.start.Position.Y},
		{X: v.end.Position.X, Y: v.end.Position.Y},
	}
	scatter, err := plotter.NewScatter(poses)
	if err != nil {
		return fmt.Errorf("plot poses: %w", err)
	}
	scatter.GlyphStyle.Color = color.Black
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(8*vg.Inch, 8*vg.Inch, file); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// writeChart renders the candidates of v as an interactive HTML chart.
func writeChart(w io.Writer, v view) error {
	minX, maxX, minY, maxY := v.square()

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Dubins paths", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: v.title, Subtitle: fmt.Sprintf("start=%s end=%s candidates=%d", v.start, v.end, len(v.candidates))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: minX, Max: maxX, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: minY, Max: maxY, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)

	for i, c := range v.candidates {
		pts := tracePoints(c, v.step())
		data := make([]opts.ScatterData, 0, len(pts))
		for _, pt := range pts {
			data = append(data, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
		}
		style := opts.ScatterChart{SymbolSize: 2}
		if v.found && i == v.bestIndex() {
			style = opts.ScatterChart{SymbolSize: 5}
		}
		scatter.AddSeries(v.seriesName(i, c), data, charts.WithScatterChartOpts(style))
	}

	poses := []opts.ScatterData{
		{Value: []interface{}{v.start.Position.X, v.start.Position.Y}},
		{Value: []interface{}{v.end.Position.X, v.end.Position.Y}},
	}
	scatter.AddSeries("poses", poses, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
