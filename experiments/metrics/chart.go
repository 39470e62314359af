package metrics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Summary aggregates the games of one planner config.
type Summary struct {
	Label         string
	Games         int
	Wins          int
	Losses        int
	Unfinished    int
	MeanMoves     float64
	MeanOutbreaks float64
	MeanCured     float64
}

func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Summarize groups game records by planner, in config order.
func Summarize(configs []PlannerConfig, records []GameRecord) []Summary {
	summaries := make([]Summary, len(configs))
	index := make(map[int]int, len(configs))
	for i, config := range configs {
		summaries[i].Label = config.Label
		index[config.ID] = i
	}

	for _, record := range records {
		i, ok := index[record.PlannerID]
		if !ok {
			continue
		}
		s := &summaries[i]
		s.Games++
		switch {
		case record.Won():
			s.Wins++
		case record.Result == "lost":
			s.Losses++
		default:
			s.Unfinished++
		}
		s.MeanMoves += float64(record.TotalMoves)
		s.MeanOutbreaks += float64(record.Outbreaks)
		s.MeanCured += float64(record.Cured)
	}

	for i := range summaries {
		if n := float64(summaries[i].Games); n > 0 {
			summaries[i].MeanMoves /= n
			summaries[i].MeanOutbreaks /= n
			summaries[i].MeanCured /= n
		}
	}
	return summaries
}

// RenderChart draws game results and mean board outcomes per planner.
func RenderChart(w io.Writer, summaries []Summary) error {
	labels := make([]string, 0, len(summaries))
	wins := make([]opts.BarData, 0, len(summaries))
	losses := make([]opts.BarData, 0, len(summaries))
	unfinished := make([]opts.BarData, 0, len(summaries))
	outbreaks := make([]opts.BarData, 0, len(summaries))
	cured := make([]opts.BarData, 0, len(summaries))
	for _, s := range summaries {
		labels = append(labels, s.Label)
		wins = append(wins, opts.BarData{Value: s.Wins})
		losses = append(losses, opts.BarData{Value: s.Losses})
		unfinished = append(unfinished, opts.BarData{Value: s.Unfinished})
		outbreaks = append(outbreaks, opts.BarData{Value: s.MeanOutbreaks})
		cured = append(cured, opts.BarData{Value: s.MeanCured})
	}

	results := charts.NewBar()
	results.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Game results"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	results.SetXAxis(labels).
		AddSeries("won", wins).
		AddSeries("lost", losses).
		AddSeries("unfinished", unfinished).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "results"}))

	board := charts.NewBar()
	board.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Mean outbreaks and cures"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	board.SetXAxis(labels).
		AddSeries("outbreaks", outbreaks).
		AddSeries("cured", cured)

	page := components.NewPage()
	page.AddCharts(results, board)
	return page.Render(w)
}

func (w *Writer) WriteChart(summaries []Summary) error {
	path := filepath.Join(w.baseDir, "summary.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := RenderChart(f, summaries); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
