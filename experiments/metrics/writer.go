package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type PlannerConfig struct {
	ID          int
	Label       string
	Kind        string
	Iterations  int
	Exploration float64
	Cutoff      int
	Rollout     string
	Depth       int
}

type GameRecord struct {
	Index     int
	PlannerID int // PlannerConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game uuid.UUID // GameMetric.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

func (w *Writer) WritePlannerConfigs(configs []PlannerConfig) error {
	header := []string{"id", "label", "kind", "iterations", "exploration", "cutoff", "rollout", "depth"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Label,
			config.Kind,
			strconv.Itoa(config.Iterations),
			strconv.FormatFloat(config.Exploration, 'g', -1, 64),
			strconv.Itoa(config.Cutoff),
			config.Rollout,
			strconv.Itoa(config.Depth),
		})
	}
	return w.writeCSV("planner_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"index", "id", "planner", "seed", "result", "reason", "start_time", "end_time", "duration", "moves", "outbreaks", "cured", "fallbacks"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Index),
			record.ID.String(),
			strconv.Itoa(record.PlannerID),
			strconv.FormatUint(record.Seed, 10),
			record.Result,
			record.Reason,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Outbreaks),
			strconv.Itoa(record.Cured),
			strconv.Itoa(record.Fallbacks),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "pawn", "action", "duration", "iterations", "full_playouts"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game.String(),
			strconv.Itoa(record.Step),
			record.Pawn,
			record.Action,
			record.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.FullPlayouts),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}
