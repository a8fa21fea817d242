// Package storage persists generated traces as run directories under a
// data root: metadata.json with the run summary and steps.csv with the
// full step log.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/avelis/sortlab/internal/trace"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	Size        int       `json:"size"`
	Input       []int     `json:"input"`
	Steps       int       `json:"steps"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
}

// Save writes one run directory and returns its id.
func (s *Store) Save(seed int64, tr *trace.Trace) (string, error) {
	runID := fmt.Sprintf("%s_%d", tr.Algorithm, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Algorithm:   tr.Algorithm,
		Timestamp:   time.Now(),
		Seed:        seed,
		Size:        len(tr.Input),
		Input:       tr.Input,
		Steps:       tr.Len(),
		Comparisons: tr.Comparisons,
		Swaps:       tr.Swaps,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "steps.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "kind", "i", "j", "snapshot"}); err != nil {
		return "", err
	}
	for i, step := range tr.Steps {
		row := []string{
			strconv.Itoa(i),
			string(step.Kind),
			strconv.Itoa(step.I),
			strconv.Itoa(step.J),
			joinInts(step.Snapshot),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run not found: %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSteps reads the full step log of a stored run.
func (s *Store) LoadSteps(runID string) ([]trace.Step, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "steps.csv"))
	if err != nil {
		return nil, fmt.Errorf("run not found: %s: %w", runID, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	steps := make([]trace.Step, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 5 {
			return nil, fmt.Errorf("malformed step row: %v", row)
		}
		i, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, err
		}
		j, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, err
		}
		snapshot, err := splitInts(row[4])
		if err != nil {
			return nil, err
		}
		steps = append(steps, trace.Step{
			Kind:     trace.Kind(row[1]),
			I:        i,
			J:        j,
			Snapshot: snapshot,
		})
	}
	return steps, nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func splitInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
