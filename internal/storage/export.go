package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/avelis/sortlab/internal/trace"
)

type ExportData struct {
	ID          string       `json:"id"`
	Algorithm   string       `json:"algorithm"`
	Seed        int64        `json:"seed"`
	Input       []int        `json:"input"`
	Comparisons int          `json:"comparisons"`
	Swaps       int          `json:"swaps"`
	Steps       []trace.Step `json:"steps"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, steps []trace.Step) error {
	data := ExportData{
		ID:          meta.ID,
		Algorithm:   meta.Algorithm,
		Seed:        meta.Seed,
		Input:       meta.Input,
		Comparisons: meta.Comparisons,
		Swaps:       meta.Swaps,
		Steps:       steps,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSONFile(path string, meta *RunMetadata, steps []trace.Step) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ExportJSON(f, meta, steps)
}
