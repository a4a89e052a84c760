// Package storage keeps benchmark runs on disk, one directory per run holding
// metadata.json and frames.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
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
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Frames      int                `json:"frames"`
	NoiseSeed   int64              `json:"noise_seed"`
	SparkleSeed int64              `json:"sparkle_seed"`
	Metrics     map[string]float64 `json:"metrics"`
}

// FrameStat is one generated frame.
type FrameStat struct {
	Frame      uint64
	Primitives int
	Spheres    int
	Triangles  int
	Sparkles   int
	Millis     float64
}

var csvHeader = []string{"frame", "primitives", "spheres", "triangles", "sparkles", "ms"}

// Save writes a run and returns its ID. A zero Timestamp is set to now.
func (s *Store) Save(meta RunMetadata, frames []FrameStat) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	meta.ID = fmt.Sprintf("bench_%d", meta.Timestamp.UnixNano())
	meta.Frames = len(frames)
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
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

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, f := range frames {
		row := []string{
			strconv.FormatUint(f.Frame, 10),
			strconv.Itoa(f.Primitives),
			strconv.Itoa(f.Spheres),
			strconv.Itoa(f.Triangles),
			strconv.Itoa(f.Sparkles),
			strconv.FormatFloat(f.Millis, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]FrameStat, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []FrameStat{}, nil
	}

	frames := make([]FrameStat, 0, len(records)-1)
	for i, rec := range records[1:] {
		f, err := parseFrame(rec)
		if err != nil {
			return nil, fmt.Errorf("%s frames.csv row %d: %w", runID, i+2, err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func parseFrame(rec []string) (FrameStat, error) {
	var f FrameStat
	var err error
	if f.Frame, err = strconv.ParseUint(rec[0], 10, 64); err != nil {
		return f, err
	}
	ints := []*int{&f.Primitives, &f.Spheres, &f.Triangles, &f.Sparkles}
	for i, dst := range ints {
		if *dst, err = strconv.Atoi(rec[i+1]); err != nil {
			return f, err
		}
	}
	if f.Millis, err = strconv.ParseFloat(rec[5], 64); err != nil {
		return f, err
	}
	return f, nil
}
