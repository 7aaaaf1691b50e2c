package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/vortex/internal/binning"
	"github.com/san-kum/vortex/internal/diagram"
	"github.com/san-kum/vortex/internal/geom"
)

const (
	metadataFile = "metadata.json"
	segmentsFile = "segments.csv"
)

var segmentsHeader = []string{"x1", "y1", "x2", "y2", "magnitude", "bucket", "color"}

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
	ID         string    `json:"id"`
	Multiplier int       `json:"multiplier"`
	Modulus    int       `json:"modulus"`
	Palette    []string  `json:"palette"`
	DrawCircle bool      `json:"draw_circle"`
	Timestamp  time.Time `json:"timestamp"`
	Orbits     int       `json:"orbits"`
	Segments   int       `json:"segments"`
	Cutoffs    []float64 `json:"cutoffs"`
}

// Save writes the diagram's metadata and segments under a new run id.
func (s *Store) Save(d *diagram.Diagram) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("k%d_n%d_%d", d.Config.Multiplier, d.Config.Modulus, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Multiplier: d.Config.Multiplier,
		Modulus:    d.Config.Modulus,
		Palette:    d.Config.Palette,
		DrawCircle: d.Config.DrawCircle,
		Timestamp:  now,
		Orbits:     len(d.Orbits),
		Segments:   len(d.Segments),
		Cutoffs:    d.Cutoffs,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, segmentsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, d); err != nil {
		return "", err
	}

	slog.Debug("saved run", "id", runID, "segments", len(d.Segments))
	return runID, nil
}

// List returns every run in the store, oldest first.
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
			slog.Debug("skipping run", "dir", entry.Name(), "error", err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSegments reads back the coloured segments of a run.
func (s *Store) LoadSegments(runID string) ([]binning.ColoredSegment, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, segmentsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(segmentsHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []binning.ColoredSegment{}, nil
	}

	segments := make([]binning.ColoredSegment, 0, len(records)-1)
	for i, record := range records[1:] {
		var v [4]float64
		for j := range v {
			v[j], err = strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		bucket, err := strconv.Atoi(record[5])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		segments = append(segments, binning.ColoredSegment{
			Segment: geom.Segment{
				Start: geom.Point{X: v[0], Y: v[1]},
				End:   geom.Point{X: v[2], Y: v[3]},
			},
			Bucket: bucket,
		})
	}

	return segments, nil
}
