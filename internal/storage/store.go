package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/asciifire/internal/fire"
)

const (
	metadataFile = "metadata.json"
	gridFile     = "grid.csv"
)

var (
	ErrNotFound  = errors.New("storage: snapshot not found")
	ErrInvalidID = errors.New("storage: invalid snapshot id")
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

// Snapshot describes one stored grid.
type Snapshot struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Cols      int                `json:"cols"`
	Rows      int                `json:"rows"`
	Frames    int                `json:"frames"`
	Palette   string             `json:"palette"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes meta and g under a new id. Size fields are taken from g.
func (s *Store) Save(meta Snapshot, g fire.Grid) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("fire_%dx%d_%d", g.Cols(), g.Rows(), now.UnixNano())
	meta.Timestamp = now
	meta.Cols, meta.Rows = g.Cols(), g.Rows()

	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(dir, metadataFile), func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}); err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(dir, gridFile), func(f *os.File) error {
		w := csv.NewWriter(f)
		record := make([]string, g.Cols())
		for _, row := range g {
			for j, v := range row {
				record[j] = strconv.Itoa(int(v))
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// writeFile creates path, runs write and reports the first of the write and
// close errors.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// checkID rejects ids that would resolve outside the store directory.
func checkID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// List returns stored snapshots, oldest first.
func (s *Store) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Snapshot{}, nil
		}
		return nil, err
	}

	snaps := make([]Snapshot, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Timestamp.Before(snaps[j].Timestamp)
	})
	return snaps, nil
}

func (s *Store) Load(id string) (*Snapshot, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta Snapshot
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadGrid(id string) (fire.Grid, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, id, gridFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	g := make(fire.Grid, len(records))
	for i, record := range records {
		g[i] = make([]uint8, len(record))
		for j, field := range record {
			v, err := strconv.ParseUint(field, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%s row %d col %d: %w", id, i, j, err)
			}
			g[i][j] = uint8(v)
		}
	}
	return g, nil
}
