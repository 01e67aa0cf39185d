// Package session records playground run artifacts so a session can be
// inspected after the terminal closes. Every session gets its own
// directory holding the resolved config, an event log, and a summary.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/xid"
	"gopkg.in/yaml.v3"

	"github.com/pulsepad/pulsepad/internal/errors"
)

// Summary is the structured metadata emitted for every session.
type Summary struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"` // "completed" or "aborted"
	StartedAt  string  `json:"started_at"`
	FinishedAt string  `json:"finished_at"`
	Runs       int     `json:"runs"`
	LastRunMs  int64   `json:"last_run_ms"`
	CounterA   int     `json:"counter_a"`
	CounterB   int     `json:"counter_b"`
	Multiplier float64 `json:"multiplier"`
}

// Recorder owns one session directory under the configured runs root.
type Recorder struct {
	ID  string
	Dir string
}

// NewRecorder allocates a session directory named by UTC timestamp plus
// a unique id, creating parents as needed.
func NewRecorder(baseDir string) (*Recorder, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("session directory is required")
	}
	id := xid.New().String()
	timestamp := time.Now().UTC().Format("2006-01-02_15-04")
	dir := filepath.Join(baseDir, fmt.Sprintf("%s_%s", timestamp, id))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.WrapSessionError(fmt.Errorf("create session dir: %w", err), baseDir)
	}
	return &Recorder{ID: id, Dir: dir}, nil
}

// WriteArtifacts writes the session artifacts into the recorder's
// directory: resolved.yaml with the effective config, events.log with
// the event trail, and summary.json with the session totals.
func (r *Recorder) WriteArtifacts(resolved interface{}, summary Summary, events string) error {
	if err := writeYAML(filepath.Join(r.Dir, "resolved.yaml"), resolved); err != nil {
		return errors.WrapSessionError(err, r.Dir)
	}
	if err := writeText(filepath.Join(r.Dir, "events.log"), events); err != nil {
		return errors.WrapSessionError(err, r.Dir)
	}
	if err := writeJSON(filepath.Join(r.Dir, "summary.json"), summary); err != nil {
		return errors.WrapSessionError(err, r.Dir)
	}
	return nil
}

// ListRuns returns session directory names ordered by descending name,
// which sorts newest first thanks to the timestamp prefix. Returns
// nil, nil if the runs directory does not exist.
func ListRuns(baseDir string, limit int) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read runs dir: %w", err)
	}
	runs := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			runs = append(runs, entry.Name())
		}
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i] > runs[j]
	})
	if limit > 0 && len(runs) > limit {
		return runs[:limit], nil
	}
	return runs, nil
}

// Prune removes the oldest session directories so at most keep remain.
// keep <= 0 disables pruning.
func Prune(baseDir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	runs, err := ListRuns(baseDir, 0)
	if err != nil {
		return err
	}
	if len(runs) <= keep {
		return nil
	}
	// ListRuns is newest first; everything past keep is stale.
	for _, name := range runs[keep:] {
		if err := os.RemoveAll(filepath.Join(baseDir, name)); err != nil {
			return errors.WrapSessionError(fmt.Errorf("prune %s: %w", name, err), baseDir)
		}
	}
	return nil
}

// LoadSummary loads a summary.json from a session directory.
func LoadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var summary Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func writeYAML(path string, data interface{}) error {
	encoded, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, data interface{}) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeText(path string, data string) error {
	if !strings.HasSuffix(data, "\n") && data != "" {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
