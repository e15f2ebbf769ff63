package anomaly

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// modelState tracks the active and previous persisted versions inside
// the model dir.
type modelState struct {
	CurrentVersion  string `json:"current_version"`
	PreviousVersion string `json:"previous_version,omitempty"`
}

// persistedModel is the on-disk form of a Snapshot.
type persistedModel struct {
	Version   string    `json:"version"`
	TrainedAt time.Time `json:"trained_at"`
	Threshold float64   `json:"threshold"`
	Scaler    *Scaler   `json:"scaler"`
	Forest    *Forest   `json:"forest"`
}

func statePath(dir string) string {
	return filepath.Join(dir, "state.json")
}

func modelPath(dir, version string) string {
	return filepath.Join(dir, "model_"+version+".json")
}

// saveSnapshot writes the snapshot's model file and then rotates
// state.json to point at it. Both writes go through a temp file and
// rename so a concurrent reader never sees a partial file.
func saveSnapshot(dir string, snap *Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}

	model := persistedModel{
		Version:   snap.version,
		TrainedAt: snap.trainedAt,
		Threshold: snap.threshold,
		Scaler:    snap.scaler,
		Forest:    snap.forest,
	}
	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := writeFileAtomic(dir, modelPath(dir, snap.version), data); err != nil {
		return err
	}

	state, err := loadState(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	state.PreviousVersion = state.CurrentVersion
	state.CurrentVersion = snap.version

	stateData, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model state: %w", err)
	}
	if err := writeFileAtomic(dir, statePath(dir), stateData); err != nil {
		return err
	}

	// The version before the previous one is no longer reachable.
	prune(dir, state)

	return nil
}

// loadCurrentSnapshot reads state.json and the model file it points at.
// Missing state means nothing was ever persisted: ErrModelNotReady.
func loadCurrentSnapshot(dir string) (*Snapshot, error) {
	state, err := loadState(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrModelNotReady
		}
		return nil, err
	}
	if state.CurrentVersion == "" {
		return nil, ErrModelNotReady
	}

	data, err := os.ReadFile(modelPath(dir, state.CurrentVersion))
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	var model persistedModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("decode model file: %w", err)
	}
	if model.Forest == nil || model.Scaler == nil {
		return nil, fmt.Errorf("model file %s is incomplete", state.CurrentVersion)
	}

	return &Snapshot{
		version:   model.Version,
		trainedAt: model.TrainedAt,
		forest:    model.Forest,
		scaler:    model.Scaler,
		threshold: model.Threshold,
	}, nil
}

func loadState(dir string) (modelState, error) {
	data, err := os.ReadFile(statePath(dir))
	if err != nil {
		return modelState{}, err
	}
	var state modelState
	if err := json.Unmarshal(data, &state); err != nil {
		return modelState{}, fmt.Errorf("decode model state: %w", err)
	}
	return state, nil
}

func writeFileAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// prune removes model files other than the current and previous
// versions. Best effort.
func prune(dir string, state modelState) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	keep := map[string]bool{
		filepath.Base(modelPath(dir, state.CurrentVersion)):  true,
		filepath.Base(modelPath(dir, state.PreviousVersion)): true,
		"state.json": true,
	}
	for _, entry := range entries {
		name := entry.Name()
		if !keep[name] && filepath.Ext(name) == ".json" {
			_ = os.Remove(filepath.Join(dir, name))
		}
	}
}
