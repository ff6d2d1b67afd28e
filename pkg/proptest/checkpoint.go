package proptest

import (
	"encoding/gob"
	"os"
)

// Checkpoint captures enough state to resume a fuzz run: how many
// trials of each property had already completed, and any violations
// already found.
type Checkpoint struct {
	TrialsPerProperty int64
	Checked           map[string]int64
	Violations        []Violation
}

func init() {
	gob.Register(Violation{})
}

// SaveCheckpoint writes run state to path.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint reads run state from path.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
