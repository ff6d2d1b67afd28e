package proptest

import "sync"

// Violation records a property that failed for a specific pair of
// generated operands.
type Violation struct {
	Property string
	Detail   string
}

// Table collects violations found across all workers.
type Table struct {
	mu         sync.Mutex
	violations []Violation
	checked    map[string]int64
}

// NewTable creates an empty violation table.
func NewTable() *Table {
	return &Table{checked: make(map[string]int64)}
}

// Add records a violation.
func (t *Table) Add(v Violation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.violations = append(t.violations, v)
}

// RecordChecked increments the number of trials run for a property.
func (t *Table) RecordChecked(property string, n int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checked[property] += n
}

// Violations returns a copy of all recorded violations.
func (t *Table) Violations() []Violation {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Violation, len(t.violations))
	copy(out, t.violations)
	return out
}

// Checked returns the number of trials run for property.
func (t *Table) Checked(property string) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.checked[property]
}

// Len returns the total number of violations found.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.violations)
}

// LoadCheckpoint seeds the table with violations and per-property trial
// counts recorded in a previously saved Checkpoint, so a resumed fuzz
// run's report includes work a prior run already did.
func (t *Table) LoadCheckpoint(ckpt *Checkpoint) {
	if ckpt == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.violations = append(t.violations, ckpt.Violations...)
	for property, n := range ckpt.Checked {
		t.checked[property] += n
	}
}

// Snapshot captures the table's current violations and trial counts as
// a Checkpoint, suitable for SaveCheckpoint and a later LoadCheckpoint.
func (t *Table) Snapshot(trialsPerProperty int64) *Checkpoint {
	t.mu.Lock()
	defer t.mu.Unlock()
	violations := make([]Violation, len(t.violations))
	copy(violations, t.violations)
	checked := make(map[string]int64, len(t.checked))
	for property, n := range t.checked {
		checked[property] = n
	}
	return &Checkpoint{
		TrialsPerProperty: trialsPerProperty,
		Checked:           checked,
		Violations:        violations,
	}
}
