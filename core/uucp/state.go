package uucp

import "fmt"

// StateKind names the health verdict of a queue.
type StateKind string

const (
	StateEmpty   StateKind = "empty"
	StateClean   StateKind = "clean"
	StateDamaged StateKind = "damaged"
)

// State is the verdict of Queue.Check. NFiles is set for Clean, DMissing and
// CMissing for Damaged.
type State struct {
	Kind StateKind `json:"kind"`
	// NFiles is the number of entities in a clean queue.
	NFiles int `json:"nfiles,omitempty"`
	// DMissing counts batches whose data file is absent.
	DMissing int `json:"dmissing,omitempty"`
	// CMissing counts batches whose control file is absent.
	CMissing int `json:"cmissing,omitempty"`
}

// Empty returns the verdict for a queue with no entities.
func Empty() State { return State{Kind: StateEmpty} }

// Clean returns the verdict for an undamaged queue of n entities.
func Clean(n int) State { return State{Kind: StateClean, NFiles: n} }

// Damaged returns the verdict for a queue with missing members.
func Damaged(dmissing, cmissing int) State {
	return State{Kind: StateDamaged, DMissing: dmissing, CMissing: cmissing}
}

func (s State) String() string {
	switch s.Kind {
	case StateClean:
		return fmt.Sprintf("clean (%d files)", s.NFiles)
	case StateDamaged:
		return fmt.Sprintf("damaged (%d without D., %d without C.)", s.DMissing, s.CMissing)
	default:
		return "empty"
	}
}
