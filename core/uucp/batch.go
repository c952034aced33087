package uucp

import "strings"

// Prefix identifies which member of a batch a spool file is.
type Prefix string

const (
	// PrefixControl marks control files.
	PrefixControl Prefix = "C."
	// PrefixData marks data files.
	PrefixData Prefix = "D."
)

// Batch pairs the control and data file of one qid. At least one of the two
// paths is set.
type Batch struct {
	// Control is the path of the file in the `C.` directory, empty if absent.
	Control string `json:"control,omitempty"`
	// Data is the path of the file in the `D.` directory, empty if absent.
	Data string `json:"data,omitempty"`
}

// Complete reports whether both members are present.
func (b Batch) Complete() bool {
	return b.Control != "" && b.Data != ""
}

// Entry is one spool file from a directory listing, already split into its
// prefix and qid.
type Entry struct {
	Name   string
	Path   string
	Prefix Prefix
	QID    string
}

// ParseName splits a spool file name into its prefix and qid.
// ok is false for names that are not spool members.
func ParseName(name string) (prefix Prefix, qid string, ok bool) {
	for _, p := range []Prefix{PrefixControl, PrefixData} {
		if rest, found := strings.CutPrefix(name, string(p)); found {
			if rest == "" {
				return "", "", false
			}
			return p, rest, true
		}
	}
	return "", "", false
}

// group folds a listing into one Batch per qid. Entries with an unknown
// prefix are counted as ignored; a second entry for the same qid and prefix
// replaces the first and is counted as a duplicate.
func group(entries []Entry) (batches map[string]Batch, ignored, duplicates int) {
	batches = make(map[string]Batch)
	for _, e := range entries {
		if e.QID == "" {
			ignored++
			continue
		}

		b := batches[e.QID]
		switch e.Prefix {
		case PrefixControl:
			if b.Control != "" {
				duplicates++
			}
			b.Control = e.Path
		case PrefixData:
			if b.Data != "" {
				duplicates++
			}
			b.Data = e.Path
		default:
			ignored++
			continue
		}
		batches[e.QID] = b
	}
	return batches, ignored, duplicates
}
