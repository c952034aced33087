package uucp

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"sync"
)

var (
	// ErrUnknownQID is returned when a qid is not in the queue.
	ErrUnknownQID = errors.New("unknown qid")
	// ErrNotMarkable is returned when marking an entity that is not a mail or news batch.
	ErrNotMarkable = errors.New("entity cannot be marked")
)

// Queue is the reconciled view of one site's spool.
//
// Scan and Refresh build the new map and cache off to the side and commit
// them in one swap, so readers see either the previous or the new state.
// Stored entities are immutable once committed, so values returned by Entity
// and Entities may be read without further locking. Callers serialise Scan
// and Refresh per queue.
type Queue struct {
	// Path is the base directory, `root/sitename`.
	Path string

	mu sync.RWMutex
	// queue is keyed by qid.
	queue map[string]Entity
	// fcache holds the control paths of every non-Invalid entity.
	fcache map[string]struct{}
}

// Report describes what one Scan or Refresh pass did.
type Report struct {
	// Entries is the number of listing entries consumed.
	Entries int `json:"entries"`
	// Ignored counts entries that are not spool members.
	Ignored int `json:"ignored"`
	// Duplicates counts entries that replaced an earlier entry with the same prefix and qid.
	Duplicates int `json:"duplicates"`
	// Added lists qids that were not in the queue before the pass.
	Added []string `json:"added"`
	// Removed lists qids that are no longer in the listing.
	Removed []string `json:"removed"`
	// Changed lists qids that were present before and got reclassified
	// to a different kind or batch.
	Changed []string `json:"changed"`
}

// NewQueue creates an empty queue rooted at path.
func NewQueue(path string) *Queue {
	return &Queue{
		Path:   path,
		queue:  make(map[string]Entity),
		fcache: make(map[string]struct{}),
	}
}

// Scan rebuilds the queue from scratch: every batch in the listing is
// classified again and every marked flag starts cleared. If ctx is done
// before classification finishes, the queue is left as it was.
func (q *Queue) Scan(ctx context.Context, entries []Entry, c Classifier) (Report, error) {
	batches, ignored, dups := group(entries)
	transfer := transferFunc(ctx, c)

	next := make(map[string]Entity, len(batches))
	for qid, b := range batches {
		if err := ctx.Err(); err != nil {
			return Report{}, fmt.Errorf("scan aborted: %w", err)
		}
		next[qid] = classify(qid, b, transfer)
	}
	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("scan aborted: %w", err)
	}

	report := Report{Entries: len(entries), Ignored: ignored, Duplicates: dups}
	q.commit(next, &report, false)
	return report, nil
}

// Refresh updates the queue incrementally. Control paths in the listing but
// not in the cache are additions, cached paths missing from the listing are
// removals. Entities whose batch is unchanged and whose control path is
// already cached are kept as they are; everything else is classified again.
// A reclassified entity keeps its marked flag when its batch and kind did
// not change. Like Scan, a done ctx leaves the queue untouched.
func (q *Queue) Refresh(ctx context.Context, entries []Entry, c Classifier) (Report, error) {
	batches, ignored, dups := group(entries)
	transfer := transferFunc(ctx, c)

	q.mu.RLock()
	prev := q.queue
	cache := q.fcache
	q.mu.RUnlock()

	listed := make(map[string]struct{}, len(batches))
	for _, b := range batches {
		if b.Control != "" {
			listed[b.Control] = struct{}{}
		}
	}
	additions := difference(listed, cache)

	next := make(map[string]Entity, len(batches))
	for qid, b := range batches {
		if err := ctx.Err(); err != nil {
			return Report{}, fmt.Errorf("refresh aborted: %w", err)
		}
		old, had := prev[qid]
		if had && old.Files() == b && reusable(old, additions) {
			next[qid] = old
			continue
		}
		next[qid] = classify(qid, b, transfer)
	}
	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("refresh aborted: %w", err)
	}

	report := Report{Entries: len(entries), Ignored: ignored, Duplicates: dups}
	q.commit(next, &report, true)
	return report, nil
}

// reusable reports whether an unchanged batch can keep its entity.
func reusable(old Entity, additions map[string]struct{}) bool {
	if old.Kind() == KindInvalid {
		return false
	}
	ctl := old.Files().Control
	if ctl == "" {
		return true
	}
	_, added := additions[ctl]
	return !added
}

// commit fills in the report's qid lists against the current state and
// swaps in next together with its cache. With keepMarks, a marked entity
// in the current state passes its flag on to an entity of the same kind and
// batch in next; this also covers marks set while next was being built.
func (q *Queue) commit(next map[string]Entity, report *Report, keepMarks bool) {
	fcache := make(map[string]struct{}, len(next))
	for _, e := range next {
		if e.Kind() == KindInvalid {
			continue
		}
		if ctl := e.Files().Control; ctl != "" {
			fcache[ctl] = struct{}{}
		}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	report.Added, report.Removed, report.Changed = []string{}, []string{}, []string{}
	for qid, e := range next {
		old, had := q.queue[qid]
		if keepMarks && had && marked(old) && !marked(e) && old.Kind() == e.Kind() && old.Files() == e.Files() {
			next[qid], _ = withMarked(e)
			e = next[qid]
		}
		switch {
		case !had:
			report.Added = append(report.Added, qid)
		case old.Kind() != e.Kind() || old.Files() != e.Files():
			report.Changed = append(report.Changed, qid)
		}
	}
	for qid := range q.queue {
		if _, ok := next[qid]; !ok {
			report.Removed = append(report.Removed, qid)
		}
	}
	sort.Strings(report.Added)
	sort.Strings(report.Removed)
	sort.Strings(report.Changed)

	q.queue = next
	q.fcache = fcache
}

// Check computes the health verdict of the queue.
func (q *Queue) Check() State {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if len(q.queue) == 0 {
		return Empty()
	}

	var dmissing, cmissing int
	for _, e := range q.queue {
		switch v := e.(type) {
		case *Missing:
			if v.DataMissing() {
				dmissing++
			} else {
				cmissing++
			}
		case *Mail, *News, *Invalid:
		}
	}

	if dmissing+cmissing > 0 {
		return Damaged(dmissing, cmissing)
	}
	return Clean(len(q.queue))
}

// Len returns the number of entities.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.queue)
}

// Mails returns the number of mail batches.
func (q *Queue) Mails() int {
	return q.count(KindMail)
}

// News returns the number of news batches.
func (q *Queue) News() int {
	return q.count(KindNews)
}

// Missing returns the number of damaged batches.
func (q *Queue) Missing() int {
	return q.count(KindMissing)
}

// Invalid returns the number of unclassifiable batches.
func (q *Queue) Invalid() int {
	return q.count(KindInvalid)
}

func (q *Queue) count(kind Kind) int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	n := 0
	for _, e := range q.queue {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}

// Entity returns the entity stored for qid.
func (q *Queue) Entity(qid string) (Entity, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	e, ok := q.queue[qid]
	return e, ok
}

// Entities returns every entity sorted by qid.
func (q *Queue) Entities() []Entity {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]Entity, 0, len(q.queue))
	for _, e := range q.queue {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})
	return out
}

// Cached returns the cached control paths, sorted.
func (q *Queue) Cached() []string {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]string, 0, len(q.fcache))
	for p := range q.fcache {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Mark flags the mail or news batch stored for qid as processed. Stored
// entities are never modified: the marked entity is a copy that replaces the
// original in a copy of the map.
func (q *Queue) Mark(qid string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.queue[qid]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQID, qid)
	}
	m, ok := withMarked(e)
	if !ok {
		return fmt.Errorf("%w: %s is %s", ErrNotMarkable, qid, e.Kind())
	}

	next := maps.Clone(q.queue)
	next[qid] = m
	q.queue = next
	return nil
}

// withMarked returns a marked copy of a mail or news entity.
func withMarked(e Entity) (Entity, bool) {
	switch v := e.(type) {
	case *Mail:
		c := *v
		c.Marked = true
		return &c, true
	case *News:
		c := *v
		c.Marked = true
		return &c, true
	case *Missing, *Invalid:
		return e, false
	default:
		return e, false
	}
}

func transferFunc(ctx context.Context, c Classifier) func(string) Transfer {
	return func(controlPath string) Transfer {
		return c.Classify(ctx, controlPath)
	}
}

// difference returns the members of a that are not in b.
func difference(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}
