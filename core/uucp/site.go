package uucp

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
)

// DefaultRoot is the conventional spool root of a UUCP installation.
const DefaultRoot = "/var/spool/uucp"

// Site is one remote's spool directory together with its reconciled queue.
// Validity is computed once by NewSite and never changes; callers needing a
// fresh answer construct a new Site.
type Site struct {
	name       string
	q          *Queue
	valid      bool
	spool      Spool
	classifier Classifier

	mu      sync.Mutex
	scanned bool
	stats   Stats
	report  Report
}

// NewSite builds the site `root/name`. The site is valid when the site
// directory and its `C.` and `D.` directories all exist. Non-existence yields
// an invalid site; only failures of the existence checks themselves are
// returned.
func NewSite(ctx context.Context, root, name string, s Spool) (*Site, error) {
	base := filepath.Join(root, name)

	valid := true
	for _, p := range []string{base, filepath.Join(base, string(PrefixControl)), filepath.Join(base, string(PrefixData))} {
		ok, err := s.Exists(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", p, err)
		}
		if !ok {
			valid = false
			break
		}
	}

	return &Site{
		name:       name,
		q:          NewQueue(base),
		valid:      valid,
		spool:      s,
		classifier: NewControlClassifier(s),
	}, nil
}

// WithClassifier replaces the control-file classifier.
func (s *Site) WithClassifier(c Classifier) *Site {
	s.classifier = c
	return s
}

// Scan lists the spool and reconciles the queue against it. The first scan
// rebuilds the queue, later scans refresh it incrementally. Scanning an
// invalid site does nothing. A listing failure or a done ctx leaves the
// queue untouched.
func (s *Site) Scan(ctx context.Context) error {
	if !s.valid {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, stats, err := List(ctx, s.spool, s.q.Path)
	if err != nil {
		return fmt.Errorf("scan site %s: %w", s.name, err)
	}

	var report Report
	if s.scanned {
		report, err = s.q.Refresh(ctx, entries, s.classifier)
	} else {
		report, err = s.q.Scan(ctx, entries, s.classifier)
	}
	if err != nil {
		return fmt.Errorf("scan site %s: %w", s.name, err)
	}

	s.scanned = true
	s.report = report
	s.stats = stats
	return nil
}

// Rescan forces a full rebuild on the next Scan.
func (s *Site) Rescan(ctx context.Context) error {
	s.mu.Lock()
	s.scanned = false
	s.mu.Unlock()
	return s.Scan(ctx)
}

// Name returns the UUCP name of the site.
func (s *Site) Name() string { return s.name }

// Path returns the site's spool directory.
func (s *Site) Path() string { return s.q.Path }

// IsValid reports whether the spool layout existed at construction.
func (s *Site) IsValid() bool { return s.valid }

// Queue returns the site's queue.
func (s *Site) Queue() *Queue { return s.q }

// Stats returns totals over the most recent listing.
func (s *Site) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// LastReport returns the report of the most recent scan.
func (s *Site) LastReport() Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}
