package spool

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"spoolq/core/uucp"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownSite is returned for site names that are not configured.
var ErrUnknownSite = errors.New("unknown site")

// maxConcurrentScans bounds how many sites ScanAll lists at once.
const maxConcurrentScans = 4

// Service owns the configured sites. Each site is scanned and marked under its
// own lock; sites share no state.
type Service struct {
	logger *zap.Logger
	sites  map[string]*siteEntry
	names  []string
}

type siteEntry struct {
	mu   sync.Mutex
	site *uucp.Site
}

// SiteSummary is the reporting view of one site.
type SiteSummary struct {
	Name    string      `json:"name"`
	Path    string      `json:"path"`
	Valid   bool        `json:"valid"`
	State   uucp.State  `json:"state"`
	Len     int         `json:"len"`
	Mails   int         `json:"mails"`
	News    int         `json:"news"`
	Missing int         `json:"missing"`
	Invalid int         `json:"invalid"`
	Stats   uucp.Stats  `json:"stats"`
	Report  uucp.Report `json:"report"`
}

// EntityView is the flat reporting form of a queue entity.
type EntityView struct {
	QID     string    `json:"qid"`
	Kind    uucp.Kind `json:"kind"`
	Control string    `json:"control,omitempty"`
	Data    string    `json:"data,omitempty"`
	Reason  string    `json:"reason,omitempty"`
	Marked  bool      `json:"marked"`
}

// NewService builds one site per configured name under cfg.Root. Invalid
// sites are kept and reported; only failing existence checks abort.
func NewService(ctx context.Context, cfg Config, spool uucp.Spool, logger *zap.Logger) (*Service, error) {
	s := &Service{
		logger: logger,
		sites:  make(map[string]*siteEntry, len(cfg.Sites)),
	}

	for _, name := range cfg.Sites {
		if _, dup := s.sites[name]; dup {
			continue
		}
		site, err := uucp.NewSite(ctx, cfg.Root, name, spool)
		if err != nil {
			return nil, fmt.Errorf("failed to open site %s: %w", name, err)
		}
		if !site.IsValid() {
			logger.Warn("Site has no valid spool directory", zap.String("site", name), zap.String("path", site.Path()))
		}
		s.sites[name] = &siteEntry{site: site}
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)

	return s, nil
}

// Sites returns the configured site names, sorted.
func (s *Service) Sites() []string {
	return append([]string(nil), s.names...)
}

func (s *Service) entry(name string) (*siteEntry, error) {
	e, ok := s.sites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSite, name)
	}
	return e, nil
}

// Scan reconciles one site against its spool directory.
func (s *Service) Scan(ctx context.Context, name string) (SiteSummary, error) {
	e, err := s.entry(name)
	if err != nil {
		return SiteSummary{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	l := s.logger.With(zap.String("site", name))
	if !e.site.IsValid() {
		l.Debug("Skipping scan of invalid site")
		return summarize(e.site), nil
	}

	if err := e.site.Scan(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			l.Info("Scan interrupted, keeping previous queue", zap.Error(err))
		} else {
			l.Error("Scan failed", zap.Error(err))
		}
		return SiteSummary{}, err
	}

	sum := summarize(e.site)
	fields := []zap.Field{
		zap.Int("entities", sum.Len),
		zap.Int("mails", sum.Mails),
		zap.Int("news", sum.News),
		zap.Int("added", len(sum.Report.Added)),
		zap.Int("removed", len(sum.Report.Removed)),
		zap.Int("changed", len(sum.Report.Changed)),
	}
	switch sum.State.Kind {
	case uucp.StateDamaged:
		l.Warn("Spool damaged", append(fields,
			zap.Int("dmissing", sum.State.DMissing),
			zap.Int("cmissing", sum.State.CMissing))...)
	case uucp.StateClean, uucp.StateEmpty:
		l.Info("Spool scanned", append(fields, zap.String("state", string(sum.State.Kind)))...)
	}
	if sum.Report.Duplicates > 0 || sum.Report.Ignored > 0 {
		l.Debug("Listing anomalies",
			zap.Int("duplicates", sum.Report.Duplicates),
			zap.Int("ignored", sum.Report.Ignored))
	}
	return sum, nil
}

// ScanAll scans every site concurrently. A failing site does not stop the
// others; the first error is returned once all scans are done.
func (s *Service) ScanAll(ctx context.Context) ([]SiteSummary, error) {
	sums := make([]SiteSummary, len(s.names))

	var g errgroup.Group
	g.SetLimit(maxConcurrentScans)
	for i, name := range s.names {
		g.Go(func() error {
			sum, err := s.Scan(ctx, name)
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sums, nil
}

// Summary returns the current view of one site without scanning it.
func (s *Service) Summary(name string) (SiteSummary, error) {
	e, err := s.entry(name)
	if err != nil {
		return SiteSummary{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return summarize(e.site), nil
}

// Summaries returns the current view of every site, sorted by name.
func (s *Service) Summaries() []SiteSummary {
	out := make([]SiteSummary, 0, len(s.names))
	for _, name := range s.names {
		sum, _ := s.Summary(name)
		out = append(out, sum)
	}
	return out
}

// Entities returns the queue of one site, sorted by qid.
func (s *Service) Entities(name string) ([]EntityView, error) {
	e, err := s.entry(name)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	entities := e.site.Queue().Entities()
	out := make([]EntityView, 0, len(entities))
	for _, ent := range entities {
		out = append(out, viewOf(ent))
	}
	return out, nil
}

// Mark flags a mail or news batch of a site as processed.
func (s *Service) Mark(name, qid string) (EntityView, error) {
	e, err := s.entry(name)
	if err != nil {
		return EntityView{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	q := e.site.Queue()
	if err := q.Mark(qid); err != nil {
		return EntityView{}, err
	}
	ent, _ := q.Entity(qid)
	s.logger.Info("Batch marked", zap.String("site", name), zap.String("qid", qid))
	return viewOf(ent), nil
}

func summarize(site *uucp.Site) SiteSummary {
	q := site.Queue()
	return SiteSummary{
		Name:    site.Name(),
		Path:    site.Path(),
		Valid:   site.IsValid(),
		State:   q.Check(),
		Len:     q.Len(),
		Mails:   q.Mails(),
		News:    q.News(),
		Missing: q.Missing(),
		Invalid: q.Invalid(),
		Stats:   site.Stats(),
		Report:  site.LastReport(),
	}
}

func viewOf(e uucp.Entity) EntityView {
	v := EntityView{QID: e.ID(), Kind: e.Kind()}
	switch ent := e.(type) {
	case *uucp.Missing:
		v.Control, v.Data, v.Reason = ent.File.Control, ent.File.Data, ent.Reason
	case *uucp.Mail:
		v.Control, v.Data, v.Marked = ent.File.Control, ent.File.Data, ent.Marked
	case *uucp.News:
		v.Control, v.Data, v.Marked = ent.File.Control, ent.File.Data, ent.Marked
	case *uucp.Invalid:
	}
	return v
}
