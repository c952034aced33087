package cmd

import (
	"fmt"
	"io"

	"spoolq/core/uucp"
	"spoolq/feature/spool"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// newTable returns a rounded table writer with headers left aligned.
func newTable(header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(header)
	return tw
}

// renderSummaries draws one row per site. Counts and sizes are right
// aligned; sites whose spool layout is missing show no counts.
func renderSummaries(sums []spool.SiteSummary) string {
	tw := newTable(table.Row{"Site", "State", "Batches", "Mail", "News", "Missing", "Invalid", "Files", "Size"})

	counts := make([]table.ColumnConfig, 0, 7)
	for _, name := range []string{"Batches", "Mail", "News", "Missing", "Invalid", "Files", "Size"} {
		counts = append(counts, table.ColumnConfig{Name: name, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(append(counts,
		table.ColumnConfig{Name: "Site", WidthMin: 8},
		table.ColumnConfig{Name: "State", WidthMax: 48},
	))

	for _, s := range sums {
		if !s.Valid {
			tw.AppendRow(table.Row{s.Name, "invalid site", "-", "-", "-", "-", "-", "-", "-"})
			continue
		}
		tw.AppendRow(table.Row{
			s.Name,
			s.State.String(),
			s.Len,
			s.Mails,
			s.News,
			s.Missing,
			s.Invalid,
			s.Stats.NFiles,
			humanize.Bytes(uint64(s.Stats.NBytes)),
		})
	}
	return tw.Render()
}

// renderEntities draws a site's queue, one row per qid.
func renderEntities(entities []spool.EntityView) string {
	tw := newTable(table.Row{"QID", "Kind", "Marked", "Detail"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "QID", WidthMin: 6},
		{Name: "Marked", Align: text.AlignCenter, AlignHeader: text.AlignLeft},
		{Name: "Detail", WidthMax: 72},
	})

	for _, e := range entities {
		detail := e.Reason
		marked := ""
		switch e.Kind {
		case uucp.KindMail, uucp.KindNews:
			if e.Marked {
				marked = "yes"
			}
			detail = e.Control
		case uucp.KindMissing:
		case uucp.KindInvalid:
			detail = "unrecognised control file"
		}
		tw.AppendRow(table.Row{e.QID, string(e.Kind), marked, detail})
	}
	return tw.Render()
}

// checkLine is the one-line verdict printed by the check command.
func checkLine(s spool.SiteSummary) string {
	if !s.Valid {
		return fmt.Sprintf("%s: invalid site (%s)", s.Name, s.Path)
	}
	return fmt.Sprintf("%s: %s", s.Name, s.State)
}

// scanLine summarises one scan pass.
func scanLine(s spool.SiteSummary) string {
	if !s.Valid {
		return checkLine(s)
	}
	r := s.Report
	return fmt.Sprintf("%s: %d batches (%d added, %d removed, %d changed, %d ignored), %s",
		s.Name, s.Len, len(r.Added), len(r.Removed), len(r.Changed), r.Ignored, s.State)
}
