package uucp

import (
	"bufio"
	"context"
	"path"
	"strings"
)

// Transfer is the transfer type declared by a control file.
type Transfer int

const (
	TransferUnknown Transfer = iota
	TransferMail
	TransferNews
)

func (t Transfer) String() string {
	switch t {
	case TransferMail:
		return "mail"
	case TransferNews:
		return "news"
	default:
		return "unknown"
	}
}

// Commands that identify a transfer.
const (
	mailCommand = "rmail"
	newsCommand = "rnews"
)

// maxControlLines bounds how much of a control file is inspected.
const maxControlLines = 64

// Classifier reports the transfer type of a control file.
type Classifier interface {
	Classify(ctx context.Context, controlPath string) Transfer
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, controlPath string) Transfer

// Classify calls f.
func (f ClassifierFunc) Classify(ctx context.Context, controlPath string) Transfer {
	return f(ctx, controlPath)
}

// ControlClassifier reads control files through a Spool and looks for the
// first command line naming rmail or rnews.
type ControlClassifier struct {
	Spool Spool
}

// NewControlClassifier returns a classifier reading from s.
func NewControlClassifier(s Spool) *ControlClassifier {
	return &ControlClassifier{Spool: s}
}

// Classify opens the control file and returns its transfer type. Unreadable
// files are TransferUnknown.
func (c *ControlClassifier) Classify(ctx context.Context, controlPath string) Transfer {
	rc, err := c.Spool.Open(ctx, controlPath)
	if err != nil {
		return TransferUnknown
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	for n := 0; n < maxControlLines && scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if t := lineTransfer(line); t != TransferUnknown {
			return t
		}
	}
	return TransferUnknown
}

// lineTransfer inspects the fields of one command line. Commands may be
// given with a path, as in "/usr/bin/rmail".
func lineTransfer(line string) Transfer {
	for _, field := range strings.Fields(line) {
		switch path.Base(field) {
		case mailCommand:
			return TransferMail
		case newsCommand:
			return TransferNews
		}
	}
	return TransferUnknown
}
