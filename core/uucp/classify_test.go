package uucp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTransfer(t *testing.T) {
	tests := []struct {
		line string
		want Transfer
	}{
		{`S D.aaa X.aaa uucp - D.aaa 0666 "" 0 rmail alice`, TransferMail},
		{`C rmail bob@example.org`, TransferMail},
		{`C /usr/bin/rnews`, TransferNews},
		{`S D.nnn X.nnn news - D.nnn 0644 "" 0 rnews`, TransferNews},
		{`S D.foo D.foo uucp - D.foo 0666`, TransferUnknown},
		{`R /tmp/file ~/file`, TransferUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, lineTransfer(tt.line))
		})
	}
}

func TestControlClassifier(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}

	mail := write("C.mail", "# queued by uux\n\nS D.mail X.mail uucp - D.mail 0666 \"\" 0 rmail alice\n")
	news := write("C.news", "S D.news X.news news - D.news 0644 \"\" 0 rnews\nS D.more X.more news - D.more 0644 \"\" 0 rmail root\n")
	other := write("C.other", "S /home/u/file ~/file u - D.0 0644\n")
	empty := write("C.empty", "")

	c := NewControlClassifier(DirSpool{})
	ctx := context.Background()

	assert.Equal(t, TransferMail, c.Classify(ctx, mail))
	// The first recognised line decides.
	assert.Equal(t, TransferNews, c.Classify(ctx, news))
	assert.Equal(t, TransferUnknown, c.Classify(ctx, other))
	assert.Equal(t, TransferUnknown, c.Classify(ctx, empty))
	assert.Equal(t, TransferUnknown, c.Classify(ctx, filepath.Join(dir, "C.gone")))
}

func TestTransfer_String(t *testing.T) {
	assert.Equal(t, "mail", TransferMail.String())
	assert.Equal(t, "news", TransferNews.String())
	assert.Equal(t, "unknown", TransferUnknown.String())
}
