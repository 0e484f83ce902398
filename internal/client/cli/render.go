package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"
)

// ErrCommandFailed is returned by command handlers whose API call failed.
// The message has already been shown to the user.
var ErrCommandFailed = errors.New("command failed")

const dateLayout = "2006-01-02"

func (a *App) loading(what string) {
	fmt.Fprintf(a.out, "Loading %s...\n", what)
}

// failed renders the error state and returns it as an error. Retrying is
// manual: the user re-enters the command.
func (a *App) failed(cmd, msg string) error {
	fmt.Fprintf(a.out, "Error: %s\n", msg)
	fmt.Fprintf(a.out, "Type '%s' again to retry.\n", cmd)
	return fmt.Errorf("%w: %s", ErrCommandFailed, msg)
}

func (a *App) empty(msg string) {
	fmt.Fprintln(a.out, msg)
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

// parseDate accepts YYYY-MM-DD; an empty string means "no date".
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &t, nil
}

func progressBar(p int) string {
	p = max(0, min(100, p))
	filled := p / 10
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 10-filled) + fmt.Sprintf("] %3d%%", p)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
