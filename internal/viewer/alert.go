package viewer

import (
	"sync"

	"github.com/sqweek/dialog"
)

// Alerter shows a rejected user input to the user.
type Alerter interface {
	Alert(msg string)
}

// DialogAlerter shows alerts in a native message box.
type DialogAlerter struct {
	Title string
}

// Alert blocks until the user dismisses the box.
func (a DialogAlerter) Alert(msg string) {
	title := a.Title
	if title == "" {
		title = Title
	}
	dialog.Message("%s", msg).Title(title).Info()
}

// Recorder keeps alerts in memory instead of showing them.
type Recorder struct {
	mu   sync.Mutex
	msgs []string
}

// Alert records msg.
func (r *Recorder) Alert(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

// Messages returns every alert so far.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}
