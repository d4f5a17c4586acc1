// Package notice carries short user-facing messages ("Link added",
// "Invalid URL") from the state layer to whatever presentation is attached.
package notice

import "sync"

// Variant distinguishes informational notices from failures.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is one message for the user.
type Notice struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier receives notices.
type Notifier interface {
	Notify(Notice)
}

// Func adapts a function to Notifier.
type Func func(Notice)

// Notify calls f.
func (f Func) Notify(n Notice) {
	if f != nil {
		f(n)
	}
}

// Discard drops every notice.
var Discard Notifier = Func(nil)

// Info builds a default-variant notice.
func Info(title, description string) Notice {
	return Notice{Title: title, Description: description, Variant: VariantDefault}
}

// Error builds a destructive notice.
func Error(title, description string) Notice {
	return Notice{Title: title, Description: description, Variant: VariantDestructive}
}

// Recorder keeps every notice it receives.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify records n.
func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// All returns the recorded notices in arrival order.
func (r *Recorder) All() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Titles returns the titles of the recorded notices.
func (r *Recorder) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	titles := make([]string, len(r.notices))
	for i, n := range r.notices {
		titles[i] = n.Title
	}
	return titles
}
