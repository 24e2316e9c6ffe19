// Package toast shows the page's embedded flash messages as self-dismissing
// notifications.
package toast

import (
	"bytes"
	"embed"
	"html/template"
	"sync"
	"time"

	"employee-directory/internal/flash"
	"employee-directory/internal/page"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// DefaultDelay 為通知自動關閉的時間
const DefaultDelay = 3000 * time.Millisecond

const (
	successClass = "text-bg-success"
	dangerClass  = "text-bg-danger"
)

//go:embed templates/toast.html
var templatesFS embed.FS

var toastTmpl = template.Must(template.ParseFS(templatesFS, "templates/toast.html"))

// ClassFor maps a flash category to its styling. Anything but success is danger.
func ClassFor(category string) string {
	if category == flash.Success {
		return successClass
	}
	return dangerClass
}

type Config struct {
	Clock clockwork.Clock
	Delay time.Duration
	// Dispatch posts timer callbacks onto the goroutine that owns doc.
	Dispatch func(func())
	NewID    func() string
	Log      *logrus.Entry
}

type Notifier struct {
	doc    *page.Document
	cfg    Config
	loaded bool

	mu     sync.Mutex
	timers map[string]clockwork.Timer
}

func NewNotifier(doc *page.Document, cfg Config) *Notifier {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.Dispatch == nil {
		cfg.Dispatch = func(fn func()) { fn() }
	}
	if cfg.NewID == nil {
		cfg.NewID = func() string { return "toast-" + uuid.NewString() }
	}
	if cfg.Log == nil {
		cfg.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Notifier{doc: doc, cfg: cfg, timers: map[string]clockwork.Timer{}}
}

// Load reads the embedded flash payload and shows one toast per message. Only
// the first call has any effect. Malformed payloads are logged and skipped.
func (n *Notifier) Load() int {
	if n.loaded {
		return 0
	}
	n.loaded = true

	raw, err := n.doc.Text(page.FlashMessages)
	if err != nil {
		n.cfg.Log.WithError(err).Warn("flash payload missing")
		return 0
	}
	msgs, err := flash.Decode([]byte(raw))
	if err != nil {
		n.cfg.Log.WithError(err).Warn("flash payload malformed")
		return 0
	}

	shown := 0
	for _, m := range msgs {
		if err := n.show(m); err != nil {
			n.cfg.Log.WithError(err).Error("show toast")
			continue
		}
		shown++
	}
	return shown
}

func (n *Notifier) show(m flash.Message) error {
	id := n.cfg.NewID()
	var buf bytes.Buffer
	err := toastTmpl.Execute(&buf, struct {
		ID, Class, Text string
	}{id, ClassFor(m.Category), m.Text})
	if err != nil {
		return err
	}
	if err := n.doc.Append(page.ToastContainer, buf.String()); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.timers[id] = n.cfg.Clock.AfterFunc(n.cfg.Delay, func() {
		n.cfg.Dispatch(func() { n.Dismiss(id) })
	})
	return nil
}

// Dismiss removes a toast and stops its timer. It reports whether the toast
// was still showing.
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()
	t, ok := n.timers[id]
	delete(n.timers, id)
	n.mu.Unlock()
	if !ok {
		return false
	}
	t.Stop()
	if err := n.doc.Remove(id); err != nil {
		n.cfg.Log.WithError(err).WithField("toast", id).Warn("remove toast")
	}
	return true
}

// Active returns how many toasts are showing.
func (n *Notifier) Active() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.timers)
}

// Stop cancels every pending auto-dismiss.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
}
