// Package session runs one live directory page. A single goroutine owns the
// page mirror; browser events, debounce timers, search completions and toast
// timers are all queued onto it, so DOM changes happen one at a time.
package session

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"employee-directory/internal/api"
	"employee-directory/internal/deletion"
	"employee-directory/internal/page"
	"employee-directory/internal/render"
	"employee-directory/internal/search"
	"employee-directory/internal/toast"
	"employee-directory/internal/worker"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

const taskQueueSize = 64

type Config struct {
	// Shell is the page markup the session mirrors.
	Shell      string
	Searcher   search.Searcher
	Pool       worker.Pool
	Clock      clockwork.Clock
	Debounce   time.Duration
	ToastDelay time.Duration
	Log        *logrus.Entry
}

type Session struct {
	id   string
	conn Conn
	log  *logrus.Entry
	cfg  Config

	doc       *page.Document
	spinner   *page.Spinner
	coord     *search.Coordinator
	debouncer *search.Debouncer
	flow      *deletion.Flow
	notifier  *toast.Notifier

	tasks  chan func()
	mail   *mailbox
	done   chan struct{}
	cancel context.CancelFunc

	loaded  bool
	confirm *pendingConfirm

	errMu    sync.Mutex
	writeErr error
}

type pendingConfirm struct {
	id     int
	answer func(bool)
}

func New(conn Conn, cfg Config) (*Session, error) {
	doc, err := page.Parse(strings.NewReader(cfg.Shell))
	if err != nil {
		return nil, err
	}
	if cfg.Pool == nil {
		cfg.Pool = worker.Inline{}
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Log == nil {
		cfg.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	id := uuid.NewString()
	s := &Session{
		id:    id,
		conn:  conn,
		log:   cfg.Log.WithField("session", id),
		cfg:   cfg,
		doc:   doc,
		tasks: make(chan func(), taskQueueSize),
		mail:  newMailbox(),
		done:  make(chan struct{}),
	}
	doc.Observe(func(p page.Patch) { s.send(patchCommand(p)) })
	s.spinner = page.NewSpinner(doc)
	s.debouncer = search.NewDebouncer(cfg.Clock, cfg.Debounce, s.dispatch)
	s.flow = deletion.NewFlow(s, s, s.log.WithField("component", "deletion"))
	s.notifier = toast.NewNotifier(doc, toast.Config{
		Clock:    cfg.Clock,
		Delay:    cfg.ToastDelay,
		Dispatch: s.dispatch,
		Log:      s.log.WithField("component", "toast"),
	})
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// Document exposes the page mirror. Only safe from the session goroutine or
// after Run returns.
func (s *Session) Document() *page.Document {
	return s.doc
}

// Run reads events until the connection closes or ctx is done. Pending timers
// are cancelled before it returns.
func (s *Session) Run(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	defer s.cancel()

	s.coord = search.NewCoordinator(ctx, search.CoordinatorConfig{
		Searcher:  s.cfg.Searcher,
		Pool:      s.cfg.Pool,
		Indicator: s.spinner,
		Dispatch:  s.dispatch,
		Render: func(employees []api.Employee) error {
			return render.RenderInto(s.doc, employees)
		},
		Log: s.log.WithField("component", "search"),
	})

	readErr := make(chan error, 1)
	go s.read(readErr)

	s.log.Debug("session started")
	var err error
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case err = <-readErr:
			break loop
		case task := <-s.tasks:
			task()
		case <-s.mail.ready:
			for _, fn := range s.mail.drain() {
				fn()
			}
		}
	}

	close(s.done)
	s.debouncer.Cancel()
	s.notifier.Stop()
	_ = s.conn.Close()
	s.log.Debug("session ended")

	if werr := s.lastWriteErr(); werr != nil {
		return werr
	}
	return err
}

func (s *Session) read(errs chan<- error) {
	for {
		var ev Event
		if err := s.conn.ReadJSON(&ev); err != nil {
			errs <- err
			return
		}
		if !s.post(func() { s.handle(ev) }) {
			return
		}
	}
}

// dispatch queues fn on the session goroutine without blocking the caller.
// Search workers and timers call it, and the loop itself may be waiting on
// the shared pool, so it must never wait for the loop. After the session ends
// fn is dropped.
func (s *Session) dispatch(fn func()) {
	select {
	case <-s.done:
		return
	default:
	}
	s.mail.put(fn)
}

// post queues fn on the bounded task queue, blocking while it is full. Only
// the socket reader uses it, so a flooding client is slowed down.

func (s *Session) post(fn func()) bool {
	select {
	case s.tasks <- fn:
		return true
	case <-s.done:
		return false
	}
}

func (s *Session) handle(ev Event) {
	log := s.log.WithField("event", ev.Type)
	switch ev.Type {
	case EventLoad:
		if s.loaded {
			log.Debug("duplicate load ignored")
			return
		}
		s.loaded = true
		if err := s.doc.SetText(page.FlashMessages, ev.Value); err != nil {
			log.WithError(err).Warn("seed flash payload")
		}
		s.notifier.Load()
		s.coord.Fetch("")
	case EventInput:
		q := ev.Value
		s.debouncer.Trigger(func() { s.coord.Fetch(q) })
	case EventSearch:
		s.debouncer.Cancel()
		s.coord.Fetch(ev.Value)
	case EventDelete:
		s.flow.Click(ev.ID)
	case EventConfirm:
		s.answer(ev, log)
	case EventDismiss:
		s.notifier.Dismiss(ev.ID)
	default:
		log.Warn("unknown event")
	}
}

func (s *Session) answer(ev Event, log *logrus.Entry) {
	id, err := strconv.Atoi(ev.ID)
	if s.confirm == nil || err != nil || id != s.confirm.id {
		log.WithField("employee_id", ev.ID).Debug("confirm answer without matching prompt")
		return
	}
	answer := s.confirm.answer
	s.confirm = nil
	answer(ev.Confirmed)
}

// Confirm asks the browser to show p; the answer arrives as a confirm event.
func (s *Session) Confirm(p deletion.Prompt, answer func(bool)) {
	s.confirm = &pendingConfirm{id: p.ID, answer: answer}
	s.send(Command{Op: OpConfirm, Prompt: &p})
}

// Submit makes the browser post a real form, leaving the live page.
func (s *Session) Submit(method, action string) error {
	s.send(Command{Op: OpSubmit, Method: method, Action: action})
	return s.lastWriteErr()
}

func (s *Session) send(cmd Command) {
	if s.lastWriteErr() != nil {
		return
	}
	if err := s.conn.WriteJSON(cmd); err != nil {
		s.errMu.Lock()
		s.writeErr = errors.Join(ErrWrite, err)
		s.errMu.Unlock()
		if s.cancel != nil {
			s.cancel()
		}
	}
}

func (s *Session) lastWriteErr() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.writeErr
}

// ErrWrite wraps failures to push a command to the browser.
var ErrWrite = errors.New("session: write")

// mailbox is an unbounded queue of callbacks. ready holds at most one signal;
// the loop drains everything queued when it receives it.
type mailbox struct {
	mu    sync.Mutex
	queue []func()
	ready chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{ready: make(chan struct{}, 1)}
}

func (m *mailbox) put(fn func()) {
	m.mu.Lock()
	m.queue = append(m.queue, fn)
	m.mu.Unlock()
	select {
	case m.ready <- struct{}{}:
	default:
	}
}

func (m *mailbox) drain() []func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := m.queue
	m.queue = nil
	return q
}
