// Package deletion guards row deletion behind a confirmation prompt.
package deletion

import (
	"net/http"
	"strconv"
	"strings"

	"employee-directory/internal/render"

	"github.com/sirupsen/logrus"
)

type State int

const (
	Idle State = iota
	Confirming
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Confirming:
		return "confirming"
	case Submitting:
		return "submitting"
	}
	return "unknown"
}

// Prompt is the confirmation dialog shown before a delete.
type Prompt struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	Icon        string `json:"icon"`
	ConfirmText string `json:"confirm_text"`
	CancelText  string `json:"cancel_text"`
}

// NewPrompt 建立刪除確認對話框內容
func NewPrompt(id int) Prompt {
	return Prompt{
		ID:          id,
		Title:       "Are you sure?",
		Text:        "This action cannot be undone!",
		Icon:        "warning",
		ConfirmText: "Yes, delete it!",
		CancelText:  "Cancel",
	}
}

// Prompter shows p and later calls answer exactly once with the user's choice.
// Dismissing the dialog counts as cancel.
type Prompter interface {
	Confirm(p Prompt, answer func(confirmed bool))
}

// Navigator submits a real form, leaving the page.
type Navigator interface {
	Submit(method, action string) error
}

type Flow struct {
	prompter Prompter
	nav      Navigator
	log      *logrus.Entry
	state    State
}

func NewFlow(p Prompter, nav Navigator, log *logrus.Entry) *Flow {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Flow{prompter: p, nav: nav, log: log}
}

func (f *Flow) State() State {
	return f.state
}

// Click handles a delete trigger carrying the row's data-employee-id. It
// reports whether a confirmation was requested.
func (f *Flow) Click(rawID string) bool {
	if f.state != Idle {
		f.log.WithField("state", f.state).Debug("delete click ignored")
		return false
	}
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil || id <= 0 {
		f.log.WithField("employee_id", rawID).Warn("delete click with invalid employee id")
		return false
	}

	f.state = Confirming
	answered := false
	f.prompter.Confirm(NewPrompt(id), func(confirmed bool) {
		if answered {
			return
		}
		answered = true
		f.answer(id, confirmed)
	})
	return true
}

func (f *Flow) answer(id int, confirmed bool) {
	if !confirmed {
		f.state = Idle
		return
	}
	f.state = Submitting
	if err := f.nav.Submit(http.MethodPost, render.DeleteURL(id)); err != nil {
		f.log.WithError(err).WithField("employee_id", id).Error("submit delete")
		f.state = Idle
	}
}
