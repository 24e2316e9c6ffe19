package session

import (
	"employee-directory/internal/deletion"
	"employee-directory/internal/page"
)

// Inbound event types sent by the browser.
const (
	EventLoad    = "load"
	EventInput   = "input"
	EventSearch  = "search"
	EventDelete  = "delete"
	EventConfirm = "confirm"
	EventDismiss = "dismiss"
)

// Outbound ops besides the page.Patch ones.
const (
	OpConfirm = "confirm"
	OpSubmit  = "submit"
)

// Event 為瀏覽器送來的原始事件
type Event struct {
	Type      string `json:"type"`
	Value     string `json:"value,omitempty"`
	ID        string `json:"id,omitempty"`
	Confirmed bool   `json:"confirmed,omitempty"`
}

// Command is applied by the browser shim in the order received.
type Command struct {
	Op      string           `json:"op"`
	Target  string           `json:"target,omitempty"`
	HTML    string           `json:"html,omitempty"`
	Visible bool             `json:"visible,omitempty"`
	Prompt  *deletion.Prompt `json:"prompt,omitempty"`
	Method  string           `json:"method,omitempty"`
	Action  string           `json:"action,omitempty"`
}

func patchCommand(p page.Patch) Command {
	return Command{Op: string(p.Op), Target: p.Target, HTML: p.HTML, Visible: p.Visible}
}

// Conn is the websocket side of a session. Only the session loop writes.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}
