// Package flash queues one-time messages in a cookie until the next page render.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	CookieName = "flash"

	Success = "success"
	Error   = "error"
)

// Message is one (category, text) pair. On the wire it is a two element array.
type Message struct {
	Category string
	Text     string
}

func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{m.Category, m.Text})
}

func (m *Message) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("flash: message: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("flash: message: want [category, text], got %d elements", len(pair))
	}
	m.Category, m.Text = pair[0], pair[1]
	return nil
}

// Decode parses an embedded flash payload. Blank input is an empty list.
func Decode(raw []byte) ([]Message, error) {
	if len(raw) == 0 {
		return []Message{}, nil
	}
	var out []Message
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Message{}
	}
	return out, nil
}

// Encode returns the JSON payload for msgs; nil encodes as [].
func Encode(msgs []Message) ([]byte, error) {
	if msgs == nil {
		msgs = []Message{}
	}
	return json.Marshal(msgs)
}

// Store 以 cookie 保存待顯示的 flash 訊息
type Store struct {
	Secure bool
}

func NewStore(secure bool) *Store {
	return &Store{Secure: secure}
}

// Add appends a message to those already queued on this request/response pair.
func (s *Store) Add(c echo.Context, category, text string) error {
	msgs, err := s.peek(c)
	if err != nil {
		msgs = nil
	}
	msgs = append(msgs, Message{Category: category, Text: text})
	b, err := Encode(msgs)
	if err != nil {
		return err
	}
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    base64.URLEncoding.EncodeToString(b),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
	c.Set(CookieName, msgs)
	return nil
}

// Pop returns the queued messages and clears the cookie.
func (s *Store) Pop(c echo.Context) ([]Message, error) {
	msgs, err := s.peek(c)
	if msgs == nil && err == nil {
		return []Message{}, nil
	}
	c.SetCookie(&http.Cookie{Name: CookieName, Path: "/", MaxAge: -1, Expires: time.Unix(1, 0)})
	c.Set(CookieName, []Message(nil))
	if err != nil {
		return []Message{}, err
	}
	return msgs, nil
}

func (s *Store) peek(c echo.Context) ([]Message, error) {
	if pending, ok := c.Get(CookieName).([]Message); ok {
		return pending, nil
	}
	ck, err := c.Cookie(CookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, nil
		}
		return nil, err
	}
	raw, err := base64.URLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil, fmt.Errorf("flash: cookie: %w", err)
	}
	return Decode(raw)
}
