// Package page mirrors the directory page's DOM on the server. Every mutation is
// forwarded to an observer as a Patch so the browser can replay it.
package page

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Element ids shared with the page markup.
const (
	TableContainer = "employee-table-container"
	SearchInput    = "search-input"
	SearchButton   = "search-button"
	LoadingSpinner = "loading-spinner"
	FlashMessages  = "flash-messages"
	ToastContainer = "toast-container"
)

type Op string

const (
	OpHTML    Op = "html"
	OpAppend  Op = "append"
	OpRemove  Op = "remove"
	OpDisplay Op = "display"
)

type Patch struct {
	Op      Op     `json:"op"`
	Target  string `json:"target"`
	HTML    string `json:"html,omitempty"`
	Visible bool   `json:"visible,omitempty"`
}

var ErrNoElement = errors.New("page: element not found")

const (
	styleHidden  = "display: none"
	styleVisible = "display: block"
)

type Document struct {
	doc      *goquery.Document
	observer func(Patch)
}

func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("page: parse: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Observe registers the patch sink. Only one observer is kept.
func (d *Document) Observe(fn func(Patch)) {
	d.observer = fn
}

func (d *Document) emit(p Patch) {
	if d.observer != nil {
		d.observer(p)
	}
}

func (d *Document) byID(id string) (*goquery.Selection, error) {
	sel := d.doc.Find("#" + id)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: #%s", ErrNoElement, id)
	}
	return sel.First(), nil
}

// ReplaceContents discards every child of the element and parses html in its place.
func (d *Document) ReplaceContents(id, html string) error {
	sel, err := d.byID(id)
	if err != nil {
		return err
	}
	sel.SetHtml(html)
	d.emit(Patch{Op: OpHTML, Target: id, HTML: html})
	return nil
}

func (d *Document) Append(id, html string) error {
	sel, err := d.byID(id)
	if err != nil {
		return err
	}
	sel.AppendHtml(html)
	d.emit(Patch{Op: OpAppend, Target: id, HTML: html})
	return nil
}

func (d *Document) Remove(id string) error {
	sel, err := d.byID(id)
	if err != nil {
		return err
	}
	sel.Remove()
	d.emit(Patch{Op: OpRemove, Target: id})
	return nil
}

func (d *Document) SetVisible(id string, visible bool) error {
	sel, err := d.byID(id)
	if err != nil {
		return err
	}
	style := styleHidden
	if visible {
		style = styleVisible
	}
	sel.SetAttr("style", style)
	d.emit(Patch{Op: OpDisplay, Target: id, Visible: visible})
	return nil
}

func (d *Document) Visible(id string) bool {
	sel, err := d.byID(id)
	if err != nil {
		return false
	}
	style, _ := sel.Attr("style")
	return style != styleHidden
}

func (d *Document) Text(id string) (string, error) {
	sel, err := d.byID(id)
	if err != nil {
		return "", err
	}
	return sel.Text(), nil
}

// SetText seeds element text from what the browser reported; it is not echoed back.
func (d *Document) SetText(id, text string) error {
	sel, err := d.byID(id)
	if err != nil {
		return err
	}
	sel.SetText(text)
	return nil
}

func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}
