// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/mattn/go-isatty"
)

// Failure marks a reported value as an error result. It encodes exactly
// like the value it wraps.
type Failure struct {
	Value interface{}
}

func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// Pretty renders v as two-space indented JSON without HTML escaping.
func Pretty(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
	ansiReset = "\033[0m"
)

// Terminal writes each output as a header line followed by pretty JSON.
type Terminal struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewTerminal colours output only when w is a terminal.
func NewTerminal(w io.Writer) *Terminal {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Terminal{w: w, color: color}
}

func (t *Terminal) Report(id string, value interface{}) {
	text, err := Pretty(value)
	if err != nil {
		text = fmt.Sprintf(`{"error": %q}`, err.Error())
	}

	header := ansiGreen
	if _, failed := value.(Failure); failed {
		header = ansiRed
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s\n%s\n", t.paint(header, "== "+id), text)
}

func (t *Terminal) SetVisible(region string, visible bool) {
	state := "hidden"
	if visible {
		state = "visible"
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s %s\n", t.paint(ansiCyan, "panel "+region+":"), state)
}

func (t *Terminal) SetStatus(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s %s\n", t.paint(ansiCyan, "status:"), text)
}

func (t *Terminal) paint(code, s string) string {
	if !t.color {
		return s
	}
	return code + s + ansiReset
}

// Board keeps the latest value reported to each output id, and the last
// panel state applied to it. Safe for concurrent use.
type Board struct {
	mu      sync.RWMutex
	outputs map[string]json.RawMessage
	visible map[string]bool
	status  string
}

func NewBoard() *Board {
	return &Board{
		outputs: make(map[string]json.RawMessage),
		visible: make(map[string]bool),
	}
}

func (b *Board) Report(id string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		raw, _ = json.Marshal(map[string]string{"error": err.Error()})
	}

	b.mu.Lock()
	b.outputs[id] = raw
	b.mu.Unlock()
}

// Output returns the latest value for id.
func (b *Board) Output(id string) (json.RawMessage, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.outputs[id]
	return v, ok
}

// Outputs returns a copy of every output.
func (b *Board) Outputs() map[string]json.RawMessage {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]json.RawMessage, len(b.outputs))
	for k, v := range b.outputs {
		out[k] = v
	}
	return out
}

// IDs returns the output ids in sorted order.
func (b *Board) IDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ids := make([]string, 0, len(b.outputs))
	for k := range b.outputs {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	return ids
}

func (b *Board) SetVisible(region string, visible bool) {
	b.mu.Lock()
	b.visible[region] = visible
	b.mu.Unlock()
}

func (b *Board) SetStatus(text string) {
	b.mu.Lock()
	b.status = text
	b.mu.Unlock()
}

func (b *Board) Visible(region string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.visible[region]
}

func (b *Board) Status() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

// Reporter receives the outcome of an action under an output id.
type Reporter interface {
	Report(id string, value interface{})
}

type multi []Reporter

// Multi fans each report out to all of rs in order.
func Multi(rs ...Reporter) Reporter {
	return multi(rs)
}

func (m multi) Report(id string, value interface{}) {
	for _, r := range m {
		r.Report(id, value)
	}
}
