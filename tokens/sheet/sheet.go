/*
Package sheet manages the active token stylesheet of a document.

A document has at most one token stylesheet: the ":root" block emitted by
package tokens. Sheet is the single owner of that resource. Injecting
replaces the active sheet in place, removing it is a no-op if nothing is
injected, and there is never an observable state with two sheets or with
none in the middle of a re-injection.

Where the sheet ends up is decided by a Sink. MemorySink keeps the text
(for server-side rendering and for tests), HTMLSink maintains a marked
<style> element in the <head> of an HTML parse tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sheet

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/pagetree/tokens"
)

// tracer traces with key 'pagetree.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("pagetree.sheet")
}

// ErrNoSink is returned for a Sheet created without a sink.
var ErrNoSink = errors.New("token sheet has no sink")

// Sink is the target a token stylesheet is installed into. Set must replace
// any previously set content in one step.
type Sink interface {
	Set(content string) error // install or replace the sheet
	Clear() error             // remove the sheet
}

// Sheet is the active token stylesheet of one document. Callers must not
// share a sink between two sheets.
type Sheet struct {
	mu      sync.Mutex
	sink    Sink
	content string
	active  bool
}

// New creates a sheet writing to sink.
func New(sink Sink) *Sheet {
	return &Sheet{sink: sink}
}

// Inject installs content as the active token sheet, replacing the current
// one. Content has to parse as CSS; a sheet that does not parse is rejected
// and the active sheet stays as it is.
func (s *Sheet) Inject(content string) error {
	if _, err := Declarations(content); err != nil {
		return fmt.Errorf("token sheet rejected: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sink == nil {
		return ErrNoSink
	}
	if s.active && s.content == content {
		tracer().Debugf("token sheet unchanged")
		return nil
	}
	if err := s.sink.Set(content); err != nil {
		return err
	}
	s.content, s.active = content, true
	tracer().Debugf("token sheet injected, %d bytes", len(content))
	return nil
}

// InjectStore emits the tokens of a store and injects them.
func (s *Sheet) InjectStore(store *tokens.Store) error {
	return s.Inject(store.Emit())
}

// Remove uninstalls the active token sheet. It is a no-op if no sheet is
// injected.
func (s *Sheet) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return nil
	}
	if s.sink == nil {
		return ErrNoSink
	}
	if err := s.sink.Clear(); err != nil {
		return err
	}
	s.content, s.active = "", false
	tracer().Debugf("token sheet removed")
	return nil
}

// Content returns the active sheet's text and wether a sheet is active.
func (s *Sheet) Content() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content, s.active
}

// --- Memory sink -----------------------------------------------------------

// MemorySink keeps the token sheet as text.
type MemorySink struct {
	sync.Mutex
	content string
	present bool
}

// Set is part of interface Sink.
func (m *MemorySink) Set(content string) error {
	m.Lock()
	defer m.Unlock()
	m.content, m.present = content, true
	return nil
}

// Clear is part of interface Sink.
func (m *MemorySink) Clear() error {
	m.Lock()
	defer m.Unlock()
	m.content, m.present = "", false
	return nil
}

// Content returns the stored sheet and wether one is present.
func (m *MemorySink) Content() (string, bool) {
	m.Lock()
	defer m.Unlock()
	return m.content, m.present
}

var _ Sink = &MemorySink{}
