package state

import (
	"log"
	"sync"
)

// StrokeStore holds the committed comparison lines. It has exactly two named slots, Top and
// Bottom, so it always holds 0, 2 or 4 strokes.
type StrokeStore struct {
	mu    sync.RWMutex
	style StrokeStyle
	top   *Line
	bot   *Line
	order []Class // slots in commit order
}

// NewStrokeStore creates an empty store whose lines use style.
func NewStrokeStore(style StrokeStyle) *StrokeStore {
	return &StrokeStore{style: style}
}

func (s *StrokeStore) slot(c Class) **Line {
	switch c {
	case Top:
		return &s.top
	case Bottom:
		return &s.bot
	}
	return nil
}

// Commit stores seg as the line for slot c. It returns false when c is Discard or the slot is
// already taken.
func (s *StrokeStore) Commit(c Class, seg Segment) (Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.slot(c)
	if slot == nil || *slot != nil {
		return Line{}, false
	}
	line := &Line{ID: NewLineID(), Segment: seg, Style: s.style}
	*slot = line
	s.order = append(s.order, c)

	log.Printf("[STORE] Committed %s line %s (%d strokes)", c, line.ID, 2*len(s.order))
	return *line, true
}

// Replace overwrites the geometry of the line in slot c, keeping its identity and style.
func (s *StrokeStore) Replace(c Class, seg Segment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.slot(c)
	if slot == nil || *slot == nil {
		return false
	}
	(*slot).Segment = seg
	return true
}

// Line returns the line held in slot c.
func (s *StrokeStore) Line(c Class) (Line, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot := s.slot(c)
	if slot == nil || *slot == nil {
		return Line{}, false
	}
	return **slot, true
}

// Lines returns the committed lines in the order they were drawn.
func (s *StrokeStore) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]Line, 0, len(s.order))
	for _, c := range s.order {
		lines = append(lines, **s.slot(c))
	}
	return lines
}

// Strokes flattens the lines into outer/inner stroke pairs in commit order.
func (s *StrokeStore) Strokes() []Stroke {
	lines := s.Lines()
	strokes := make([]Stroke, 0, 2*len(lines))
	for _, l := range lines {
		pair := l.Strokes()
		strokes = append(strokes, pair[0], pair[1])
	}
	return strokes
}

// Len returns the number of strokes held.
func (s *StrokeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return 2 * len(s.order)
}

func (s *StrokeStore) Full() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.top != nil && s.bot != nil
}

func (s *StrokeStore) Style() StrokeStyle { return s.style }

func (s *StrokeStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) > 0 {
		log.Printf("[STORE] Cleared %d strokes", 2*len(s.order))
	}
	s.top, s.bot = nil, nil
	s.order = nil
}
