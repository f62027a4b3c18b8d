package input

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"CanvasScroll/internal/geom"
)

// Mode selects which engine a script drives.
type Mode string

const (
	ModeViewport Mode = "viewport"
	ModeMemo     Mode = "memo"
)

// EventType names one recorded input event.
type EventType string

const (
	EventDown   EventType = "down"
	EventMove   EventType = "move"
	EventUp     EventType = "up"
	EventLeave  EventType = "leave"
	EventWheel  EventType = "wheel"
	EventSlider EventType = "slider"
	EventUndo   EventType = "undo"
	EventRedo   EventType = "redo"
	EventClear  EventType = "clear"
)

// Event is one entry of a script. X and Y are viewport coordinates; Delta is
// the wheel direction (positive zooms in); Value is the slider position.
type Event struct {
	Type  EventType `json:"type"`
	X     float64   `json:"x,omitempty"`
	Y     float64   `json:"y,omitempty"`
	Delta float64   `json:"delta,omitempty"`
	Value float64   `json:"value,omitempty"`
}

func (e Event) Pos() geom.Point {
	return geom.Pt(e.X, e.Y)
}

// Script is a recorded input session.
type Script struct {
	Mode   Mode    `json:"mode"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Events []Event `json:"events"`
}

var allowed = map[Mode]map[EventType]bool{
	ModeViewport: {EventDown: true, EventMove: true, EventUp: true, EventLeave: true, EventWheel: true, EventSlider: true},
	ModeMemo:     {EventDown: true, EventMove: true, EventUp: true, EventLeave: true, EventUndo: true, EventRedo: true, EventClear: true},
}

// Validate checks the mode, size and every event type.
func (s *Script) Validate() error {
	types, ok := allowed[s.Mode]
	if !ok {
		return fmt.Errorf("unknown mode %q", s.Mode)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", s.Width, s.Height)
	}
	for i, e := range s.Events {
		if !types[e.Type] {
			return fmt.Errorf("event %d: %q is not a %s event", i, e.Type, s.Mode)
		}
	}
	return nil
}

// DecodeScript reads and validates a JSON script.
func DecodeScript(r io.Reader) (*Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

// LoadScript opens and decodes the script at path.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	s, err := DecodeScript(f)
	if err != nil {
		return nil, err
	}
	log.Printf("[REPLAY] loaded %s script with %d events from %s", s.Mode, len(s.Events), path)
	return s, nil
}

// PlayViewport dispatches every event of s to c in order.
func PlayViewport(s *Script, c *ViewportController) error {
	for i, e := range s.Events {
		var err error
		switch e.Type {
		case EventDown:
			c.PointerDown(e.Pos())
		case EventMove:
			c.PointerMove(e.Pos())
		case EventUp:
			c.PointerUp(e.Pos())
		case EventLeave:
			c.PointerLeave()
		case EventWheel:
			err = c.Wheel(e.Delta, e.Pos())
		case EventSlider:
			err = c.Slider(e.Value)
		}
		if err != nil {
			return fmt.Errorf("event %d (%s): %w", i, e.Type, err)
		}
	}
	return nil
}

// PlayMemo dispatches every event of s to c in order.
func PlayMemo(s *Script, c *MemoController) {
	for _, e := range s.Events {
		switch e.Type {
		case EventDown:
			c.PointerDown(e.Pos())
		case EventMove:
			c.PointerMove(e.Pos())
		case EventUp:
			c.PointerUp(e.Pos())
		case EventLeave:
			c.PointerLeave()
		case EventUndo:
			c.Undo()
		case EventRedo:
			c.Redo()
		case EventClear:
			c.Clear()
		}
	}
}
