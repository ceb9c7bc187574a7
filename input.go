package squishy

import "github.com/hajimehoshi/ebiten/v2"

// PointerSource reports the primary pointer once per frame, in screen
// coordinates.
type PointerSource interface {
	Pointer() (x, y float64, pressed bool)
}

// ebitenPointer reads the first active touch, falling back to the mouse.
// A touch keeps priority until it is lifted.
type ebitenPointer struct {
	touchIDs []ebiten.TouchID
	touch    ebiten.TouchID
	touching bool
}

func (p *ebitenPointer) Pointer() (float64, float64, bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if p.touching {
		for _, id := range p.touchIDs {
			if id == p.touch {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true
			}
		}
		p.touching = false
	}
	if len(p.touchIDs) > 0 {
		p.touch = p.touchIDs[0]
		p.touching = true
		tx, ty := ebiten.TouchPosition(p.touch)
		return float64(tx), float64(ty), true
	}

	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// pointerState tracks one pointer across frames.
type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
}

// Input turns pointer samples into drag gestures for a Squisher. Queued
// synthetic events take precedence over the real pointer, one per frame.
type Input struct {
	Source PointerSource

	pointer     pointerState
	injectQueue []syntheticPointerEvent
}

// NewInput creates an Input reading the mouse and touch screen.
func NewInput() *Input {
	return &Input{Source: &ebitenPointer{}}
}

// Process handles one frame of pointer input.
func (in *Input) Process(sq *Squisher) {
	if in.processInjectedInput(sq) {
		return
	}
	if in.Source == nil {
		return
	}
	x, y, pressed := in.Source.Pointer()
	in.processPointer(sq, x, y, pressed)
}

// Dragging reports whether the pointer is held down.
func (in *Input) Dragging() bool {
	return in.pointer.down
}

// processPointer runs the pointer state machine. There is no dead zone:
// the press itself is the first drag update.
func (in *Input) processPointer(sq *Squisher, x, y float64, pressed bool) {
	ps := &in.pointer
	loc := Vec2{x, y}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		sq.DragUpdate(loc, Vec2{})
	case !pressed && ps.down:
		ps.down = false
		sq.DragEnd()
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			sq.DragUpdate(loc, Vec2{x - ps.startX, y - ps.startY})
		}
		ps.lastX, ps.lastY = x, y
	}
}
