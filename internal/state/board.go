package state

import (
	"log/slog"

	"LocalSketch/internal/shape"
)

// Board is the drawing surface together with its linear undo/redo history.
//
// The surface holds committed shapes in z-order (later shapes on top). The
// undo stack always mirrors the surface; undone shapes wait on the redo
// stack until they are restored or a new commit discards them. A shape
// pointer is never on the surface and the redo stack at the same time.
//
// Board is single-owner state and is not safe for concurrent use.
type Board struct {
	surface []*shape.Shape
	undo    []*shape.Shape
	redo    []*shape.Shape
}

func NewBoard() *Board {
	return &Board{}
}

// Commit appends s to the surface and records it for undo. Any redo
// history is discarded.
func (b *Board) Commit(s shape.Shape) {
	c := s.Clone()
	p := &c
	b.surface = append(b.surface, p)
	b.undo = append(b.undo, p)
	if n := len(b.redo); n > 0 {
		Logger().Debug("redo history discarded", slog.Int("shapes", n))
	}
	b.redo = nil
	Logger().Debug("shape committed", slog.String("id", c.ID), slog.String("kind", c.Kind.String()))
}

// Undo removes the most recently committed shape from the surface. It
// reports false when there is nothing to undo.
func (b *Board) Undo() bool {
	n := len(b.undo)
	if n == 0 {
		return false
	}
	p := b.undo[n-1]
	b.undo[n-1] = nil
	b.undo = b.undo[:n-1]
	b.remove(p)
	b.redo = append(b.redo, p)
	Logger().Debug("undo", slog.String("id", p.ID), slog.Int("redo", len(b.redo)))
	return true
}

// Redo restores the most recently undone shape. The shape is appended to
// the top of the z-order, not re-inserted at its former position. It
// reports false when there is nothing to redo.
func (b *Board) Redo() bool {
	n := len(b.redo)
	if n == 0 {
		return false
	}
	p := b.redo[n-1]
	b.redo[n-1] = nil
	b.redo = b.redo[:n-1]
	b.surface = append(b.surface, p)
	b.undo = append(b.undo, p)
	Logger().Debug("redo", slog.String("id", p.ID), slog.Int("redo", len(b.redo)))
	return true
}

// Clear empties the surface and both stacks. It cannot be undone.
func (b *Board) Clear() {
	Logger().Debug("board cleared", slog.Int("shapes", len(b.surface)), slog.Int("redo", len(b.redo)))
	b.surface = nil
	b.undo = nil
	b.redo = nil
}

// Shapes returns copies of the committed shapes in z-order.
func (b *Board) Shapes() []shape.Shape {
	out := make([]shape.Shape, 0, len(b.surface))
	for _, p := range b.surface {
		out = append(out, p.Clone())
	}
	return out
}

func (b *Board) Len() int      { return len(b.surface) }
func (b *Board) RedoLen() int  { return len(b.redo) }
func (b *Board) CanUndo() bool { return len(b.undo) > 0 }
func (b *Board) CanRedo() bool { return len(b.redo) > 0 }

func (b *Board) remove(p *shape.Shape) {
	for i := len(b.surface) - 1; i >= 0; i-- {
		if b.surface[i] == p {
			copy(b.surface[i:], b.surface[i+1:])
			b.surface[len(b.surface)-1] = nil
			b.surface = b.surface[:len(b.surface)-1]
			return
		}
	}
}
