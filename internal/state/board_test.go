package state

import (
	"fmt"
	"testing"

	"LocalSketch/internal/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShape(i int) shape.Shape {
	return shape.Shape{
		ID:    fmt.Sprintf("s%d", i),
		Kind:  shape.Line,
		Style: shape.Style{Stroke: "black", Fill: shape.None, Width: 1},
		Start: shape.Point{X: float64(i)},
		End:   shape.Point{X: float64(i), Y: 10},
	}
}

func ids(shapes []shape.Shape) []string {
	out := make([]string, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, s.ID)
	}
	return out
}

// assertMirrors checks that the surface is exactly the undo stack.
func assertMirrors(t *testing.T, b *Board) {
	t.Helper()
	require.Equal(t, len(b.undo), len(b.surface))
	for i := range b.surface {
		assert.Same(t, b.undo[i], b.surface[i])
	}
	for _, r := range b.redo {
		for _, s := range b.surface {
			assert.NotSame(t, r, s)
		}
	}
}

func TestCommitUndoRedoRoundTrip(t *testing.T) {
	for n := 0; n <= 5; n++ {
		for k := 0; k <= n; k++ {
			for j := 0; j <= k; j++ {
				t.Run(fmt.Sprintf("n%d_k%d_j%d", n, k, j), func(t *testing.T) {
					b := NewBoard()
					var want []string
					for i := 0; i < n; i++ {
						b.Commit(testShape(i))
					}
					for i := 0; i < k; i++ {
						require.True(t, b.Undo())
					}
					for i := 0; i < j; i++ {
						require.True(t, b.Redo())
					}
					for i := 0; i < n-k+j; i++ {
						want = append(want, fmt.Sprintf("s%d", i))
					}
					if want == nil {
						want = []string{}
					}
					assert.Equal(t, want, ids(b.Shapes()))
					assert.Equal(t, k-j, b.RedoLen())
					assertMirrors(t, b)
				})
			}
		}
	}
}

func TestRedoRestoresToTopOfZOrder(t *testing.T) {
	b := NewBoard()
	b.Commit(testShape(0))
	b.Commit(testShape(1))
	require.True(t, b.Undo())
	require.True(t, b.Redo())
	assert.Equal(t, []string{"s0", "s1"}, ids(b.Shapes()))
	assertMirrors(t, b)
}

func TestCommitDiscardsRedo(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 4; i++ {
		b.Commit(testShape(i))
	}
	b.Undo()
	b.Undo()
	assert.Equal(t, 2, b.RedoLen())

	b.Commit(testShape(9))
	assert.Zero(t, b.RedoLen())
	assert.False(t, b.Redo())
	assert.Equal(t, []string{"s0", "s1", "s9"}, ids(b.Shapes()))
	assertMirrors(t, b)
}

func TestEmptyStacksAreNoOps(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.Undo())
	assert.False(t, b.Redo())
	assert.False(t, b.CanUndo())
	assert.False(t, b.CanRedo())
	assert.Empty(t, b.Shapes())
}

func TestClearIsIrreversible(t *testing.T) {
	b := NewBoard()
	b.Commit(testShape(0))
	b.Commit(testShape(1))
	b.Undo()

	b.Clear()
	assert.Zero(t, b.Len())
	assert.Zero(t, b.RedoLen())
	assert.False(t, b.Undo())
	assert.False(t, b.Redo())
	assert.Empty(t, b.Shapes())
}

func TestCommittedShapesAreIsolated(t *testing.T) {
	b := NewBoard()
	s := shape.Shape{
		ID:     "p",
		Kind:   shape.Freehand,
		Style:  shape.Style{Stroke: "black", Fill: shape.None, Width: 1},
		Points: []shape.Point{{X: 1, Y: 1}},
	}
	b.Commit(s)
	s.Points[0].X = 42

	got := b.Shapes()
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Points[0].X)

	got[0].Points[0].Y = 42
	assert.Equal(t, 1.0, b.Shapes()[0].Points[0].Y)
}
