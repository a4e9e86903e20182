package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Fill(t *testing.T) {
	g := grid.New('.', 2, 3)
	require.Len(t, g, 2)
	for _, row := range g {
		require.Equal(t, []rune{'.', '.', '.'}, row)
	}
	// rows must not alias each other
	g.Set(grid.Pos{Row: 0, Col: 0}, '#')
	require.Equal(t, '.', g.At(grid.Pos{Row: 1, Col: 0}))

	sq := grid.Square(7, 4)
	h, w := sq.Size()
	require.Equal(t, 4, h)
	require.Equal(t, 4, w)
	require.Equal(t, 16, sq.Count2D(func(v int) bool { return v == 7 }))
}

func TestNewFunc_Independent(t *testing.T) {
	g := grid.NewFunc(2, 2, func(p grid.Pos) []int { return []int{p.Row, p.Col} })
	g.At(grid.Pos{Row: 0, Col: 0})[0] = 99
	require.Equal(t, []int{0, 1}, g.At(grid.Pos{Row: 0, Col: 1}))
	require.Equal(t, []int{1, 1}, g[1][1])
}

// TestFromRows_Errors verifies FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"Ok", [][]int{{1, 2}, {3, 4}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.FromRows(tc.rows)
			if tc.err == nil {
				require.NoError(t, err)
				require.Equal(t, grid.Grid[int](tc.rows), g)
				return
			}
			require.True(t, errors.Is(err, tc.err), "FromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			require.Nil(t, g)
		})
	}
}

//----------------------------------------------------------------------------//
// Access and the hard-failure contract
//----------------------------------------------------------------------------//

func TestAccess_RowAndPos(t *testing.T) {
	g := grid.Grid[int]{{1, 2, 3}, {4, 5, 6}}
	require.Equal(t, []int{4, 5, 6}, g.Row(1))
	require.Equal(t, 6, g.At(grid.Pos{Row: 1, Col: 2}))

	*g.Ptr(grid.Pos{Row: 0, Col: 1}) += 10
	require.Equal(t, 12, g[0][1])

	g.Row(0)[0] = -1
	require.Equal(t, -1, g.At(grid.Pos{}))
}

// TestAccess_OutOfRangePanics contrasts direct indexing (panics) with
// navigation (soft failure) on the same coordinates.
func TestAccess_OutOfRangePanics(t *testing.T) {
	g := grid.New(0, 2, 2)
	require.Panics(t, func() { g.Row(2) })
	require.Panics(t, func() { g.At(grid.Pos{Row: 0, Col: 2}) })
	require.Panics(t, func() { g.At(grid.Pos{Row: 2, Col: 0}) })
	require.Panics(t, func() { g.Set(grid.Pos{Row: 5, Col: 5}, 1) })
	require.Panics(t, func() { g.Ptr(grid.Pos{Row: -1, Col: 0}) })

	require.NotPanics(t, func() {
		_, ok := g.Get2D(grid.Pos{Row: 1, Col: 1}, dirEast)
		require.False(t, ok)
	})
}

//----------------------------------------------------------------------------//
// Transpose
//----------------------------------------------------------------------------//

func TestTranspose(t *testing.T) {
	g := grid.Grid[int]{{1, 2, 3}, {4, 5, 6}}
	tr := g.Transpose()
	want := grid.Grid[int]{{1, 4}, {2, 5}, {3, 6}}
	if diff := cmp.Diff(want, tr); diff != "" {
		t.Fatalf("Transpose mismatch (-want +got):\n%s", diff)
	}
	for p := range g.Positions().All() {
		require.Equal(t, g.At(p), tr.At(grid.Pos{Row: p.Col, Col: p.Row}))
	}
}

func TestTranspose_Involution(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 4}, {6, 6}}
	for _, s := range shapes {
		g := grid.NewFunc(s[0], s[1], func(p grid.Pos) int { return p.Row*100 + p.Col })
		back := g.Transpose().Transpose()
		require.True(t, grid.Equal(g, back), "shape %v", s)
		if diff := cmp.Diff(g, back); diff != "" {
			t.Fatalf("shape %v (-want +got):\n%s", s, diff)
		}
	}
}

func TestTranspose_EmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "recovered %v", r)
		require.ErrorIs(t, err, grid.ErrEmptyGrid)
	}()
	grid.Grid[int]{}.Transpose()
}

//----------------------------------------------------------------------------//
// Clone, Equal, Render
//----------------------------------------------------------------------------//

func TestCloneAndEqual(t *testing.T) {
	g := grid.Grid[rune]{[]rune("ab"), []rune("cd")}
	c := g.Clone()
	require.True(t, grid.Equal(g, c))
	c[0][0] = 'z'
	require.False(t, grid.Equal(g, c))
	require.Equal(t, 'a', g[0][0])

	require.False(t, grid.Equal(g, grid.Grid[rune]{[]rune("ab")}))
	require.False(t, grid.Equal(g, grid.Grid[rune]{[]rune("ab"), []rune("c")}))
}

func TestRender(t *testing.T) {
	g := grid.Grid[bool]{{true, false}, {false, true}}
	out := grid.Render(g, func(b bool) rune {
		if b {
			return '#'
		}
		return '.'
	})
	require.Equal(t, "#.\n.#\n", out)
}
