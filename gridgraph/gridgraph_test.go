package gridgraph_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/parse"
)

func isHash(r rune) bool { return r == '#' }

// mustGraph builds a GridGraph over text rows or fails the test.
func mustGraph(t testing.TB, text string, conn gridgraph.Connectivity) *gridgraph.GridGraph[rune] {
	t.Helper()
	gg, err := gridgraph.New(parse.Map(text).Collect(), isHash, conn)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return gg
}

//----------------------------------------------------------------------------//
// New
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid grid.Grid[int]
		err  error
	}{
		{"EmptyRows", grid.Grid[int]{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", grid.Grid[int]{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", grid.Grid[int]{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.grid, func(v int) bool { return v > 0 }, gridgraph.Conn4)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	gg := mustGraph(t, "...\n...\n", gridgraph.Conn4)
	if got := gg.Coordinate(4); got != (grid.Pos{Row: 1, Col: 1}) {
		t.Errorf("Coordinate(4) = %v; want (1,1)", got)
	}
	if got := gg.Coordinate(2); got != (grid.Pos{Row: 0, Col: 2}) {
		t.Errorf("Coordinate(2) = %v; want (0,2)", got)
	}
}

func TestNeighbors(t *testing.T) {
	g4 := mustGraph(t, "...\n...\n", gridgraph.Conn4)
	g8 := mustGraph(t, "...\n...\n", gridgraph.Conn8)
	if n := len(g4.Neighbors(grid.Pos{Row: 0, Col: 1})); n != 3 {
		t.Errorf("Conn4 neighbours = %d; want 3", n)
	}
	if n := len(g8.Neighbors(grid.Pos{Row: 0, Col: 1})); n != 5 {
		t.Errorf("Conn8 neighbours = %d; want 5", n)
	}
}

// TestNeighbors_MatchComponents checks that Neighbors and ConnectedComponents
// walk the same neighbourhood, the one given to New.
func TestNeighbors_MatchComponents(t *testing.T) {
	corner, diag := grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: 1, Col: 1}
	for _, tc := range []struct {
		conn      gridgraph.Connectivity
		touching  bool
		wantComps int
	}{
		{gridgraph.Conn4, false, 2},
		{gridgraph.Conn8, true, 1},
	} {
		gg := mustGraph(t, "#.\n.#\n", tc.conn)
		if got := gg.Connectivity(); got != tc.conn {
			t.Errorf("Connectivity() = %v; want %v", got, tc.conn)
		}
		if got := slices.Contains(gg.Neighbors(corner), diag); got != tc.touching {
			t.Errorf("%v: diagonal in Neighbors = %v; want %v", tc.conn, got, tc.touching)
		}
		if n := len(gg.ConnectedComponents()); n != tc.wantComps {
			t.Errorf("%v: components = %d; want %d", tc.conn, n, tc.wantComps)
		}
	}
}

//----------------------------------------------------------------------------//
// ConnectedComponents
//----------------------------------------------------------------------------//

// TestConnectedComponents_Conn4 checks ordering and membership.
//
//	##..#
//	#...#
//	..#..
func TestConnectedComponents_Conn4(t *testing.T) {
	gg := mustGraph(t, "##..#\n#...#\n..#..\n", gridgraph.Conn4)
	comps := gg.ConnectedComponents()
	want := [][]grid.Pos{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}},
		{{Row: 0, Col: 4}, {Row: 1, Col: 4}},
		{{Row: 2, Col: 2}},
	}
	if len(comps) != len(want) {
		t.Fatalf("got %d components; want %d", len(comps), len(want))
	}
	for i := range want {
		if len(comps[i]) != len(want[i]) {
			t.Fatalf("component %d = %v; want %v", i, comps[i], want[i])
		}
		for j := range want[i] {
			if comps[i][j] != want[i][j] {
				t.Errorf("component %d = %v; want %v", i, comps[i], want[i])
				break
			}
		}
	}
}

// TestConnectedComponents_Diagonal contrasts Conn4 and Conn8 on touching corners.
func TestConnectedComponents_Diagonal(t *testing.T) {
	text := "#...#\n.#.#.\n..#..\n.#.#.\n#...#\n"
	if n := len(mustGraph(t, text, gridgraph.Conn4).ConnectedComponents()); n != 9 {
		t.Errorf("Conn4 components = %d; want 9", n)
	}
	comps := mustGraph(t, text, gridgraph.Conn8).ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 9 {
		t.Errorf("Conn8 components = %v; want one of size 9", comps)
	}
}

func TestConnectedComponents_NoLand(t *testing.T) {
	if comps := mustGraph(t, "...\n...\n", gridgraph.Conn8).ConnectedComponents(); len(comps) != 0 {
		t.Errorf("components = %v; want none", comps)
	}
}

func TestLabels(t *testing.T) {
	gg := mustGraph(t, "#.#\n#..\n", gridgraph.Conn4)
	want := grid.Grid[int]{{0, -1, 1}, {0, -1, -1}}
	if got := gg.Labels(); !grid.Equal(got, want) {
		t.Errorf("Labels = %v; want %v", got, want)
	}
}

//----------------------------------------------------------------------------//
// ExpandIsland
//----------------------------------------------------------------------------//

// TestExpandIsland_BasicLine: "#.#" needs the middle cell converted.
func TestExpandIsland_BasicLine(t *testing.T) {
	gg := mustGraph(t, "#.#", gridgraph.Conn4)
	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	want := []grid.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	if len(path) != len(want) {
		t.Fatalf("path = %v; want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path = %v; want %v", path, want)
			break
		}
	}
}

// TestExpandIsland_Shortest checks cost and path shape on a 3×5 map.
func TestExpandIsland_Shortest(t *testing.T) {
	gg := mustGraph(t, "##..#\n#...#\n..#..\n", gridgraph.Conn4)
	comps := gg.ConnectedComponents()

	cases := []struct {
		src, dst, cost int
	}{
		{0, 1, 2},
		{0, 2, 2},
		{1, 2, 2},
		{2, 2, 0},
	}
	for _, tc := range cases {
		path, cost, err := gg.ExpandIsland(tc.src, tc.dst)
		if err != nil {
			t.Fatalf("ExpandIsland(%d,%d) error: %v", tc.src, tc.dst, err)
		}
		if cost != tc.cost {
			t.Errorf("ExpandIsland(%d,%d) cost = %d; want %d", tc.src, tc.dst, cost, tc.cost)
		}
		if !contains(comps[tc.src], path[0]) || !contains(comps[tc.dst], path[len(path)-1]) {
			t.Errorf("ExpandIsland(%d,%d) path %v does not join the components", tc.src, tc.dst, path)
		}
		water := 0
		for i, p := range path {
			if !gg.IsLand(p) {
				water++
			}
			if i > 0 && !contains(gg.Neighbors(path[i-1]), p) {
				t.Errorf("path step %v -> %v is not adjacent", path[i-1], p)
			}
		}
		if water != cost {
			t.Errorf("path %v converts %d cells; cost says %d", path, water, cost)
		}
	}
}

func TestExpandIsland_BadIndex(t *testing.T) {
	gg := mustGraph(t, "#.#", gridgraph.Conn4)
	for _, pair := range [][2]int{{-1, 0}, {0, 2}, {5, 5}} {
		if _, _, err := gg.ExpandIsland(pair[0], pair[1]); !errors.Is(err, gridgraph.ErrComponentIndex) {
			t.Errorf("ExpandIsland(%v) error = %v; want ErrComponentIndex", pair, err)
		}
	}
}

func contains(ps []grid.Pos, p grid.Pos) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
