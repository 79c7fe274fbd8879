package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// digit decodes '0'..'9' to its value; anything else is malformed.
func digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func encodeDigit(v int) rune { return rune('0' + v) }

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty, ragged and malformed inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", gridgraph.ErrEmptyGrid},
		{"LeadingBlankLine", "\n123", gridgraph.ErrDimensionMismatch},
		{"BlankLineInside", "12\n\n12", gridgraph.ErrDimensionMismatch},
		{"Ragged", "123\n12\n123", gridgraph.ErrDimensionMismatch},
		{"RaggedLonger", "12\n123", gridgraph.ErrDimensionMismatch},
		{"Malformed", "123\n1x3", gridgraph.ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.Parse(tc.text, digit)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
			if g != nil {
				t.Errorf("Parse(%q) returned a partial grid", tc.text)
			}
		})
	}
}

// TestNew_Errors mirrors the Parse rules for already-decoded rows.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"Nil", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", [][]int{{}, {}}, gridgraph.ErrEmptyGrid},
		{"LeadingEmptyRow", [][]int{{}, {1, 2}}, gridgraph.ErrDimensionMismatch},
		{"Ragged", [][]int{{1, 2}, {1}}, gridgraph.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
			if g != nil {
				t.Errorf("New(%v) returned a partial grid", tc.rows)
			}
		})
	}
}

// TestParse_Dimensions checks Width/Height and tolerance of CRLF and a trailing newline.
func TestParse_Dimensions(t *testing.T) {
	g, err := gridgraph.Parse("123\r\n456\r\n", digit)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("dims = %dx%d; want 3x2", g.Width, g.Height)
	}
	if v := g.At(gridgraph.Coord{Row: 1, Col: 2}); v != 6 {
		t.Errorf("At(1,2) = %d; want 6", v)
	}
}

// TestParse_RoundTrip ensures Parse(Format(g)) reproduces g exactly.
func TestParse_RoundTrip(t *testing.T) {
	const text = "2413\n3215\n3255"
	g, err := gridgraph.Parse(text, digit)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out := g.Format(encodeDigit)
	if out != text {
		t.Fatalf("Format = %q; want %q", out, text)
	}
	g2, err := gridgraph.Parse(out, digit)
	if err != nil {
		t.Fatalf("re-Parse error: %v", err)
	}
	g.Cells(func(c gridgraph.Coord, v int) {
		if w := g2.At(c); w != v {
			t.Errorf("cell %v = %d after round trip; want %d", c, w, v)
		}
	})
}

//----------------------------------------------------------------------------//
// Bounds and Neighbor Tests
//----------------------------------------------------------------------------//

// TestGet_Bounds checks Get on a 3×2 grid for valid and invalid coordinates.
func TestGet_Bounds(t *testing.T) {
	g, _ := gridgraph.New([][]int{
		{0, 1, 2},
		{3, 4, 5},
	})

	valid := []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	for _, c := range valid {
		if _, ok := g.Get(c); !ok {
			t.Errorf("Get(%v) ok=false; want true", c)
		}
	}
	invalid := []gridgraph.Coord{{Row: 0, Col: -1}, {Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: -1, Col: 2}}
	for _, c := range invalid {
		if v, ok := g.Get(c); ok || v != 0 {
			t.Errorf("Get(%v) = %d,%v; want 0,false", c, v, ok)
		}
	}
}

// TestNeighbor covers every direction from a corner and from the center.
func TestNeighbor(t *testing.T) {
	g, _ := gridgraph.New([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	corner := gridgraph.Coord{}
	center := gridgraph.Coord{Row: 1, Col: 1}

	if _, ok := g.Neighbor(corner, gridgraph.North); ok {
		t.Error("Neighbor(corner, North) should be out of bounds")
	}
	if _, ok := g.Neighbor(corner, gridgraph.West); ok {
		t.Error("Neighbor(corner, West) should be out of bounds")
	}
	want := map[gridgraph.Direction]gridgraph.Coord{
		gridgraph.North: {Row: 0, Col: 1},
		gridgraph.East:  {Row: 1, Col: 2},
		gridgraph.South: {Row: 2, Col: 1},
		gridgraph.West:  {Row: 1, Col: 0},
	}
	for d, w := range want {
		got, ok := g.Neighbor(center, d)
		if !ok || got != w {
			t.Errorf("Neighbor(center, %v) = %v,%v; want %v,true", d, got, ok, w)
		}
	}
	if n := len(g.Neighbors(corner)); n != 2 {
		t.Errorf("len(Neighbors(corner)) = %d; want 2", n)
	}
}

// TestDirection_Turns checks Opposite/TurnLeft/TurnRight consistency.
func TestDirection_Turns(t *testing.T) {
	for _, d := range gridgraph.Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: Opposite twice != identity", d)
		}
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("%v: TurnLeft then TurnRight != identity", d)
		}
		if d.TurnRight().TurnRight() != d.Opposite() {
			t.Errorf("%v: two right turns != Opposite", d)
		}
		if d.Vertical() == d.TurnLeft().Vertical() {
			t.Errorf("%v: a turn must change axis", d)
		}
	}
}

// TestSetAndClone ensures Clone is deep and Set rejects out-of-range writes.
func TestSetAndClone(t *testing.T) {
	g, _ := gridgraph.New([][]int{{1, 2}, {3, 4}})
	c := g.Clone()
	if !c.Set(gridgraph.Coord{Row: 0, Col: 0}, 9) {
		t.Fatal("Set in bounds returned false")
	}
	if g.At(gridgraph.Coord{}) != 1 {
		t.Error("Clone shares storage with original")
	}
	if c.Set(gridgraph.Coord{Row: 5, Col: 5}, 9) {
		t.Error("Set out of bounds returned true")
	}
	if found := c.Find(func(v int) bool { return v == 9 }); len(found) != 1 {
		t.Errorf("Find(9) = %v; want one match", found)
	}
}
