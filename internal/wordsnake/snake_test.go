package wordsnake

import (
	"slices"
	"testing"
)

func TestNewBodyTrailsBehindHead(t *testing.T) {
	b := NewBody(Cell{X: 10, Y: 7}, 3, DirRight, 20, 15)

	want := []Cell{{10, 7}, {9, 7}, {8, 7}}
	if got := b.Cells(); !slices.Equal(got, want) {
		t.Errorf("Cells() = %v, expected %v", got, want)
	}
	if b.Heading() != DirRight {
		t.Errorf("Heading() = %v, expected right", b.Heading())
	}
}

func TestBodyMove(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want []Cell
	}{
		{"forward", DirRight, []Cell{{6, 5}, {5, 5}, {4, 5}}},
		{"turn up", DirUp, []Cell{{5, 4}, {5, 5}, {4, 5}}},
		{"turn down", DirDown, []Cell{{5, 6}, {5, 5}, {4, 5}}},
		{"reverse ignored", DirLeft, []Cell{{6, 5}, {5, 5}, {4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(Cell{X: 5, Y: 5}, 3, DirRight, 20, 15)
			res := b.Move(tt.dir)

			if res.OutOfBounds || res.SelfCollision {
				t.Fatalf("unexpected collision: %+v", res)
			}
			if got := b.Cells(); !slices.Equal(got, tt.want) {
				t.Errorf("Cells() = %v, expected %v", got, tt.want)
			}
			if res.NewHead != tt.want[0] {
				t.Errorf("NewHead = %v, expected %v", res.NewHead, tt.want[0])
			}
		})
	}
}

func TestBodyReverseKeepsHeading(t *testing.T) {
	b := NewBody(Cell{X: 5, Y: 5}, 2, DirUp, 20, 15)
	b.Move(DirDown)

	if b.Heading() != DirUp {
		t.Errorf("Heading() = %v after reversing, expected up", b.Heading())
	}
	if b.Head() != (Cell{X: 5, Y: 4}) {
		t.Errorf("Head() = %v, expected (5,4)", b.Head())
	}
}

func TestSingleSegmentCanReverse(t *testing.T) {
	b := NewBody(Cell{X: 5, Y: 5}, 1, DirRight, 20, 15)
	b.Move(DirLeft)

	if b.Head() != (Cell{X: 4, Y: 5}) {
		t.Errorf("Head() = %v, expected (4,5)", b.Head())
	}
}

func TestBodyOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		head Cell
		dir  Direction
	}{
		{"right edge", Cell{X: 19, Y: 5}, DirRight},
		{"top edge", Cell{X: 5, Y: 0}, DirUp},
		{"bottom edge", Cell{X: 5, Y: 14}, DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(tt.head, 2, DirRight, 20, 15)
			before := b.Cells()

			res := b.Move(tt.dir)
			if !res.OutOfBounds {
				t.Fatalf("expected out of bounds, got %+v", res)
			}
			if !slices.Equal(b.Cells(), before) {
				t.Errorf("body changed on collision: %v -> %v", before, b.Cells())
			}
		})
	}

	b := NewBody(Cell{X: 0, Y: 5}, 1, DirLeft, 20, 15)
	if res := b.Move(DirLeft); !res.OutOfBounds {
		t.Error("moving past the left edge should be out of bounds")
	}
}

func TestBodySelfCollision(t *testing.T) {
	// Head at (5,5) heading left, body curls down and back up:
	// (5,5) (6,5) (6,6) (5,6) (4,6)
	b := &Body{
		cells:   []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}},
		heading: DirLeft,
		width:   20,
		height:  15,
	}

	res := b.Move(DirDown)
	if !res.SelfCollision {
		t.Fatalf("expected self collision moving into (5,6), got %+v", res)
	}
	if b.Head() != (Cell{X: 5, Y: 5}) {
		t.Errorf("body should not move on collision, head = %v", b.Head())
	}
}

func TestBodyMoveIntoTailIsAllowed(t *testing.T) {
	// A 2x2 loop: the head chases the tail, which moves away this step
	b := &Body{
		cells:   []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}},
		heading: DirLeft,
		width:   20,
		height:  15,
	}

	res := b.Move(DirDown)
	if res.SelfCollision {
		t.Fatal("moving into the tail cell should not collide")
	}
	want := []Cell{{5, 6}, {5, 5}, {6, 5}, {6, 6}}
	if got := b.Cells(); !slices.Equal(got, want) {
		t.Errorf("Cells() = %v, expected %v", got, want)
	}
}

func TestBodyGrow(t *testing.T) {
	b := NewBody(Cell{X: 5, Y: 5}, 2, DirRight, 20, 15)
	b.Move(DirRight)
	b.Grow()

	want := []Cell{{6, 5}, {5, 5}, {4, 5}}
	if got := b.Cells(); !slices.Equal(got, want) {
		t.Errorf("after grow Cells() = %v, expected %v", got, want)
	}

	// A second grow without a move extends opposite to the heading
	b.Grow()
	if b.Len() != 4 || b.Cells()[3] != (Cell{X: 3, Y: 5}) {
		t.Errorf("second grow Cells() = %v", b.Cells())
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
	}
}
