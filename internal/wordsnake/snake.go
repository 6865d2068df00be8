package wordsnake

// MoveResult describes the outcome of one Body.Move.
type MoveResult struct {
	NewHead       Cell
	SelfCollision bool
	OutOfBounds   bool
}

// Body is the snake: an ordered list of cells with the head at index 0.
type Body struct {
	cells   []Cell
	heading Direction
	width   int
	height  int

	// Cell freed by the last successful move; Grow re-occupies it.
	vacated    Cell
	hasVacated bool
}

// NewBody creates a straight snake of the given length with its head at
// head, trailing away from heading.
func NewBody(head Cell, length int, heading Direction, width, height int) *Body {
	length = max(1, length)
	cells := make([]Cell, length)
	cells[0] = head
	back := heading.Opposite()
	for i := 1; i < length; i++ {
		cells[i] = cells[i-1].Add(back)
	}
	return &Body{
		cells:   cells,
		heading: heading,
		width:   width,
		height:  height,
	}
}

// Move advances the snake one cell in direction d.
// A direction that would turn the head straight back into the second
// segment is ignored and the current heading is kept. On a collision the
// body is left unchanged and the result reports why.
func (b *Body) Move(d Direction) MoveResult {
	if len(b.cells) >= 2 && b.cells[0].Add(d) == b.cells[1] {
		d = b.heading
	}
	b.heading = d

	newHead := b.cells[0].Add(d)
	res := MoveResult{NewHead: newHead}

	if !newHead.In(b.width, b.height) {
		res.OutOfBounds = true
		return res
	}

	// The tail moves out of the way this step, so it can't be hit
	for _, c := range b.cells[:len(b.cells)-1] {
		if c == newHead {
			res.SelfCollision = true
			return res
		}
	}

	tail := b.cells[len(b.cells)-1]
	copy(b.cells[1:], b.cells[:len(b.cells)-1])
	b.cells[0] = newHead
	b.vacated = tail
	b.hasVacated = true

	return res
}

// Grow appends one tail segment behind the snake, opposite to the
// direction of movement.
func (b *Body) Grow() {
	if b.hasVacated {
		b.cells = append(b.cells, b.vacated)
		b.hasVacated = false
		return
	}
	tail := b.cells[len(b.cells)-1]
	b.cells = append(b.cells, tail.Add(b.heading.Opposite()))
}

// Head returns the head cell.
func (b *Body) Head() Cell {
	return b.cells[0]
}

// Heading returns the current direction of movement.
func (b *Body) Heading() Direction {
	return b.heading
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the segments, head first.
func (b *Body) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}
