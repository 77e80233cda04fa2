package cycler

const (
	Left  = -1
	Right = 1
)

// Next returns the index after current when moving in direction, wrapping
// around count players in either sense.
func Next(current, count, direction int) int {
	return ((current+direction)%count + count) % count
}

// Skip moves past the next player.
func Skip(current, count, direction int) int {
	return Next(Next(current, count, direction), count, direction)
}

func Reverse(direction int) int {
	switch direction {
	case Right:
		return Left
	case Left:
		return Right
	}
	return direction
}
