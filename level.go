package shapes

import "fmt"

// Level is the detail level of a shape. It controls how many recursive
// or iterative expansions a generator performs.
type Level int

// Level bounds, inclusive.
const (
	MinLevel Level = 1
	MaxLevel Level = 6
)

// Valid reports whether l is within [MinLevel, MaxLevel].
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

func (l Level) String() string {
	return fmt.Sprintf("L%d", int(l))
}

// Levels returns every valid level in ascending order.
func Levels() []Level {
	out := make([]Level, 0, MaxLevel-MinLevel+1)
	for l := MinLevel; l <= MaxLevel; l++ {
		out = append(out, l)
	}
	return out
}
