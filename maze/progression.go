package maze

import "fmt"

// Progression is the generation state of a cell.
// The zero value is Pending, so a fresh labelling needs no initialization.
type Progression uint8

const (
	// Pending marks a cell the generator has not reached yet.
	Pending Progression = iota

	// Processing marks a cell the generator is currently working on.
	Processing

	// Processed marks a cell already connected to the maze.
	Processed
)

// String returns "pending", "processing" or "processed".
func (p Progression) String() string {
	switch p {
	case Pending:
		return "pending"
	case Processing:
		return "processing"
	case Processed:
		return "processed"
	default:
		return fmt.Sprintf("progression(%d)", uint8(p))
	}
}
