package layout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolvedReference is wrapped by every [*ReferenceError].
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrCycle is wrapped by every [*CycleError].
	ErrCycle = errors.New("dependency cycle")

	// ErrInvalidView is returned when the view constants cannot hold a
	// routed graph.
	ErrInvalidView = errors.New("invalid view")

	// ErrTooLarge is returned when a solution has more relationships than
	// the pass accepts.
	ErrTooLarge = errors.New("solution too large")

	// ErrDuplicateElement is returned when two solution entries carry the
	// same element name.
	ErrDuplicateElement = errors.New("duplicate element")
)

// MaxEdges bounds the relationships of one pass. It keeps channel counters
// and geometry arithmetic far from integer limits.
const MaxEdges = 1 << 20

// ReferenceError reports a relationship whose target cannot be found.
type ReferenceError struct {
	What string // "element", "cluster" or "dependency"
	Name string // the missing name
	From string // qualified name of the relationship, "element / version / relationship"
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("unresolved %s %q referenced by %s", e.What, e.Name, e.From)
}

func (e *ReferenceError) Unwrap() error { return ErrUnresolvedReference }

// CycleError reports elements that could not be placed because their
// relationships of one kind form a cycle.
type CycleError struct {
	Kind     Kind
	Elements []string // unplaced elements, sorted
	Edges    []string // relationships closing a cycle
}

func (e *CycleError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s cycle among elements %s", e.Kind, strings.Join(e.Elements, ", "))
	if len(e.Edges) > 0 {
		fmt.Fprintf(&b, " (via %s)", strings.Join(e.Edges, "; "))
	}
	return b.String()
}

func (e *CycleError) Unwrap() error { return ErrCycle }
