package algo

import "fmt"

// NodeNotFoundError reports a requested endpoint that is not a node of the graph.
// Which is "start" or "end".
type NodeNotFoundError struct {
	Which string
	Name  string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("%s location %q does not exist", e.Which, e.Name)
}

// NoPathError reports that start and end lie in different components.
type NoPathError struct {
	Start string
	End   string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path between %q and %q", e.Start, e.End)
}

// DataIntegrityError reports store data the graph cannot be built from,
// such as a link to a location that does not exist.
type DataIntegrityError struct {
	Link   [2]string // offending link endpoints, empty for location problems
	Name   string    // offending location name
	Reason string
}

func (e *DataIntegrityError) Error() string {
	if e.Link[0] != "" || e.Link[1] != "" {
		return fmt.Sprintf("data integrity: link %q-%q: %s", e.Link[0], e.Link[1], e.Reason)
	}
	return fmt.Sprintf("data integrity: location %q: %s", e.Name, e.Reason)
}
