package dom

import "github.com/pkg/errors"

// DOM exception kinds surfaced by tree mutation. Traversal itself never
// produces these; running out of nodes is not an error.
var (
	ErrHierarchyRequest = errors.New("hierarchy request error")
	ErrNotFound         = errors.New("not found error")
)
