package clawome

import (
	"github.com/CodingLucasLi/Clawome/nodemap"
)

// ErrNodeNotFound is re-exported so callers outside this module can
// errors.Is against it without importing nodemap directly.
var ErrNodeNotFound = nodemap.ErrNodeNotFound

// Resolve is spec.md §6's second external operation: a pure lookup that
// translates an agent-supplied hierarchical identifier into the concrete
// selector an action collaborator drives.
func Resolve(m nodemap.NodeMap, id string) (nodemap.Entry, error) {
	return nodemap.Resolve(m, id)
}
