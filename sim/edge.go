package sim

// HookPosBeforeEdge is a hook position that triggers before a clock edge is
// driven into the model.
var HookPosBeforeEdge = &HookPos{Name: "BeforeEdge"}

// HookPosAfterEdge is a hook position that triggers after a clock edge has
// been driven and the model has been evaluated.
var HookPosAfterEdge = &HookPos{Name: "AfterEdge"}

// EdgeInfo describes one clock edge. It is carried as the item of edge hook
// contexts.
type EdgeInfo struct {
	// Cycle is the index of the cycle the edge belongs to, starting at 0.
	Cycle uint64

	// Rising is true for rising edges and false for falling edges.
	Rising bool

	// Time is the simulated time of the edge.
	Time VTimeInSec
}
