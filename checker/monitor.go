package checker

import "time"

// CheckMonitor provides hooks to observe a comparison as it runs.
// Implement this interface to surface progress or timing diagnostics;
// it has no effect on the computed score.
type CheckMonitor interface {
	Start(origPath, candidatePath string)
	AfterLoad(path string, chars int)
	AfterTokenize(path string, tokens int)
	AfterVectorize(features int)
	Finish(score float64, elapsed time.Duration)
}

// noopMonitor is a no-op implementation of CheckMonitor
type noopMonitor struct{}

var _ CheckMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ string)                 {}
func (n *noopMonitor) AfterLoad(_ string, _ int)         {}
func (n *noopMonitor) AfterTokenize(_ string, _ int)     {}
func (n *noopMonitor) AfterVectorize(_ int)              {}
func (n *noopMonitor) Finish(_ float64, _ time.Duration) {}
