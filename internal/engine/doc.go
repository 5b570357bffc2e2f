// Package engine drives step generators at a human-watchable pace.
//
// A Controller owns at most one run at a time. Each run executes its
// generator on a dedicated goroutine; the generator talks back through the
// algo.Steps contract, which is where pacing, pausing and cancellation
// happen:
//
//	Checkpoint  blocks on the pause Gate, returns anim.ErrCancelled once
//	            the run's context is done
//	Emit        stamps the frame with the current counters, hands it to
//	            observers, then sleeps one Clock tick
//
// State transitions follow
//
//	Idle → Running ⇄ Paused → Completed
//	          └──────┴──→ Cancelled → Idle
//
// Frames and transitions reach observers in the order they happened, one
// delivery at a time, even when a transition is triggered from another
// goroutine or from inside an observer.
//
// A reset bumps the run generation, so a generator still unwinding from an
// aborted run can no longer publish frames or touch the counters of the
// next one.
package engine
