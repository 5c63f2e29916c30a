// Package pipeline provides a runner for an ordered list of jobs.
//
// A job is anything implementing Run(ctx) error. The pipeline owns the order of the jobs, not their side
// effects, and offers two execution strategies over the same list. Sequence runs the jobs one after the other
// in list order and stops on the first error. Parallel starts every job at once and waits for all of them to
// return before reporting, so no job is left running behind the caller.
//
// Errors returned by jobs are never wrapped: the error returned by Sequence or Parallel is exactly the error
// returned by the failing job. A pipeline holds no lock around its jobs, so several runs of the same pipeline
// can be in flight at the same time. Jobs sharing mutable state must synchronise it themselves.
//
// Options (see the model package) observe every run and every job. They are used to measure job durations,
// to draw the graph of a run and to log what happened.
package pipeline
