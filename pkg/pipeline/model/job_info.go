package model

import "strconv"

// Mode is the execution strategy of a run.
type Mode string

const (
	SequenceMode Mode = "sequence"
	ParallelMode Mode = "parallel"
)

// Names of the virtual vertices surrounding the jobs of a run.
const (
	StartName = "start"
	EndName   = "end"
)

// JobInfo describes a job of a pipeline.
type JobInfo struct {
	Name  string
	Index int
}

// DefaultJobName is the name given to a job which was not named by the caller.
func DefaultJobName(index int) string {
	return "job-" + strconv.Itoa(index)
}

// RunInfo describes one invocation of Sequence or Parallel.
type RunInfo struct {
	ID   string
	Mode Mode
	Jobs []JobInfo
}
