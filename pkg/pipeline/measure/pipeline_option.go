package measure

import (
	"time"

	"github.com/askiada/go-toolbox/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.EndName)

	return nil
}

func (pm *pipelineMeasure) BeforeRun(run *model.RunInfo) error {
	for _, job := range run.Jobs {
		pm.AddMetric(job.Name)
	}

	return nil
}

func (pm *pipelineMeasure) OnJobStart(run *model.RunInfo, job model.JobInfo) error {
	return nil
}

func (pm *pipelineMeasure) OnJobEnd(run *model.RunInfo, job model.JobInfo, elapsed time.Duration, jobErr error) error {
	mt := pm.AddMetric(job.Name)
	mt.AddDuration(elapsed)

	if jobErr != nil {
		mt.AddFailure()
	}

	return nil
}

func (pm *pipelineMeasure) AfterRun(run *model.RunInfo, elapsed time.Duration, runErr error) error {
	pm.AddMetric(model.EndName).SetTotalDuration(elapsed)

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}

// PipelineMeasure records the duration of every job of the pipeline into measure.
// The duration of the last run is stored in the metric named model.EndName.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
