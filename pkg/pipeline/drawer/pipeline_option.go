package drawer

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-toolbox/pkg/pipeline/measure"
	"github.com/askiada/go-toolbox/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	mu sync.Mutex
	m  measure.Measure
}

func (pd *pipelineDrawer) New() error {
	return nil
}

func (pd *pipelineDrawer) BeforeRun(run *model.RunInfo) error {
	return nil
}

func (pd *pipelineDrawer) OnJobStart(run *model.RunInfo, job model.JobInfo) error {
	return nil
}

func (pd *pipelineDrawer) OnJobEnd(run *model.RunInfo, job model.JobInfo, elapsed time.Duration, jobErr error) error {
	return nil
}

// AfterRun draws the graph of the run which just ended.
func (pd *pipelineDrawer) AfterRun(run *model.RunInfo, elapsed time.Duration, runErr error) error {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	err := pd.Reset()
	if err != nil {
		return errors.Wrap(err, "unable to reset drawer")
	}

	err = addRun(pd.Drawer, run)
	if err != nil {
		return errors.Wrap(err, "unable to add run to drawer")
	}

	if pd.m != nil {
		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = pd.SetTotalTime(model.EndName, elapsed)
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

func (pd *pipelineDrawer) Finish() error {
	return nil
}

// addRun adds the vertices and edges of run: a chain for a sequence, a fan-out/fan-in for a parallel run.
func addRun(drw Drawer, run *model.RunInfo) error {
	err := drw.AddStep(model.StartName)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}

	err = drw.AddStep(model.EndName)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	for _, job := range run.Jobs {
		err = drw.AddStep(job.Name)
		if err != nil {
			return err
		}
	}

	if len(run.Jobs) == 0 {
		return drw.AddLink(model.StartName, model.EndName)
	}

	switch run.Mode {
	case model.ParallelMode:
		for _, job := range run.Jobs {
			err = drw.AddLink(model.StartName, job.Name)
			if err != nil {
				return err
			}

			err = drw.AddLink(job.Name, model.EndName)
			if err != nil {
				return err
			}
		}
	default:
		parent := model.StartName
		for _, job := range run.Jobs {
			err = drw.AddLink(parent, job.Name)
			if err != nil {
				return err
			}

			parent = job.Name
		}

		err = drw.AddLink(parent, model.EndName)
		if err != nil {
			return err
		}
	}

	return nil
}

// PipelineDrawer draws the graph of every run of the pipeline. measure is optional, when set the graph
// shows the average duration of each job.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drawer, m: measure}
}
