package drawer

import (
	"time"

	"github.com/askiada/go-toolbox/pkg/pipeline/measure"
)

// Drawer is an interface that defines the methods for drawing a pipeline run.
type Drawer interface {
	// Reset drops the graph of the previous run.
	Reset() error
	// AddStep adds a vertex to the graph.
	AddStep(stepName string) error
	// AddLink adds an edge between parent and children steps.
	AddLink(parentStepName, childrenStepName string) error
	// SetTotalTime sets the total time label of the step.
	SetTotalTime(stepName string, totalTime time.Duration) error
	// AddMeasure decorates the graph with the durations found in measure.
	AddMeasure(measure measure.Measure) error
	// Draw writes the graph.
	Draw() error
}
