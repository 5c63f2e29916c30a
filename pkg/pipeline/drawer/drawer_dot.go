package drawer

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-toolbox/pkg/pipeline/measure"
	"github.com/askiada/go-toolbox/pkg/pipeline/model"
)

// DOTDrawer is a drawer that writes the graph of a run in the DOT language.
type DOTDrawer struct {
	graph    graph.Graph[string, string]
	fileName string
	wrt      io.Writer
}

// NewDOTDrawer creates a new DOT drawer writing to fileName. The file is truncated on every Draw.
func NewDOTDrawer(fileName string) *DOTDrawer {
	return &DOTDrawer{
		fileName: fileName,
		graph:    newGraph(),
	}
}

// NewDOTDrawerWriter creates a new DOT drawer writing to wrt. Every Draw appends a graph.
func NewDOTDrawerWriter(wrt io.Writer) *DOTDrawer {
	return &DOTDrawer{
		wrt:   wrt,
		graph: newGraph(),
	}
}

func newGraph() graph.Graph[string, string] {
	return graph.New(graph.StringHash, graph.Directed(), graph.Weighted())
}

// Reset drops every vertex and edge.
func (d *DOTDrawer) Reset() error {
	d.graph = newGraph()

	return nil
}

// AddStep adds a step to the pipeline graph. Adding a step twice is a no-op.
func (d *DOTDrawer) AddStep(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrap(err, "unable to add vertex")
	}

	return nil
}

// AddLink adds a link between parent and children steps. Adding a link twice is a no-op.
func (d *DOTDrawer) AddLink(parentName, childrenName string) error {
	err := d.graph.AddEdge(parentName, childrenName)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childrenName)
	}

	return nil
}

// Draw writes the graph to the file or the writer of the drawer.
func (d *DOTDrawer) Draw() error {
	wrt := d.wrt

	if wrt == nil {
		file, err := os.Create(d.fileName)
		if err != nil {
			return errors.Wrapf(err, "unable to create file %s", d.fileName)
		}
		defer file.Close()

		wrt = file
	}

	err := dot(d.graph, wrt, GraphAttribute("rankdir", "LR"))
	if err != nil {
		return errors.Wrapf(err, "unable to write dot graph %s", d.fileName)
	}

	return nil
}

// SetTotalTime sets the total time for the step.
func (d *DOTDrawer) SetTotalTime(stepName string, totalTime time.Duration) error {
	_, properties, err := d.graph.VertexWithProperties(stepName)
	if err != nil {
		return errors.Wrapf(err, "unable to get %s vertex properties", stepName)
	}

	properties.Attributes["xlabel"] = "total: " + totalTime.String()

	return nil
}

const maxRGB = 240

// AddMeasure labels every step with its average duration and colours the edge leading to it, from blue for
// the fastest step to red for the slowest one. Edge weights are set so that the shortest path from start
// to end is the slowest one, see CriticalPath.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	avgs := make(map[string]time.Duration)

	var minValue, maxValue time.Duration

	first := true

	for name, step := range msr.AllMetrics() {
		if _, _, err := d.graph.VertexWithProperties(name); err != nil {
			continue
		}

		if name == model.EndName || step.Total() == 0 {
			continue
		}

		avg := step.AVGDuration()
		avgs[name] = avg

		if first || avg < minValue {
			minValue = avg
		}

		if first || avg > maxValue {
			maxValue = avg
		}

		first = false
	}

	for name, avg := range avgs {
		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(avg-minValue) / float64(maxValue-minValue)
		}

		red := math.Round(maxRGB * fraction)
		blue := math.Round(maxRGB - maxRGB*fraction)

		colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		err = d.updateStep(name, avg, msr.GetMetric(name), colour.ToHEX().String(), int((maxValue - avg).Microseconds()))
		if err != nil {
			return errors.Wrapf(err, "unable to update step %s", name)
		}
	}

	return nil
}

func (d *DOTDrawer) updateStep(name string, avg time.Duration, metric measure.Metric, colour string, weight int) error {
	_, properties, err := d.graph.VertexWithProperties(name)
	if err != nil {
		return errors.Wrap(err, "unable to get vertex properties")
	}

	properties.Attributes["xlabel"] = fmt.Sprintf("avg: %s, runs: %d", avg, metric.Total())
	if metric.Failures() > 0 {
		properties.Attributes["xlabel"] += fmt.Sprintf(", failures: %d", metric.Failures())
	}

	predecessors, err := d.graph.PredecessorMap()
	if err != nil {
		return errors.Wrap(err, "unable to get predecessor map")
	}

	for parent := range predecessors[name] {
		err := d.graph.UpdateEdge(parent, name,
			graph.EdgeAttribute("label", avg.String()),
			graph.EdgeAttribute("fontcolor", "blue"),
			graph.EdgeAttribute("color", colour),
			graph.EdgeWeight(weight),
		)
		if err != nil {
			return errors.Wrap(err, "unable to update edge")
		}
	}

	return nil
}

// CriticalPath returns the slowest path from start to end, according to the last measure added.
func (d *DOTDrawer) CriticalPath() ([]string, error) {
	path, err := graph.ShortestPath(d.graph, model.StartName, model.EndName)
	if err != nil {
		return nil, errors.Wrap(err, "unable to find critical path")
	}

	return path, nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot(g graph.Graph[string, string], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the [dot] function.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

// generateDOT describes the graph with vertices and edges sorted by name, so the output is stable.
func generateDOT(gra graph.Graph[string, string], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]string, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}

	sort.Strings(vertices)

	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string)

		for key, value := range sourceProperties.Attributes {
			if key == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, value)

				continue
			}

			sourceAttributes[key] = value
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		})

		targets := make([]string, 0, len(adjacencyMap[vertex]))
		for target := range adjacencyMap[vertex] {
			targets = append(targets, target)
		}

		sort.Strings(targets)

		for _, target := range targets {
			edge := adjacencyMap[vertex][target]
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         target,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
