package cli

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/askiada/go-toolbox/internal/watch"
	"github.com/askiada/go-toolbox/pkg/pipeline"
	"github.com/askiada/go-toolbox/pkg/pipeline/drawer"
	"github.com/askiada/go-toolbox/pkg/pipeline/logger"
	"github.com/askiada/go-toolbox/pkg/pipeline/measure"
	"github.com/askiada/go-toolbox/pkg/pipeline/model"
)

const watchDebounce = 100 * time.Millisecond

type renderOptions struct {
	valuesFiles []string
	sets        []string
	outDir      string
	watch       bool
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [flags] FILE...",
		Short: "Render template files",
		Long: `Render every template file given as argument.

Placeholder values come from the render.values section of the config file, then from --values files, then
from --set flags, a later source overriding an earlier one. Nested values are flattened with underscores:
user.name is available as {{user_name}}. Keys of the config file are lower cased, use a values file for
case sensitive keys.

The modifiers upper, lower, title, trim, quote and repeat are always available.

Without --out the rendered templates are written to the standard output. With --parallel they are written
in the order the renders finish. With --out, two templates written to the same file are rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.valuesFiles, "values", "f", nil, "YAML file with placeholder values (can be repeated)")
	flags.StringArrayVar(&opts.sets, "set", nil, "placeholder value as key=value (can be repeated)")
	flags.StringVarP(&opts.outDir, "out", "o", "", "directory receiving the rendered files")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "render again whenever a template or a values file changes")
	flags.BoolP("parallel", "p", false, "render all the templates at the same time")
	flags.String("graph", "", "write the DOT graph of every run to this file")
	_ = a.v.BindPFlag("render.parallel", flags.Lookup("parallel"))
	_ = a.v.BindPFlag("render.graph", flags.Lookup("graph"))

	return cmd
}

func (a *app) render(cmd *cobra.Command, files []string, opts *renderOptions) error {
	renderOnce, err := a.prepareRender(cmd, files, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = renderOnce(ctx)
	if err != nil && !opts.watch {
		return err
	}

	if err != nil {
		a.log.Error("Render failed", zap.Error(err))
	}

	if !opts.watch {
		return nil
	}

	wtc, err := watch.New(watchDebounce, a.log)
	if err != nil {
		return errors.Wrap(err, "unable to create watcher")
	}
	defer wtc.Close()

	err = wtc.Add(append(append([]string{}, files...), opts.valuesFiles...)...)
	if err != nil {
		return errors.Wrap(err, "unable to watch files")
	}

	a.log.Info("Watching files", zap.Strings("files", files), zap.Strings("values", opts.valuesFiles))

	err = wtc.Run(ctx, renderOnce)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// prepareRender validates the flags and returns the function rendering every file once.
// Values files are read again on every call so that a watched values file is taken into account.
func (a *app) prepareRender(cmd *cobra.Command, files []string, opts *renderOptions) (func(ctx context.Context) error, error) {
	err := checkFiles(files, opts.outDir)
	if err != nil {
		return nil, err
	}

	sets, err := parseSet(opts.sets)
	if err != nil {
		return nil, err
	}

	configValues := flatten(a.v.GetStringMap("render.values"))

	write := writerOutput(cmd.OutOrStdout())
	if opts.outDir != "" {
		write = dirOutput(opts.outDir)
	}

	pipeOpts := []model.PipelineOption{logger.PipelineLogger(a.log)}

	if graph := a.v.GetString("render.graph"); graph != "" {
		msr := measure.NewDefaultMeasure()
		pipeOpts = append(pipeOpts,
			measure.PipelineMeasure(msr),
			drawer.PipelineDrawer(drawer.NewDOTDrawer(graph), msr),
		)
	}

	parallel := a.v.GetBool("render.parallel")

	return func(ctx context.Context) error {
		all := []map[string]any{configValues}

		for _, path := range opts.valuesFiles {
			values, err := loadValuesFile(path)
			if err != nil {
				return err
			}

			all = append(all, values)
		}

		values := mergeValues(append(all, sets)...)

		jobs := make([]pipeline.Job, len(files))
		for idx, path := range files {
			jobs[idx] = newRenderJob(path, values, write)
		}

		pipe, err := pipeline.New(jobs, pipeOpts...)
		if err != nil {
			return errors.Wrap(err, "unable to create pipeline")
		}

		if parallel {
			err = pipe.Parallel(ctx)
		} else {
			err = pipe.Sequence(ctx)
		}

		if err != nil {
			return err
		}

		return pipe.Close()
	}, nil
}
