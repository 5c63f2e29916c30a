package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/askiada/go-toolbox/pkg/pipeline"
	"github.com/askiada/go-toolbox/pkg/template"
	"github.com/askiada/go-toolbox/pkg/template/modifier"
)

// writeFn stores the rendered content of the template found at path.
type writeFn func(path, content string) error

// renderJob renders one template file.
type renderJob struct {
	path   string
	values map[string]any
	write  writeFn
}

func newRenderJob(path string, values map[string]any, write writeFn) pipeline.Job {
	return pipeline.NamedJob(filepath.Clean(path), &renderJob{
		path:   path,
		values: values,
		write:  write,
	})
}

func (rj *renderJob) Run(ctx context.Context) error {
	content, err := os.ReadFile(rj.path)
	if err != nil {
		return errors.Wrapf(err, "unable to read template %s", rj.path)
	}

	tpl := modifier.Register(template.Create(string(content))).SetValues(rj.values)

	err = rj.write(rj.path, tpl.Render())
	if err != nil {
		return errors.Wrapf(err, "unable to write rendered template %s", rj.path)
	}

	return nil
}

// writerOutput writes every rendered template to wrt, one whole template at a time.
func writerOutput(wrt io.Writer) writeFn {
	var mu sync.Mutex

	return func(_, content string) error {
		mu.Lock()
		defer mu.Unlock()

		_, err := io.WriteString(wrt, content)

		return err
	}
}

// dirOutput writes every rendered template to dir, under its file name without the .tpl extension.
func dirOutput(dir string) writeFn {
	return func(path, content string) error {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return err
		}

		return os.WriteFile(filepath.Join(dir, outputName(path)), []byte(content), 0o644) //nolint:gosec
	}
}

// outputName is the name of the file receiving the rendered template found at path.
func outputName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".tpl")
}

// checkFiles rejects a template given twice and, with an output directory, two templates written to the
// same file.
func checkFiles(files []string, outDir string) error {
	paths := make(map[string]struct{}, len(files))
	outputs := make(map[string]string, len(files))

	for _, path := range files {
		clean := filepath.Clean(path)
		if _, ok := paths[clean]; ok {
			return errors.Errorf("template %s is given more than once", path)
		}

		paths[clean] = struct{}{}

		if outDir == "" {
			continue
		}

		name := outputName(path)
		if other, ok := outputs[name]; ok {
			return errors.Errorf("templates %s and %s are both written to %s", other, path, filepath.Join(outDir, name))
		}

		outputs[name] = path
	}

	return nil
}
