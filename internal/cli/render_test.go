package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-toolbox/internal/cli"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := cli.NewRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--quiet", "--config", writeConfig(t)}, args...))

	err := cmd.Execute()

	return out.String(), err
}

// writeConfig writes an empty config file so the tests never read a .toolbox.yml of the working directory.
func writeConfig(t *testing.T) string {
	t.Helper()

	return writeFile(t, t.TempDir(), "config.yml", "{}\n")
}

func TestRenderSet(t *testing.T) {
	dir := t.TempDir()
	tpl := writeFile(t, dir, "hello.tpl", "Hello {{name}}! {{upper:name}} {{missing}}\n")

	out, err := execute(t, "render", "--set", "name=World", tpl)
	require.NoError(t, err)
	assert.Equal(t, "Hello World! WORLD missing\n", out)
}

func TestRenderValuesFile(t *testing.T) {
	dir := t.TempDir()
	tpl := writeFile(t, dir, "user.tpl", "{{user_name}} is {{user_age}}, admin: {{admin}}, tags: {{tags_0}} {{tags_1}}, {{none}}, {{date}}")
	values := writeFile(t, dir, "values.yml", "user:\n  name: Jamie\n  age: 30\nadmin: true\ntags: [a, b]\nnone: ~\ndate: 2024-01-02\n")

	out, err := execute(t, "render", "-f", values, "--set", "admin=maybe", tpl)
	require.NoError(t, err)
	assert.Equal(t, "Jamie is 30, admin: maybe, tags: a b, NULL, 2024-01-02", out)
}

func TestRenderConfigValues(t *testing.T) {
	dir := t.TempDir()
	tpl := writeFile(t, dir, "greet.tpl", "{{greeting}} {{name}}")
	config := writeFile(t, dir, "config.yml", "render:\n  values:\n    greeting: Hi\n    name: config\n")

	out := &bytes.Buffer{}
	cmd := cli.NewRootCmd()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"-q", "--config", config, "render", "--set", "name=flag", tpl})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Hi flag", out.String())
}

func TestRenderOutDirParallelGraph(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	graph := filepath.Join(dir, "run.dot")
	first := writeFile(t, dir, "first.txt.tpl", "first {{v}}")
	second := writeFile(t, dir, "second.txt", "second {{v}}")

	out, err := execute(t, "render", "--parallel", "--graph", graph, "-o", outDir, "--set", "v=1", first, second)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(filepath.Join(outDir, "first.txt"))
	require.NoError(t, err)
	assert.Equal(t, "first 1", string(content))

	content, err = os.ReadFile(filepath.Join(outDir, "second.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second 1", string(content))

	content, err = os.ReadFile(graph)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"start" -> "`+first+`"`)
	assert.Contains(t, string(content), `"start" -> "`+second+`"`)
}

func TestRenderSequenceOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.tpl", "a\n")
	second := writeFile(t, dir, "b.tpl", "b\n")

	out, err := execute(t, "render", first, second)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	tpl := writeFile(t, dir, "a.tpl", "a")

	_, err := execute(t, "render")
	require.Error(t, err)

	_, err = execute(t, "render", "--set", "novalue", tpl)
	require.ErrorContains(t, err, "expected key=value")

	_, err = execute(t, "render", filepath.Join(dir, "missing.tpl"))
	require.ErrorContains(t, err, "unable to read template")

	_, err = execute(t, "render", "-f", filepath.Join(dir, "missing.yml"), tpl)
	require.ErrorContains(t, err, "unable to read values file")

	bad := writeFile(t, dir, "bad.yml", "- not\n- a mapping\n")
	_, err = execute(t, "render", "-f", bad, tpl)
	require.ErrorContains(t, err, "unable to parse values file")
}

func TestRenderDuplicateOutputs(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "x.tpl", "a")

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))
	second := writeFile(t, filepath.Join(dir, "sub"), "x.tpl", "b")

	_, err := execute(t, "render", "-o", filepath.Join(dir, "out"), first, second)
	require.ErrorContains(t, err, "are both written to")
	assert.NoFileExists(t, filepath.Join(dir, "out", "x"))

	_, err = execute(t, "render", first, first)
	require.ErrorContains(t, err, "given more than once")

	// without an output directory both templates go to the standard output
	out, err := execute(t, "render", first, second)
	require.NoError(t, err)
	assert.Equal(t, "ab", out)
}

func TestMissingConfigFile(t *testing.T) {
	cmd := cli.NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-q", "--config", filepath.Join(t.TempDir(), "missing.yml"), "version"})

	require.ErrorContains(t, cmd.Execute(), "unable to read config file")
}

func TestInvalidLogLevel(t *testing.T) {
	cmd := cli.NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud", "--config", writeConfig(t), "version"})

	require.ErrorContains(t, cmd.Execute(), "unable to parse log level")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "toolbox dev\n", out)
}
