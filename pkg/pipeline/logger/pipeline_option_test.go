package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/askiada/go-toolbox/pkg/pipeline"
	"github.com/askiada/go-toolbox/pkg/pipeline/logger"
)

func TestPipelineLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)

	pipe, err := pipeline.New([]pipeline.Job{
		pipeline.NamedJob("ok", pipeline.JobFunc(func(ctx context.Context) error { return nil })),
		pipeline.NamedJob("ko", pipeline.JobFunc(func(ctx context.Context) error { return assert.AnError })),
	}, logger.PipelineLogger(zap.New(core)))
	require.NoError(t, err)

	require.ErrorIs(t, pipe.Sequence(context.Background()), assert.AnError)
	require.NoError(t, pipe.Close())

	assert.Equal(t, 1, logs.FilterMessage("Starting run").Len())
	assert.Equal(t, 2, logs.FilterMessage("Starting job").Len())
	assert.Equal(t, 1, logs.FilterMessage("Job done").FilterField(zap.String("job", "ok")).Len())

	failed := logs.FilterMessage("Job failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
	assert.Equal(t, "ko", failed[0].ContextMap()["job"])

	runFailed := logs.FilterMessage("Run failed").All()
	require.Len(t, runFailed, 1)
	assert.Equal(t, "sequence", runFailed[0].ContextMap()["mode"])
	assert.Equal(t, "pipeline", runFailed[0].LoggerName)
}

func TestPipelineLoggerNil(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New([]pipeline.Job{
		pipeline.JobFunc(func(ctx context.Context) error { return nil }),
	}, logger.PipelineLogger(nil))
	require.NoError(t, err)
	require.NoError(t, pipe.Parallel(context.Background()))
}
