package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"todo-web/pkg/log"
)

type countingSweeper struct {
	calls   int
	removed int
}

func (s *countingSweeper) Sweep() int {
	s.calls++
	return s.removed
}

func TestSweepExpiredSessions_LogsRemovedCount(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log.Replace(core)
	sweeper := &countingSweeper{removed: 3}

	NewSessionScheduler(sweeper).SweepExpiredSessions()

	assert.Equal(t, 1, sweeper.calls)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "Sweeping expired sessions", logs.All()[0].Message)
	assert.Equal(t, "Swept 3 expired sessions", logs.All()[1].Message)
}

func TestInitSessionScheduleTasks(t *testing.T) {
	scheduler := NewSessionScheduler(&countingSweeper{})

	assert.Error(t, scheduler.InitSessionScheduleTasks("not a schedule"))

	require.NoError(t, scheduler.InitSessionScheduleTasks("@every 10m"))
	<-scheduler.Stop().Done()
}
