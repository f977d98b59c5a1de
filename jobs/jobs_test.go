package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"pharma-place/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockSweeper struct {
	mock.Mock
}

func (m *MockSweeper) SweepPendingCleanups(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestSweepOnce(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	t.Run("logs settled payments", func(t *testing.T) {
		sweeper := new(MockSweeper)
		sweeper.On("SweepPendingCleanups", mock.Anything).Return(2, nil).Once()

		SweepOnce(sweeper)()

		sweeper.AssertExpectations(t)
		entries := observed.FilterMessage("cart cleanup sweep settled payments").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(2), entries[0].ContextMap()["count"])
	})

	t.Run("logs failures", func(t *testing.T) {
		sweeper := new(MockSweeper)
		sweeper.On("SweepPendingCleanups", mock.Anything).Return(0, errors.New("mongo down")).Once()

		SweepOnce(sweeper)()

		sweeper.AssertExpectations(t)
		assert.Equal(t, 1, observed.FilterMessage("cart cleanup sweep failed").Len())
	})
}

func TestScheduler(t *testing.T) {
	restore := logger.Replace(zap.NewNop())
	defer restore()

	s, err := NewScheduler(new(MockSweeper))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Entries())

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
