package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) GetSnapshot(context.Context) (weather.WeatherSnapshot, error) {
	c.calls.Add(1)
	return weather.WeatherSnapshot{Temperature: 20, Condition: "Clear sky"}, c.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsImmediately(t *testing.T) {
	r := &countingRefresher{}
	s := New(r, time.Hour, time.Second, discardLogger())
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_Disabled(t *testing.T) {
	r := &countingRefresher{}
	s := New(r, 0, time.Second, discardLogger())
	require.NoError(t, s.Start())
	defer s.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, r.calls.Load())
}

func TestScheduler_RunSurvivesFailure(t *testing.T) {
	r := &countingRefresher{err: errors.New("upstream down")}
	s := New(r, time.Hour, time.Second, discardLogger())

	s.run()
	s.run()
	assert.Equal(t, int32(2), r.calls.Load())
}
