package ratelimit

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestLimiter_SpacesCalls(t *testing.T) {
	interval := 40 * time.Millisecond
	l := New(interval)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Wait(ctx))
	}
	// first call is free, the next two wait one interval each
	assert.GreaterOrEqual(t, time.Since(start), 2*interval-5*time.Millisecond)
}

func TestLimiter_Disabled(t *testing.T) {
	l := New(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestLimiter_HonoursContext(t *testing.T) {
	l := New(time.Hour)
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx))
}

func TestInterval(t *testing.T) {
	assert.Equal(t, 4500*time.Millisecond, New(4500*time.Millisecond).Interval())
	assert.Equal(t, time.Duration(0), New(-1).Interval())
}

func TestJitter_WithinBounds(t *testing.T) {
	min, max := 3*time.Second, 10*time.Second
	j := NewJitterWithSource(min, max, rand.NewPCG(1, 2))

	for i := 0; i < 10000; i++ {
		d := j.Next()
		require.GreaterOrEqual(t, d, min)
		require.LessOrEqual(t, d, max)
	}
}

func TestJitter_Degenerate(t *testing.T) {
	j := NewJitterWithSource(time.Second, time.Second, rand.NewPCG(1, 2))
	assert.Equal(t, time.Second, j.Next())

	swapped := NewJitterWithSource(5*time.Second, time.Second, rand.NewPCG(1, 2))
	d := swapped.Next()
	assert.GreaterOrEqual(t, d, time.Second)
	assert.LessOrEqual(t, d, 5*time.Second)
}

func TestSleep(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), 0))
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}

type countingModel struct {
	calls []time.Time
}

func (m *countingModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	m.calls = append(m.calls, time.Now())
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "ok"}}}, nil
}

func (m *countingModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestRateLimitedModel_SharesLimiter(t *testing.T) {
	inner := &countingModel{}
	interval := 30 * time.Millisecond
	model := NewRateLimitedModel(inner, New(interval))
	ctx := context.Background()

	out, err := model.Call(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	_, err = llms.GenerateFromSinglePrompt(ctx, model, "second")
	require.NoError(t, err)

	require.Len(t, inner.calls, 2)
	assert.GreaterOrEqual(t, inner.calls[1].Sub(inner.calls[0]), interval-5*time.Millisecond)
}
