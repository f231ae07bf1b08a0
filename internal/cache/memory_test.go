package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "estimate:chrono trigger", []byte(`{"avg":42}`), time.Minute)

	got, ok := m.Get(ctx, "estimate:chrono trigger")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"avg":42}`), got)
}

func TestMemory_Miss(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	_, ok := m.Get(context.Background(), "absent")
	assert.False(t, ok)
}

func TestMemory_Expiry(t *testing.T) {
	t.Parallel()

	now := time.Now()
	m := NewMemory(WithNowFunc(func() time.Time { return now }))
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), 5*time.Minute)

	_, ok := m.Get(ctx, "k")
	require.True(t, ok)

	now = now.Add(5*time.Minute + time.Second)
	_, ok = m.Get(ctx, "k")
	assert.False(t, ok, "expired entry should be dropped on read")
	assert.Zero(t, m.Len())
}

func TestMemory_NoTTL(t *testing.T) {
	t.Parallel()

	now := time.Now()
	m := NewMemory(WithNowFunc(func() time.Time { return now }))
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), 0)
	now = now.Add(240 * time.Hour)

	_, ok := m.Get(ctx, "k")
	assert.True(t, ok, "zero ttl stores without expiry")
}

func TestMemory_Delete(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), time.Minute)
	m.Delete(ctx, "k")
	m.Delete(ctx, "k") // absent key is a no-op

	_, ok := m.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemory_Overwrite(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("old"), time.Minute)
	m.Set(ctx, "k", []byte("new"), time.Minute)

	got, ok := m.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestMemory_Sweep(t *testing.T) {
	t.Parallel()

	now := time.Now()
	m := NewMemory(WithNowFunc(func() time.Time { return now }))
	ctx := context.Background()

	m.Set(ctx, "fresh", []byte("a"), time.Hour)
	m.Set(ctx, "stale", []byte("b"), time.Minute)

	now = now.Add(2 * time.Minute)
	m.sweep()

	assert.Equal(t, 1, m.Len())
	_, ok := m.Get(ctx, "fresh")
	assert.True(t, ok)
}
