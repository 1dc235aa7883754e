package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/telid/internal/value"
)

func TestScope_InsertAndGet(t *testing.T) {
	sc := New()
	sc.Insert("x", value.Variable{Value: value.Number(1)})

	v, ok := sc.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v.Value)

	_, ok = sc.Get("missing")
	assert.False(t, ok)
}

func TestScope_PushShadowsOuter(t *testing.T) {
	sc := New()
	sc.Insert("x", value.Variable{Value: value.Number(1)})

	sc.Push()
	sc.Insert("x", value.Variable{Value: value.Number(2)})
	v, _ := sc.Get("x")
	assert.Equal(t, value.Number(2), v.Value)

	sc.Pop()
	v, _ = sc.Get("x")
	assert.Equal(t, value.Number(1), v.Value)
}

func TestScope_InsertExistingMutatesOwningFrame(t *testing.T) {
	sc := New()
	sc.Insert("x", value.Variable{Value: value.Number(1)})

	sc.Push()
	sc.InsertExisting("x", value.Variable{Value: value.Number(99)})
	sc.Pop()

	v, _ := sc.Get("x")
	assert.Equal(t, value.Number(99), v.Value)
}

func TestScope_CloneIsIndependent(t *testing.T) {
	sc := New()
	sc.Insert("x", value.Variable{Value: value.Number(1)})

	clone := sc.Clone()
	clone.Insert("y", value.Variable{Value: value.Number(2)})

	_, ok := sc.Get("y")
	assert.False(t, ok, "mutating the clone must not affect the original")

	v, ok := clone.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v.Value)
}

func TestScope_DepthTracksPushPop(t *testing.T) {
	sc := New()
	assert.Equal(t, 1, sc.Depth())
	sc.Push()
	sc.Push()
	assert.Equal(t, 3, sc.Depth())
	sc.Pop()
	assert.Equal(t, 2, sc.Depth())
}
