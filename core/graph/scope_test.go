package graph_test

import (
	"errors"
	"fmt"
	"testing"

	"hearth-mirror/core/graph"
	"hearth-mirror/core/graph/memgraph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScope(t *testing.T, img graph.Image) *graph.Scope {
	t.Helper()
	scope, err := graph.NewScope(img, zap.NewNop())
	require.NoError(t, err)
	return scope
}

func TestNewScope_NilImage(t *testing.T) {
	scope, err := graph.NewScope(nil, zap.NewNop())
	assert.ErrorIs(t, err, graph.ErrNilImage)
	assert.Nil(t, scope)
}

func TestNewScope_AssignsReadID(t *testing.T) {
	a := newScope(t, memgraph.NewImage())
	b := newScope(t, memgraph.NewImage())
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestRef_PresentAndAbsent(t *testing.T) {
	img := memgraph.NewImage()
	img.Classes["Root"] = map[string]any{
		"name":  "hello",
		"count": 3,
		"flag":  true,
		"items": []any{1, nil, 3},
		"empty": nil,
	}
	scope := newScope(t, img)
	root := scope.Class("Root")

	assert.True(t, root.Present())
	assert.Equal(t, "hello", root.Field("name").StringOr(""))
	assert.Equal(t, 3, root.Field("count").IntOr(-1))
	assert.True(t, root.Field("flag").BoolOr(false))
	assert.Equal(t, 3, root.Field("items").Index(2).IntOr(0))

	n, ok := root.Field("items").Len()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	assert.False(t, root.Field("items").Index(1).Present())
	assert.False(t, root.Field("empty").Present())
	assert.False(t, root.Field("missing").Field("deeper").Present())
	assert.Equal(t, -1, root.Field("missing").Field("deeper").IntOr(-1))
	assert.Equal(t, "Root.missing.deeper", root.Field("missing").Field("deeper").Path())

	_, ok = root.Field("name").AsInt()
	assert.False(t, ok)
	assert.NoError(t, scope.Err())
}

func TestRef_ZeroValueIsAbsent(t *testing.T) {
	var r graph.Ref
	assert.False(t, r.Present())
	assert.False(t, r.Field("x").Index(0).Present())
	assert.Equal(t, 5, r.IntOr(5))
}

func TestScope_ReadRaceIsContained(t *testing.T) {
	img := memgraph.NewImage()
	img.Classes["Root"] = map[string]any{
		"items": []any{1, 2},
		"torn":  memgraph.Race("size changed"),
		"other": 9,
	}
	scope := newScope(t, img)
	root := scope.Class("Root")

	past := root.Field("items").Index(5)
	assert.False(t, past.Present())
	assert.True(t, past.Broken())
	assert.True(t, past.Field("child").Broken())

	torn := root.Field("torn")
	assert.False(t, torn.Present())
	assert.True(t, torn.Broken())

	// Unrelated reads keep working.
	assert.Equal(t, 9, root.Field("other").IntOr(0))
	assert.Equal(t, 2, scope.Races())
	assert.NoError(t, scope.Err())
}

func TestScope_AcquisitionFailureIsSticky(t *testing.T) {
	gone := errors.New("process exited")
	img := memgraph.NewImage()
	img.Classes["Root"] = map[string]any{
		"broken": memgraph.Fault{Err: gone},
		"other":  9,
	}
	scope := newScope(t, img)
	root := scope.Class("Root")

	assert.False(t, root.Field("broken").Present())
	assert.False(t, root.Field("other").Present())
	assert.False(t, scope.Class("Root").Present())

	err := scope.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, gone)

	var acq *graph.AcquisitionError
	require.ErrorAs(t, err, &acq)
	assert.Equal(t, "Root.broken", acq.Path)
	assert.Equal(t, 0, scope.Races())
}

func TestScope_RootFailure(t *testing.T) {
	img := memgraph.NewImage()
	img.Fail = fmt.Errorf("handle closed")
	scope := newScope(t, img)

	assert.False(t, scope.CacheService("NetCacheCardBacks").Present())
	assert.EqualError(t, scope.Err(), "graph: acquisition failed at cache:NetCacheCardBacks: handle closed")
}
