package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravity-graph/gravity/param"
)

// Node types understood by the test schema provider.
const (
	typeBasic    uint32 = 0
	typeSequence uint32 = 1
	typeOther    uint32 = 2
	typeLocked   uint32 = 3
	typeBroken   uint32 = 99
)

var errBrokenSchema = errors.New("no schema for this type")

func testProvider() DefaultSchemaProvider {
	return SchemaProviderFunc[string, uint32](func(nodeType uint32) (map[string]*param.Parameter, error) {
		switch nodeType {
		case typeSequence:
			return map[string]*param.Parameter{
				"seq":   param.New([]int{1, 2, 3}),
				"blank": new(param.Parameter),
			}, nil
		case typeLocked:
			pinned := param.New(5)
			pinned.SetTypeLock(true)
			return map[string]*param.Parameter{
				"pinned": pinned,
			}, nil
		case typeBroken:
			return nil, errBrokenSchema
		default:
			return map[string]*param.Parameter{
				"type":        param.New(5),
				"float_value": param.New(3.8),
			}, nil
		}
	})
}

func newTestGraph(t *testing.T) *DefaultGraph {
	t.Helper()
	return NewDefault(testProvider())
}

func TestCreateAndDeleteNode(t *testing.T) {
	g := newTestGraph(t)

	node, err := g.CreateNode(typeBasic)
	require.NoError(t, err)
	require.NotNil(t, node)

	nodeType, err := node.Type()
	require.NoError(t, err)
	assert.Equal(t, typeBasic, nodeType)
	assert.Equal(t, 1, g.Len())

	require.NoError(t, g.DeleteNode(node.Handle()))
	assert.Equal(t, 0, g.Len())

	// Double delete must fail, not silently no-op.
	err = g.DeleteNode(node.Handle())
	var notFound *NodeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, node.Handle(), notFound.Handle)

	_, err = node.Type()
	assert.ErrorAs(t, err, &notFound)
}

func TestCreateNodePropagatesProviderError(t *testing.T) {
	g := newTestGraph(t)

	created := 0
	g.RegisterOnNodeCreate(func(*DefaultNode) { created++ })

	node, err := g.CreateNode(typeBroken)
	require.ErrorIs(t, err, errBrokenSchema)
	assert.Nil(t, node)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, created, "no create callback on provider failure")
}

func TestNodeResolvesHandle(t *testing.T) {
	g := newTestGraph(t)

	node, err := g.CreateNode(typeBasic)
	require.NoError(t, err)

	resolved, err := g.Node(node.Handle())
	require.NoError(t, err)
	assert.Equal(t, node.Handle(), resolved.Handle())

	require.NoError(t, g.DeleteNode(node.Handle()))
	_, err = g.Node(node.Handle())
	var notFound *NodeNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	g := newTestGraph(t)

	first, err := g.CreateNode(typeBasic)
	require.NoError(t, err)
	stale := first.Handle()
	require.NoError(t, g.DeleteNode(stale))

	// The next node reuses the freed slot; the old handle must still fail.
	second, err := g.CreateNode(typeOther)
	require.NoError(t, err)
	require.NotEqual(t, stale, second.Handle())

	var notFound *NodeNotFoundError
	assert.ErrorAs(t, g.DeleteNode(stale), &notFound)
	_, err = Get[int](first, "type")
	assert.ErrorAs(t, err, &notFound)
	assert.ErrorAs(t, Set(first, "type", 1), &notFound)

	resolved, err := g.Node(second.Handle())
	require.NoError(t, err)
	nodeType, err := resolved.Type()
	require.NoError(t, err)
	assert.Equal(t, typeOther, nodeType)
}

func TestCallbacks(t *testing.T) {
	g := newTestGraph(t)

	var createCount, deleteCount, changeCount int
	var changedKey string
	g.RegisterOnNodeCreate(func(*DefaultNode) { createCount++ })
	g.RegisterOnNodeDelete(func(*DefaultNode) { deleteCount++ })
	g.RegisterOnNodeParameterChange(func(_ *DefaultNode, key string) {
		changeCount++
		changedKey = key
	})

	node, err := g.CreateNode(typeBasic)
	require.NoError(t, err)
	assert.Equal(t, 1, createCount)

	require.NoError(t, Set(node, "type", 10))
	assert.Equal(t, 1, changeCount)
	assert.Equal(t, "type", changedKey)

	got, err := Get[int](node, "type")
	require.NoError(t, err)
	assert.Equal(t, 10, *got)

	require.NoError(t, g.DeleteNode(node.Handle()))
	assert.Equal(t, 1, deleteCount)
}

func TestCallbackFilter(t *testing.T) {
	g := newTestGraph(t)

	var createCount, deleteCount, changeCount int
	g.RegisterOnNodeCreate(func(*DefaultNode) { createCount++ }, typeBasic, typeSequence)
	g.RegisterOnNodeDelete(func(*DefaultNode) { deleteCount++ }, typeBasic, typeSequence)
	g.RegisterOnNodeParameterChange(func(*DefaultNode, string) { changeCount++ }, typeBasic, typeSequence)

	// Type outside the filter: no callback fires.
	node, err := g.CreateNode(typeOther)
	require.NoError(t, err)
	assert.Equal(t, 0, createCount)
	require.NoError(t, Set(node, "type", 10))
	assert.Equal(t, 0, changeCount)
	require.NoError(t, g.DeleteNode(node.Handle()))
	assert.Equal(t, 0, deleteCount)

	// Type inside the filter: exactly one invocation per event.
	node, err = g.CreateNode(typeBasic)
	require.NoError(t, err)
	assert.Equal(t, 1, createCount)
	require.NoError(t, Set(node, "type", 10))
	assert.Equal(t, 1, changeCount)
	require.NoError(t, g.DeleteNode(node.Handle()))
	assert.Equal(t, 1, deleteCount)
}

func TestDeleteCallbackSeesLiveNode(t *testing.T) {
	g := newTestGraph(t)

	var seenType uint32
	var seenValue int
	g.RegisterOnNodeDelete(func(n *DefaultNode) {
		nodeType, err := n.Type()
		require.NoError(t, err)
		seenType = nodeType
		v, err := Get[int](n, "type")
		require.NoError(t, err)
		seenValue = *v
	})

	node, err := g.CreateNode(typeBasic)
	require.NoError(t, err)
	require.NoError(t, Set(node, "type", 7))
	require.NoError(t, g.DeleteNode(node.Handle()))

	assert.Equal(t, typeBasic, seenType)
	assert.Equal(t, 7, seenValue)
}

func TestNewPanicsOnNilProvider(t *testing.T) {
	assert.Panics(t, func() { New[string, uint32](nil) })
}
