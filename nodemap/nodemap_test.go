package nodemap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Found(t *testing.T) {
	m := NodeMap{"1.2": {Selector: "backend-node:9", XPath: "/html/body/div"}}
	e, err := Resolve(m, "1.2")
	require.NoError(t, err)
	assert.Equal(t, "backend-node:9", e.Selector)
}

func TestResolve_NotFound(t *testing.T) {
	m := NodeMap{}
	_, err := Resolve(m, "1.2")
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}

func TestStore_ReplaceIsAtomic(t *testing.T) {
	var s Store
	s.Replace(NodeMap{"1": {Selector: "a"}})
	assert.Equal(t, "a", s.Current()["1"].Selector)

	s.Replace(NodeMap{"2": {Selector: "b"}})
	current := s.Current()
	_, hasOld := current["1"]
	assert.False(t, hasOld)
	assert.Equal(t, "b", current["2"].Selector)
}
