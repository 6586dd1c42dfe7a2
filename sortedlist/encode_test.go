package sortedlist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_String(t *testing.T) {
	t.Parallel()

	t.Run("int list", func(t *testing.T) {
		t.Parallel()

		l, err := FromValues(KindInt, 3, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, "SortedList(int)[1, 2, 3]", l.String())
	})

	t.Run("string list", func(t *testing.T) {
		t.Parallel()

		l, err := FromValues(KindString, "b", "a")
		require.NoError(t, err)
		assert.Equal(t, "SortedList(string)[a, b]", l.String())
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "SortedList(int)[]", NewList(KindInt).String())
	})

	t.Run("typed facade delegates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "SortedList(string)[a]", FromStrings("a").String())
	})
}

func TestList_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes values in sorted order", func(t *testing.T) {
		t.Parallel()

		l, err := FromValues(KindInt, 3, 1, 2)
		require.NoError(t, err)

		data, err := json.Marshal(l)
		require.NoError(t, err)
		assert.JSONEq(t, `[1,2,3]`, string(data))
	})

	t.Run("string values", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(FromStrings("b", "a"))
		require.NoError(t, err)
		assert.JSONEq(t, `["a","b"]`, string(data))
	})

	t.Run("empty list encodes as an array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(NewList(KindString))
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(data))
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
