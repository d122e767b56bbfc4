package ekans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	t.Run("sentinels link to each other and the heap starts empty", func(t *testing.T) {
		rt := Initialize(nil)
		assert.True(t, rt.HeapEmpty())
		assert.Same(t, &rt.tail, rt.head.next)
		assert.Same(t, &rt.head, rt.tail.prev)
	})

	t.Run("captures arguments excluding argv[0]", func(t *testing.T) {
		rt := Initialize([]string{"prog", "a", "b"})
		assert.Equal(t, []string{"a", "b"}, rt.args)
	})

	t.Run("a single argv[0] with nothing else leaves args empty", func(t *testing.T) {
		rt := Initialize([]string{"prog"})
		assert.Empty(t, rt.args)
	})
}

func TestFinalize(t *testing.T) {
	t.Run("frees every remaining allocation", func(t *testing.T) {
		rt := Initialize(nil)
		var a, b, c *Value
		rt.NewNumber(1, &a)
		rt.NewNil(&b)
		rt.PushRootSlot(&c)
		rt.NewPair(a, b, &c)
		rt.PopRootSlots(1)

		rt.Finalize()
		assert.True(t, rt.HeapEmpty())
	})
}
