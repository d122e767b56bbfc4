package ekans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootSlotDiscipline(t *testing.T) {
	t.Run("push and pop balance LIFO", func(t *testing.T) {
		rt := Initialize(nil)
		var a, b, c *Value
		assert.Equal(t, 0, rt.RootSlotDepth())

		rt.PushRootSlot(&a)
		rt.PushRootSlot(&b)
		rt.PushRootSlot(&c)
		assert.Equal(t, 3, rt.RootSlotDepth())

		rt.PopRootSlots(2)
		assert.Equal(t, 1, rt.RootSlotDepth())

		rt.PopRootSlots(1)
		assert.Equal(t, 0, rt.RootSlotDepth())
	})
}
