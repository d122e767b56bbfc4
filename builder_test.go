package ekans

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	t.Run("writeString accumulates bytes in order", func(t *testing.T) {
		b := newBuilder()
		b.writeString("abc")
		b.writeString("def")
		assert.Equal(t, "abcdef", b.String())
	})

	t.Run("writeBool and writeInt", func(t *testing.T) {
		b := newBuilder()
		b.writeBool(true)
		b.writeByte(' ')
		b.writeBool(false)
		b.writeByte(' ')
		b.writeInt(-7)
		assert.Equal(t, "#t #f -7", b.String())
	})

	t.Run("capacity doubles to fit content past the initial reservation", func(t *testing.T) {
		b := newBuilder()
		assert.Equal(t, builderInitialCapacity, b.capacity)

		big := strings.Repeat("x", builderInitialCapacity+1)
		b.writeString(big)
		assert.True(t, b.capacity > builderInitialCapacity)
		assert.Equal(t, 0, b.capacity%builderInitialCapacity, "capacity grows by doubling")
		assert.Equal(t, big, b.String())
	})
}

func TestItoa(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-7, "-7"},
		{12345, "12345"},
		{-12345, "-12345"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, itoa(c.in))
	}
}
