package ekans

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetEnvironment(t *testing.T) {
	t.Run("set then get returns the same value", func(t *testing.T) {
		rt := Initialize(nil)
		var env, n *Value
		rt.PushRootSlot(&env)
		rt.PushRootSlot(&n)
		rt.NewEnvironment(nil, 2, &env)
		rt.NewNumber(5, &n)
		SetEnvironment(env, 1, n)

		var out *Value
		GetEnvironment(env, 0, 1, &out)
		assert.Same(t, n, out)
		rt.PopRootSlots(2)
	})

	t.Run("walks levelsUp parent links", func(t *testing.T) {
		rt := Initialize(nil)
		var parent, child, n *Value
		rt.PushRootSlot(&parent)
		rt.PushRootSlot(&child)
		rt.PushRootSlot(&n)
		rt.NewEnvironment(nil, 1, &parent)
		rt.NewNumber(11, &n)
		SetEnvironment(parent, 0, n)
		rt.NewEnvironment(parent, 0, &child)

		var out *Value
		GetEnvironment(child, 1, 0, &out)
		assert.Same(t, n, out)
		rt.PopRootSlots(3)
	})
}

func TestClosureOfAndFunctionOf(t *testing.T) {
	t.Run("extract captured environment and code pointer", func(t *testing.T) {
		rt := Initialize(nil)
		var env, closure *Value
		rt.PushRootSlot(&env)
		rt.PushRootSlot(&closure)
		rt.NewEnvironment(nil, 0, &env)
		rt.NewClosure(env, Add, &closure)

		var capturedEnv *Value
		ClosureOf(closure, &capturedEnv)
		assert.Same(t, env, capturedEnv)
		assert.NotNil(t, FunctionOf(closure))
		rt.PopRootSlots(2)
	})
}

func TestApply(t *testing.T) {
	t.Run("applies a closure to its arguments and writes the result", func(t *testing.T) {
		rt := Initialize(nil)
		var global, plus, one, two, result *Value
		rt.PushRootSlot(&global)
		rt.PushRootSlot(&plus)
		rt.PushRootSlot(&one)
		rt.PushRootSlot(&two)
		rt.PushRootSlot(&result)

		rt.NewEnvironment(nil, 0, &global)
		rt.NewClosure(global, Add, &plus)
		rt.NewNumber(1, &one)
		rt.NewNumber(2, &two)

		rt.Apply(plus, []*Value{one, two}, &result)
		require.True(t, result.Is(TagNumber))
		assert.Equal(t, 3, result.Number())

		rt.PopRootSlots(5)
	})

	t.Run("levels_up from inside a call reaches the defining environment", func(t *testing.T) {
		rt := Initialize(nil)
		var global, x, addX, result *Value
		rt.PushRootSlot(&global)
		rt.PushRootSlot(&x)
		rt.PushRootSlot(&addX)
		rt.PushRootSlot(&result)

		rt.NewEnvironment(nil, 1, &global)
		rt.NewNumber(10, &x)
		SetEnvironment(global, 0, x)

		// addXFn reads its captured x (one level up from its own call
		// environment) and adds it to its single argument.
		var addXFn NativeFunction = func(rt *Runtime, env *Value, out **Value) {
			var capturedX *Value
			GetEnvironment(env, 1, 0, &capturedX)
			rt.NewNumber(capturedX.Number()+env.envBindings[0].Number(), out)
		}
		rt.NewClosure(global, addXFn, &addX)

		var five *Value
		rt.PushRootSlot(&five)
		rt.NewNumber(5, &five)
		rt.Apply(addX, []*Value{five}, &result)
		rt.PopRootSlots(1)

		require.True(t, result.Is(TagNumber))
		assert.Equal(t, 15, result.Number())

		rt.PopRootSlots(4)
	})
}

// TestUseBeforeInitIsFatal exercises the fatal path via a subprocess,
// since fatalf terminates the process with os.Exit and cannot be
// recovered from within the test binary itself.
func TestUseBeforeInitIsFatal(t *testing.T) {
	if os.Getenv("EKANS_CRASH_TEST") == "1" {
		rt := Initialize(nil)
		var env *Value
		rt.PushRootSlot(&env)
		rt.NewEnvironment(nil, 2, &env)
		var out *Value
		GetEnvironment(env, 0, 0, &out)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestUseBeforeInitIsFatal")
	cmd.Env = append(os.Environ(), "EKANS_CRASH_TEST=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err, "reading an absent binding must exit non-zero")
	assert.Contains(t, string(output), "before evaluation")
}
