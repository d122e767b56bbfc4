package ekans

import (
	"fmt"
	"os"
)

// Args implements `args`: the list of program arguments excluding
// argv[0], in their original order.
func Args(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 0 {
		fatalf("args requires exactly zero arguments")
	}
	var result *Value
	rt.NewNil(&result)
	rt.PushRootSlot(&result)
	for i := len(rt.args) - 1; i >= 0; i-- {
		var c *Value
		rt.PushRootSlot(&c)
		rt.NewString([]byte(rt.args[i]), &c)
		var temp *Value
		rt.PushRootSlot(&temp)
		rt.NewPair(c, result, &temp)
		rt.PopRootSlots(2)
		result = temp
	}
	rt.PopRootSlots(1)
	*out = result
}

// Println implements `println`: writes a String followed by a
// newline to standard output, and returns Nil.
func Println(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("println requires exactly one argument")
	}
	if !env.envBindings[0].Is(TagString) {
		fatalf("println requires its 1st argument to be a string")
	}
	fmt.Printf("%s\n", env.envBindings[0].bytes)
	rt.NewNil(out)
}

// FailFast implements `failfast` (error): prints the decorated form
// of its argument and terminates the process with a non-zero exit
// code. It never returns.
func FailFast(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("error requires exactly one argument")
	}
	os.Stdout.Write(Print(env.envBindings[0]))
	os.Exit(1)
}

// ReadFile implements `read-file`: whole-file read of the named path
// into a String. A failure to open the file is fatal.
func ReadFile(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("read-file requires exactly one argument")
	}
	if !env.envBindings[0].Is(TagString) {
		fatalf("read-file requires its 1st argument to be a string")
	}
	path := string(env.envBindings[0].bytes)
	contents, err := os.ReadFile(path)
	if err != nil {
		fatalf("failed to open file %s", path)
	}
	rt.NewString(contents, out)
}

// WriteFile implements `write-file`: whole-file write of a String to
// the named path, returning Nil. A failure to open the file is fatal.
func WriteFile(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 2 {
		fatalf("write-file requires exactly two arguments")
	}
	if !env.envBindings[0].Is(TagString) {
		fatalf("write-file requires its 1st argument to be a string")
	}
	if !env.envBindings[1].Is(TagString) {
		fatalf("write-file requires its 2nd argument to be a string")
	}
	path := string(env.envBindings[0].bytes)
	if err := os.WriteFile(path, env.envBindings[1].bytes, 0o644); err != nil {
		fatalf("failed to open file %s", path)
	}
	rt.NewNil(out)
}
