package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cshung/ekans-go"
)

func main() {
	var (
		demo   = flag.String("demo", "addition", "Which built-in demonstration program to run: addition, cons, list-to-string, format, accessors, cycle")
		stress = flag.Bool("stress", false, "Collect after every constructor call (stress-tests the collector)")
	)
	flag.Parse()

	rt := ekans.Initialize(os.Args)
	if *stress {
		rt.SetOptions(ekans.RuntimeOptions{AutoCollectAfterEachConstruction: true})
	}
	defer rt.Finalize()

	run, ok := demos[*demo]
	if !ok {
		log.Fatalf("unknown demo %q", *demo)
	}
	result := run(rt)
	if result != nil {
		fmt.Print(string(ekans.Print(result)))
	}
}

var demos = map[string]func(rt *ekans.Runtime) *ekans.Value{
	"addition":       runAddition,
	"cons":           runCons,
	"list-to-string": runListToString,
	"format":         runFormat,
	"accessors":      runAccessors,
	"cycle":          runCycle,
}

// runAddition builds a global environment holding `+` at slot 0,
// calls it with arguments 1 and 2 via a local environment, and
// collects before and after the call with everything rooted.
func runAddition(rt *ekans.Runtime) *ekans.Value {
	var global, plus, one, two, local, result *ekans.Value
	rt.PushRootSlot(&global)
	rt.PushRootSlot(&plus)
	rt.PushRootSlot(&one)
	rt.PushRootSlot(&two)
	rt.PushRootSlot(&local)
	rt.PushRootSlot(&result)

	rt.NewEnvironment(nil, 1, &global)
	rt.NewBuiltinClosure(global, "+", &plus)
	ekans.SetEnvironment(global, 0, plus)

	rt.NewNumber(1, &one)
	rt.NewNumber(2, &two)
	rt.NewEnvironment(nil, 2, &local)
	ekans.SetEnvironment(local, 0, one)
	ekans.SetEnvironment(local, 1, two)

	rt.Collect()
	rt.Apply(plus, []*ekans.Value{one, two}, &result)
	rt.Collect()

	rt.PopRootSlots(6)
	return result
}

// runCons builds Number(1), Nil, and Pair(1, Nil), then collects.
func runCons(rt *ekans.Runtime) *ekans.Value {
	var a, b, c *ekans.Value
	rt.PushRootSlot(&a)
	rt.PushRootSlot(&b)
	rt.PushRootSlot(&c)
	rt.NewNumber(1, &a)
	rt.NewNil(&b)
	rt.NewPair(a, b, &c)
	rt.Collect()
	rt.PopRootSlots(3)
	return c
}

// runListToString builds the list (123456 "gapry" #t) and renders it
// with list→string.
func runListToString(rt *ekans.Runtime) *ekans.Value {
	var n, s, bl, listEnv, list, callEnv, result *ekans.Value
	rt.PushRootSlot(&n)
	rt.PushRootSlot(&s)
	rt.PushRootSlot(&bl)
	rt.PushRootSlot(&listEnv)
	rt.PushRootSlot(&list)
	rt.PushRootSlot(&callEnv)
	rt.PushRootSlot(&result)

	rt.NewNumber(123456, &n)
	rt.NewString([]byte("gapry"), &s)
	rt.NewBoolean(true, &bl)

	rt.NewEnvironment(nil, 3, &listEnv)
	ekans.SetEnvironment(listEnv, 0, n)
	ekans.SetEnvironment(listEnv, 1, s)
	ekans.SetEnvironment(listEnv, 2, bl)
	ekans.List(rt, listEnv, &list)

	rt.NewEnvironment(nil, 1, &callEnv)
	ekans.SetEnvironment(callEnv, 0, list)
	ekans.ListToString(rt, callEnv, &result)

	rt.PopRootSlots(7)
	return result
}

// runFormat fills "Hello ~a and ~a!" with "Alice" and "Bob".
func runFormat(rt *ekans.Runtime) *ekans.Value {
	var fmtStr, alice, bob, callEnv, result *ekans.Value
	rt.PushRootSlot(&fmtStr)
	rt.PushRootSlot(&alice)
	rt.PushRootSlot(&bob)
	rt.PushRootSlot(&callEnv)
	rt.PushRootSlot(&result)

	rt.NewString([]byte("Hello ~a and ~a!"), &fmtStr)
	rt.NewString([]byte("Alice"), &alice)
	rt.NewString([]byte("Bob"), &bob)

	rt.NewEnvironment(nil, 3, &callEnv)
	ekans.SetEnvironment(callEnv, 0, fmtStr)
	ekans.SetEnvironment(callEnv, 1, alice)
	ekans.SetEnvironment(callEnv, 2, bob)
	ekans.Format(rt, callEnv, &result)

	rt.PopRootSlots(5)
	return result
}

// runAccessors applies the cddadr accessor to (1 (2 3 4)), yielding (4).
func runAccessors(rt *ekans.Runtime) *ekans.Value {
	var n1, n2, n3, n4, inner, outer, callEnv, result *ekans.Value
	for _, slot := range []**ekans.Value{&n1, &n2, &n3, &n4, &inner, &outer, &callEnv, &result} {
		rt.PushRootSlot(slot)
	}

	rt.NewNumber(1, &n1)
	rt.NewNumber(2, &n2)
	rt.NewNumber(3, &n3)
	rt.NewNumber(4, &n4)

	var innerEnv *ekans.Value
	rt.PushRootSlot(&innerEnv)
	rt.NewEnvironment(nil, 3, &innerEnv)
	ekans.SetEnvironment(innerEnv, 0, n2)
	ekans.SetEnvironment(innerEnv, 1, n3)
	ekans.SetEnvironment(innerEnv, 2, n4)
	ekans.List(rt, innerEnv, &inner)

	var outerEnv *ekans.Value
	rt.PushRootSlot(&outerEnv)
	rt.NewEnvironment(nil, 2, &outerEnv)
	ekans.SetEnvironment(outerEnv, 0, n1)
	ekans.SetEnvironment(outerEnv, 1, inner)
	ekans.List(rt, outerEnv, &outer)

	rt.NewEnvironment(nil, 1, &callEnv)
	ekans.SetEnvironment(callEnv, 0, outer)
	ekans.Cddadr(rt, callEnv, &result)

	rt.PopRootSlots(10)
	return result
}

// runCycle builds a self-referential Pair, collects it while rooted
// (it survives), then unroots it and collects again (it is reclaimed)
// — demonstrated by reporting the heap size before and after.
func runCycle(rt *ekans.Runtime) *ekans.Value {
	var p, nilv *ekans.Value
	rt.PushRootSlot(&p)
	rt.PushRootSlot(&nilv)
	rt.NewNil(&nilv)
	rt.NewPair(nilv, nilv, &p)
	rt.PopRootSlots(1)
	p.SetPairTail(p)

	rt.Collect()
	beforeUnroot := rt.HeapLen()

	rt.PopRootSlots(1)
	rt.Collect()
	afterUnroot := rt.HeapLen()

	var result *ekans.Value
	rt.PushRootSlot(&result)
	rt.NewString([]byte(fmt.Sprintf("heap size %d before unrooting, %d after", beforeUnroot, afterUnroot)), &result)
	rt.PopRootSlots(1)
	return result
}
