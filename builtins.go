package ekans

// Builtins maps every primitive's source name to its NativeFunction
// implementation. A source-language compiler targeting this runtime
// uses this table to resolve a global binding to the closure a
// generated program installs at startup; within the runtime only
// NewBuiltinClosure consults it.
var Builtins = map[string]NativeFunction{
	"+":         Add,
	"-":         Subtract,
	"*":         Multiply,
	"/":         Divide,
	"<":         LessThan,
	">":         GreaterThan,
	"not":       Not,
	"=":         Equals,
	"char<=":    CharLessEqual,
	"char>=":    CharGreaterEqual,
	"char→int":  CharToInt,
	"string→list": StringToList,
	"cons":      Cons,
	"list":      List,
	"null?":     IsNull,
	"pair?":     IsPair,
	"car":       Car,
	"cdr":       Cdr,
	"cadr":      Cadr,
	"caddr":     Caddr,
	"cddr":      Cddr,
	"cdadr":     Cdadr,
	"cddadr":    Cddadr,
	"caadr":     Caadr,
	"caar":      Caar,
	"cdar":      Cdar,
	"cdddr":     Cdddr,
	"cadddr":    Cadddr,
	"member":    Member,
	"args":      Args,
	"println":   Println,
	"failfast":  FailFast,
	"string-append": StringAppend,
	"format":    Format,
	"list→string": ListToString,
	"read-file": ReadFile,
	"write-file": WriteFile,
}

// NewBuiltinClosure allocates a Closure over the global environment
// for the named primitive. Fatal if name is not a known primitive.
func (rt *Runtime) NewBuiltinClosure(global *Value, name string, out **Value) {
	fn, ok := Builtins[name]
	if !ok {
		fatalf("unknown builtin %q", name)
	}
	rt.NewClosure(global, fn, out)
}
