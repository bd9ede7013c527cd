package core

import (
	"fmt"
	"io"

	"github.com/bshepherdson/mal/eval"
	"github.com/bshepherdson/mal/printer"
	. "github.com/bshepherdson/mal/types"
)

// Namespace returns the native functions, keyed by the name they are bound
// to in the global environment. prn writes to out.
func Namespace(out io.Writer) map[string]NativeFn {
	return map[string]NativeFn{
		"+": arith("+", func(x, y int64) int64 { return x + y }),
		"-": arith("-", func(x, y int64) int64 { return x - y }),
		"*": arith("*", func(x, y int64) int64 { return x * y }),
		"/": div,

		// Comparisons
		"=":  equal,
		"<":  compare("<", func(x, y int64) bool { return x < y }),
		"<=": compare("<=", func(x, y int64) bool { return x <= y }),
		">":  compare(">", func(x, y int64) bool { return x > y }),
		">=": compare(">=", func(x, y int64) bool { return x >= y }),

		// Lists
		"list":   list,
		"list?":  listQ,
		"empty?": emptyQ,
		"count":  count,
		"cons":   cons,
		"concat": concat,
		"nth":    nth,
		"first":  first,
		"rest":   rest,

		// Predicates
		"nil?":    isA(func(d Data) bool { return d == Nil }),
		"symbol?": isA(isSymbol),
		"number?": isA(isNumber),
		"fn?":     isA(isFn),
		"macro?":  isA(isMacro),

		"apply": apply,

		// Output
		"prn": func(args []Data) (Data, error) {
			fmt.Fprintln(out, printer.PrintList(args, " "))
			return Nil, nil
		},
	}
}

// Expects two Number arguments; fails otherwise.
func prepNumbers(args []Data, op string) (int64, int64, error) {
	if len(args) != 2 {
		return 0, 0, Errorf(ArityMismatch, "expected 2 args to %s, got %d", op, len(args))
	}

	x, xok := args[0].(DNumber)
	y, yok := args[1].(DNumber)
	if !xok || !yok {
		return 0, 0, Errorf(TypeMismatch, "arguments to %s must be numbers", op)
	}
	return x.Num, y.Num, nil
}

func arith(op string, f func(x, y int64) int64) NativeFn {
	return func(args []Data) (Data, error) {
		x, y, err := prepNumbers(args, op)
		if err != nil {
			return nil, err
		}
		return Number(f(x, y)), nil
	}
}

func compare(op string, f func(x, y int64) bool) NativeFn {
	return func(args []Data) (Data, error) {
		x, y, err := prepNumbers(args, op)
		if err != nil {
			return nil, err
		}
		return Bool(f(x, y)), nil
	}
}

func div(args []Data) (Data, error) {
	x, y, err := prepNumbers(args, "/")
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, Errorf(TypeMismatch, "division by zero")
	}
	return Number(x / y), nil
}

func equal(args []Data) (Data, error) {
	if len(args) != 2 {
		return nil, Errorf(ArityMismatch, "= expects exactly 2 arguments")
	}
	return Bool(Equal(args[0], args[1])), nil
}

func isSymbol(d Data) bool {
	_, ok := d.(DSymbol)
	return ok
}

func isNumber(d Data) bool {
	_, ok := d.(DNumber)
	return ok
}

func isMacro(d Data) bool {
	c, ok := d.(*DClosure)
	return ok && c.IsMacro
}

func isFn(d Data) bool {
	switch f := d.(type) {
	case *DNative:
		return true
	case *DClosure:
		return !f.IsMacro
	}
	return false
}

func isA(pred func(Data) bool) NativeFn {
	return func(args []Data) (Data, error) {
		if len(args) != 1 {
			return nil, Errorf(ArityMismatch, "predicate expects a single value")
		}
		return Bool(pred(args[0])), nil
	}
}

// Lists
func list(args []Data) (Data, error) {
	return List(args...), nil
}

func listQ(args []Data) (Data, error) {
	if len(args) >= 1 {
		if _, ok := args[0].(*DList); ok {
			return True, nil
		}
	}
	return False, nil
}

func emptyQ(args []Data) (Data, error) {
	if len(args) == 0 {
		return nil, Errorf(ArityMismatch, "empty? expects a list")
	}
	l, ok := args[0].(*DList)
	if !ok {
		return nil, Errorf(TypeMismatch, "empty? expects a list")
	}
	return Bool(len(l.Members) == 0), nil
}

func count(args []Data) (Data, error) {
	if len(args) != 1 {
		return nil, Errorf(ArityMismatch, "count expects a list")
	}
	if args[0] == Nil {
		return Number(0), nil
	}
	l, ok := args[0].(*DList)
	if !ok {
		return nil, Errorf(TypeMismatch, "count expects a list")
	}
	return Number(int64(len(l.Members))), nil
}

func cons(args []Data) (Data, error) {
	if len(args) != 2 {
		return nil, Errorf(ArityMismatch, "cons expects two arguments")
	}
	l, ok := args[1].(*DList)
	if !ok {
		return nil, Errorf(TypeMismatch, "second argument to cons must be a list")
	}

	out := make([]Data, 0, len(l.Members)+1)
	out = append(out, args[0])
	out = append(out, l.Members...)
	return List(out...), nil
}

func concat(args []Data) (Data, error) {
	out := []Data{}
	for _, a := range args {
		l, ok := a.(*DList)
		if !ok {
			return nil, Errorf(TypeMismatch, "concat expects all args to be lists")
		}
		out = append(out, l.Members...)
	}
	return List(out...), nil
}

func nth(args []Data) (Data, error) {
	if len(args) != 2 {
		return nil, Errorf(ArityMismatch, "nth expects a list and number")
	}
	l, lok := args[0].(*DList)
	idx, nok := args[1].(DNumber)
	if !lok || !nok {
		return nil, Errorf(TypeMismatch, "nth expects a list and number")
	}
	if idx.Num < 0 || idx.Num >= int64(len(l.Members)) {
		return nil, Errorf(TypeMismatch, "nth: index out of bounds")
	}
	return l.Members[idx.Num], nil
}

func first(args []Data) (Data, error) {
	if len(args) != 1 {
		return nil, Errorf(ArityMismatch, "first expects a list")
	}
	if args[0] == Nil {
		return Nil, nil
	}
	l, ok := args[0].(*DList)
	if !ok {
		return nil, Errorf(TypeMismatch, "first expects a list")
	}
	if len(l.Members) == 0 {
		return Nil, nil
	}
	return l.Members[0], nil
}

func rest(args []Data) (Data, error) {
	if len(args) != 1 {
		return nil, Errorf(ArityMismatch, "rest expects a list")
	}
	if args[0] == Nil {
		return List(), nil
	}
	l, ok := args[0].(*DList)
	if !ok {
		return nil, Errorf(TypeMismatch, "rest expects a list")
	}
	if len(l.Members) == 0 {
		return l, nil // Empty lists are returned.
	}
	return List(l.Members[1:]...), nil
}

// apply calls its first argument with the remaining arguments, the last of
// which must be a list and is spliced in.
func apply(args []Data) (Data, error) {
	if len(args) < 2 {
		return nil, Errorf(ArityMismatch, "apply expects a function and a list")
	}
	last, ok := args[len(args)-1].(*DList)
	if !ok {
		return nil, Errorf(TypeMismatch, "last argument to apply must be a list")
	}

	callArgs := make([]Data, 0, len(args)-2+len(last.Members))
	callArgs = append(callArgs, args[1:len(args)-1]...)
	callArgs = append(callArgs, last.Members...)
	return eval.Apply(args[0], callArgs)
}
