package eval

import (
	. "github.com/bshepherdson/mal/types"
)

// macroCall returns the macro named by the head of ast, if there is one.
func macroCall(ast Data, env *Env) (*DClosure, bool) {
	list, ok := ast.(*DList)
	if !ok || len(list.Members) == 0 {
		return nil, false
	}

	sym, ok := list.Members[0].(DSymbol)
	if !ok {
		return nil, false
	}
	if m, found := env.Find(sym.Name); found {
		if c, ok := m.(*DClosure); ok && c.IsMacro {
			return c, true
		}
	}
	return nil, false
}

// MacroExpand expands ast until its head is no longer a macro. The result is
// not evaluated.
func MacroExpand(ast Data, env *Env) (Data, error) {
	for {
		mac, ok := macroCall(ast, env)
		if !ok {
			return ast, nil
		}

		var err error
		ast, err = Apply(mac, ast.(*DList).Members[1:])
		if err != nil {
			return nil, err
		}
	}
}

// Quasiquote rewrites form into code that, once evaluated, rebuilds form with
// its unquote and splice-unquote parts filled in.
func Quasiquote(form Data) Data {
	switch f := form.(type) {
	case DSymbol:
		return List(Symbol("quote"), f)

	case *DList:
		if len(f.Members) == 2 && IsSymbol(f.Members[0], "unquote") {
			return f.Members[1]
		}

		var acc Data = List()
		for i := len(f.Members) - 1; i >= 0; i-- {
			elt := f.Members[i]
			if l, ok := elt.(*DList); ok && len(l.Members) == 2 && IsSymbol(l.Members[0], "splice-unquote") {
				acc = List(Symbol("concat"), l.Members[1], acc)
			} else {
				acc = List(Symbol("cons"), List(Symbol("quasiquote"), elt), acc)
			}
		}
		return acc

	default:
		return form
	}
}
