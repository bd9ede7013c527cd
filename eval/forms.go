package eval

import (
	. "github.com/bshepherdson/mal/types"
)

func checkLen(list []Data, n int, form string) error {
	if len(list) != n {
		return Errorf(MalformedSpecialForm, "%s expects %d forms; got %d", form, n-1, len(list)-1)
	}
	return nil
}

func sfDef(list []Data, env *Env) (Data, error) {
	if err := checkLen(list, 3, "def!"); err != nil {
		return nil, err
	}
	if _, ok := list[1].(DSymbol); !ok {
		return nil, Errorf(TypeMismatch, "first parameter for def! must be a symbol")
	}

	evald, err := Eval(list[2], env)
	if err != nil {
		return nil, err
	}
	return env.Define(list[1], evald)
}

// sfDefmacro binds a macro copy of the closure in the closure's own
// environment, leaving the original function untouched.
func sfDefmacro(list []Data, env *Env) (Data, error) {
	if err := checkLen(list, 3, "defmacro!"); err != nil {
		return nil, err
	}
	if _, ok := list[1].(DSymbol); !ok {
		return nil, Errorf(TypeMismatch, "first parameter for defmacro! must be a symbol")
	}

	evald, err := Eval(list[2], env)
	if err != nil {
		return nil, err
	}
	f, ok := evald.(*DClosure)
	if !ok {
		return nil, Errorf(TypeMismatch, "defmacro! expects a function")
	}

	mac := *f
	mac.IsMacro = true
	return f.Env.Define(list[1], &mac)
}

func sfFn(list []Data, env *Env) (Data, error) {
	if err := checkLen(list, 3, "fn*"); err != nil {
		return nil, err
	}
	if _, ok := list[1].(*DList); !ok {
		return nil, Errorf(TypeMismatch, "function parameters must be a list")
	}
	return &DClosure{Params: list[1], Body: list[2], Env: env}, nil
}

func sfQuote(list []Data, env *Env) (Data, error) {
	if err := checkLen(list, 2, "quote"); err != nil {
		return nil, err
	}
	return list[1], nil
}

func sfQuasiquoteExpand(list []Data, env *Env) (Data, error) {
	if err := checkLen(list, 2, "quasiquoteexpand"); err != nil {
		return nil, err
	}
	return Quasiquote(list[1]), nil
}

func sfMacroexpand(list []Data, env *Env) (Data, error) {
	if err := checkLen(list, 2, "macroexpand"); err != nil {
		return nil, err
	}
	return MacroExpand(list[1], env)
}
