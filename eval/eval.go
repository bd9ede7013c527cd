package eval

import (
	"github.com/bshepherdson/mal/printer"
	. "github.com/bshepherdson/mal/types"
)

type specialForm func(list []Data, env *Env) (Data, error)

// Special forms that never continue in tail position. The tail forms live in
// the switch in Eval.
var specialForms = map[string]specialForm{}

func init() {
	specialForms["def!"] = sfDef
	specialForms["defmacro!"] = sfDefmacro
	specialForms["fn*"] = sfFn
	specialForms["quote"] = sfQuote
	specialForms["quasiquoteexpand"] = sfQuasiquoteExpand
	specialForms["macroexpand"] = sfMacroexpand
}

// Eval evaluates ast in env. Tail positions (let*, do, if, quasiquote and
// closure calls) replace ast and env and go around the loop again instead of
// recursing, so tail recursion runs in constant stack.
func Eval(ast Data, env *Env) (Data, error) {
	for {
		list, ok := ast.(*DList)
		if !ok || len(list.Members) == 0 {
			return evalAtom(ast, env)
		}

		if _, ok := macroCall(ast, env); ok {
			var err error
			ast, err = MacroExpand(ast, env)
			if err != nil {
				return nil, err
			}
			continue
		}

		m := list.Members
		if sym, ok := m[0].(DSymbol); ok {
			switch sym.Name {
			case "let*":
				if len(m) != 3 {
					return nil, Errorf(MalformedSpecialForm, "let* expects bindings and a body; got %d forms", len(m)-1)
				}
				bl, ok := m[1].(*DList)
				if !ok {
					return nil, Errorf(MalformedSpecialForm, "first parameter of let* must be a list")
				}

				bindings := bl.Members
				if len(bindings)%2 != 0 {
					return nil, Errorf(MalformedSpecialForm, "let* bindings must come in pairs; found %d", len(bindings))
				}

				letEnv := NewEnv(env)
				for i := 0; i < len(bindings); i += 2 {
					value, err := Eval(bindings[i+1], letEnv)
					if err != nil {
						return nil, err
					}
					if _, err := letEnv.Define(bindings[i], value); err != nil {
						return nil, Errorf(TypeMismatch, "left-hand binding must be a symbol")
					}
				}

				ast = m[2]
				env = letEnv
				continue

			case "quasiquote":
				if len(m) != 2 {
					return nil, Errorf(MalformedSpecialForm, "quasiquote expects 1 form; got %d", len(m)-1)
				}
				ast = Quasiquote(m[1])
				continue

			case "do":
				if len(m) == 1 {
					return Nil, nil
				}
				for _, form := range m[1 : len(m)-1] {
					if _, err := Eval(form, env); err != nil {
						return nil, err
					}
				}
				ast = m[len(m)-1]
				continue

			case "if":
				if len(m) != 3 && len(m) != 4 {
					return nil, Errorf(MalformedSpecialForm, "if expects a condition and 1 or 2 branches; got %d forms", len(m)-1)
				}
				cond, err := Eval(m[1], env)
				if err != nil {
					return nil, err
				}
				if Truthy(cond) {
					ast = m[2]
					continue
				}
				if len(m) == 3 {
					return Nil, nil
				}
				ast = m[3]
				continue
			}

			if sf, ok := specialForms[sym.Name]; ok {
				return sf(m, env)
			}
		}

		evald, err := evalList(m, env)
		if err != nil {
			return nil, err
		}

		switch f := evald[0].(type) {
		case *DNative:
			return f.Fn(evald[1:])
		case *DClosure:
			newEnv, err := BindParams(f.Env, f.Params, evald[1:])
			if err != nil {
				return nil, err
			}
			ast = f.Body
			env = newEnv
			continue // TCO
		default:
			return nil, Errorf(TypeMismatch, "attempt to call a non-function: %s", printer.PrintStr(evald[0]))
		}
	}
}

// Apply calls fn with arguments that have already been evaluated.
func Apply(fn Data, args []Data) (Data, error) {
	switch f := fn.(type) {
	case *DNative:
		return f.Fn(args)
	case *DClosure:
		env, err := BindParams(f.Env, f.Params, args)
		if err != nil {
			return nil, err
		}
		return Eval(f.Body, env)
	default:
		return nil, Errorf(TypeMismatch, "attempt to call a non-function: %s", printer.PrintStr(fn))
	}
}

func evalAtom(ast Data, env *Env) (Data, error) {
	if _, ok := ast.(DSymbol); ok {
		return env.Resolve(ast)
	}
	return ast, nil
}

func evalList(list []Data, env *Env) ([]Data, error) {
	ret := make([]Data, 0, len(list))
	for _, expr := range list {
		evald, err := Eval(expr, env)
		if err != nil {
			return nil, err
		}
		ret = append(ret, evald)
	}
	return ret, nil
}
