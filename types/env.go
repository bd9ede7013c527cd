package types

type Env struct {
	data  map[string]Data
	outer *Env
}

func NewEnv(outer *Env) *Env {
	return &Env{map[string]Data{}, outer}
}

func (e *Env) Outer() *Env {
	return e.outer
}

func (e *Env) Set(key string, value Data) {
	e.data[key] = value
}

// Define binds key in e itself, shadowing any outer binding.
func (e *Env) Define(key Data, value Data) (Data, error) {
	sym, ok := key.(DSymbol)
	if !ok {
		return nil, Errorf(TypeMismatch, "cannot bind non-symbol key")
	}
	e.Set(sym.Name, value)
	return value, nil
}

func (e *Env) Find(key string) (Data, bool) {
	for env := e; env != nil; env = env.outer {
		if value, ok := env.data[key]; ok {
			return value, true
		}
	}
	return nil, false
}

func (e *Env) Get(key string) (Data, error) {
	value, ok := e.Find(key)
	if !ok {
		return nil, Errorf(UnboundSymbol, "`%s` not found", key)
	}
	return value, nil
}

func (e *Env) Resolve(key Data) (Data, error) {
	sym, ok := key.(DSymbol)
	if !ok {
		return nil, Errorf(TypeMismatch, "invalid key type")
	}
	return e.Get(sym.Name)
}

// BindParams builds the environment for a closure call: a child of outer
// with params bound positionally to args. A "&" in params binds the symbol
// after it to a list of the remaining args.
func BindParams(outer *Env, params Data, args []Data) (*Env, error) {
	plist, ok := params.(*DList)
	if !ok {
		return nil, Errorf(TypeMismatch, "parameters must be a list")
	}

	env := NewEnv(outer)
	binds := plist.Members
	for i, p := range binds {
		sym, ok := p.(DSymbol)
		if !ok {
			return nil, Errorf(TypeMismatch, "parameter must be a symbol")
		}

		if sym.Name == "&" {
			if i != len(binds)-2 {
				return nil, Errorf(MalformedSpecialForm, "exactly 1 symbol must follow & in parameters; found %d", len(binds)-i-1)
			}
			if _, err := env.Define(binds[i+1], &DList{Members: args[i:]}); err != nil {
				return nil, Errorf(TypeMismatch, "rest parameter must be a symbol")
			}
			return env, nil
		}

		if i >= len(args) {
			return nil, Errorf(ArityMismatch, "not enough arguments: expected %d, got %d", len(binds), len(args))
		}
		env.Set(sym.Name, args[i])
	}

	if len(args) > len(binds) {
		return nil, Errorf(ArityMismatch, "too many arguments: expected %d, got %d", len(binds), len(args))
	}
	return env, nil
}
