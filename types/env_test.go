package types

import (
	"errors"
	"testing"
)

func mustGet(t *testing.T, env *Env, key string) Data {
	t.Helper()
	v, err := env.Get(key)
	if err != nil {
		t.Fatalf("Get(%q): %v", key, err)
	}
	return v
}

func TestEnvShadowing(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set("x", Number(1))
	inner := NewEnv(outer)

	if got := mustGet(t, inner, "x"); got != Number(1) {
		t.Fatalf("inner sees %v, want 1", got)
	}

	if _, err := inner.Define(Symbol("x"), Number(2)); err != nil {
		t.Fatal(err)
	}
	if got := mustGet(t, inner, "x"); got != Number(2) {
		t.Fatalf("inner sees %v, want 2", got)
	}
	if got := mustGet(t, outer, "x"); got != Number(1) {
		t.Fatalf("outer sees %v after shadowing, want 1", got)
	}
}

func TestEnvLaterDefinitionsVisible(t *testing.T) {
	outer := NewEnv(nil)
	inner := NewEnv(outer)
	outer.Set("y", Number(7))

	if got := mustGet(t, inner, "y"); got != Number(7) {
		t.Fatalf("got %v, want 7", got)
	}
}

func TestEnvUnbound(t *testing.T) {
	env := NewEnv(NewEnv(nil))
	_, err := env.Get("nope")
	if !errors.Is(err, ErrUnbound) {
		t.Fatalf("want unbound symbol error, got %v", err)
	}
	if err.Error() != "`nope` not found" {
		t.Fatalf("message = %q", err.Error())
	}

	if _, ok := env.Find("nope"); ok {
		t.Fatal("Find reported a missing key")
	}
}

func TestEnvDefineRejectsNonSymbol(t *testing.T) {
	env := NewEnv(nil)
	if _, err := env.Define(Number(1), Nil); !errors.Is(err, ErrType) {
		t.Fatalf("want type mismatch, got %v", err)
	}
	if _, err := env.Resolve(Number(1)); !errors.Is(err, ErrType) {
		t.Fatalf("want type mismatch, got %v", err)
	}
}

func params(names ...string) Data {
	l := &DList{}
	for _, n := range names {
		l.Members = append(l.Members, Symbol(n))
	}
	return l
}

func TestBindParamsVariadic(t *testing.T) {
	env, err := BindParams(nil, params("a", "&", "b"), []Data{Number(1), Number(2), Number(3)})
	if err != nil {
		t.Fatal(err)
	}

	if got := mustGet(t, env, "a"); got != Number(1) {
		t.Fatalf("a = %v, want 1", got)
	}
	b, ok := mustGet(t, env, "b").(*DList)
	if !ok || !Equal(b, List(Number(2), Number(3))) {
		t.Fatalf("b = %#v, want (2 3)", b)
	}
}

func TestBindParamsEmptyRest(t *testing.T) {
	env, err := BindParams(nil, params("a", "&", "rest"), []Data{Number(1)})
	if err != nil {
		t.Fatal(err)
	}
	b, ok := mustGet(t, env, "rest").(*DList)
	if !ok || len(b.Members) != 0 {
		t.Fatalf("rest = %#v, want ()", b)
	}
}

func TestBindParamsChildOfOuter(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set("g", True)
	env, err := BindParams(outer, params("g"), []Data{False})
	if err != nil {
		t.Fatal(err)
	}
	if env.Outer() != outer {
		t.Fatal("parameter env is not a child of the closure env")
	}
	if mustGet(t, env, "g") != False || mustGet(t, outer, "g") != True {
		t.Fatal("parameter binding leaked into the outer env")
	}
}

func TestBindParamsErrors(t *testing.T) {
	tests := []struct {
		name   string
		params Data
		args   []Data
		want   error
	}{
		{"not a list", Symbol("a"), nil, ErrType},
		{"non-symbol param", List(Number(1)), []Data{Nil}, ErrType},
		{"too few", params("a", "b"), []Data{Nil}, ErrArity},
		{"too many", params("a"), []Data{Nil, Nil}, ErrArity},
		{"too few before rest", params("a", "b", "&", "c"), []Data{Nil}, ErrArity},
		{"dangling rest", params("a", "&"), []Data{Nil}, ErrMalformed},
		{"two after rest", params("&", "a", "b"), nil, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BindParams(nil, tt.params, tt.args)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}
