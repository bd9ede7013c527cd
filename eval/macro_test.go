package eval

import (
	"testing"

	. "github.com/bshepherdson/mal/types"
)

func TestQuasiquoteAtoms(t *testing.T) {
	for _, d := range []Data{Nil, True, Number(3)} {
		if got := Quasiquote(d); got != d {
			t.Errorf("Quasiquote(%#v) = %#v, want it unchanged", d, got)
		}
	}

	got := Quasiquote(Symbol("s"))
	if !Equal(got, List(Symbol("quote"), Symbol("s"))) {
		t.Errorf("Quasiquote(s) = %#v, want (quote s)", got)
	}
}

func TestQuasiquoteDoesNotMutateInput(t *testing.T) {
	form := List(Number(1), List(Symbol("splice-unquote"), Symbol("xs")))
	before := List(Number(1), List(Symbol("splice-unquote"), Symbol("xs")))
	Quasiquote(form)
	if !Equal(form, before) {
		t.Fatalf("input changed to %#v", form)
	}
}

func TestMacroCall(t *testing.T) {
	env := NewEnv(nil)
	fn := &DClosure{Params: List(), Body: Nil, Env: env}
	mac := &DClosure{Params: List(), Body: Nil, Env: env, IsMacro: true}
	env.Set("f", fn)
	env.Set("m", mac)

	if _, ok := macroCall(List(Symbol("f")), env); ok {
		t.Error("function treated as macro")
	}
	if got, ok := macroCall(List(Symbol("m")), env); !ok || got != mac {
		t.Error("macro not found")
	}
	if _, ok := macroCall(Symbol("m"), env); ok {
		t.Error("bare symbol treated as macro call")
	}
	if _, ok := macroCall(List(), env); ok {
		t.Error("empty list treated as macro call")
	}
}
