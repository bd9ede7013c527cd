package printer

import (
	"testing"

	"github.com/bshepherdson/mal/reader"
	"github.com/bshepherdson/mal/types"
)

func TestPrintStr(t *testing.T) {
	native := &types.DNative{Name: "+"}
	fn := &types.DClosure{Params: types.List(), Body: types.Nil}
	mac := &types.DClosure{Params: types.List(), Body: types.Nil, IsMacro: true}

	tests := []struct {
		in   types.Data
		want string
	}{
		{types.Nil, "nil"},
		{types.True, "true"},
		{types.False, "false"},
		{types.Number(-12), "-12"},
		{types.Symbol("foo"), "foo"},
		{types.List(), "()"},
		{types.List(types.Number(1), types.List(types.Symbol("a")), types.Nil), "(1 (a) nil)"},
		{native, "#<native +>"},
		{fn, "#<function>"},
		{mac, "#<macro>"},
	}
	for _, tt := range tests {
		if got := PrintStr(tt.in); got != tt.want {
			t.Errorf("PrintStr(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAtomRoundTrip(t *testing.T) {
	for _, src := range []string{"nil", "true", "false", "0", "42", "-9223372036854775808", "9223372036854775807"} {
		d, err := reader.ReadStr(src)
		if err != nil {
			t.Fatalf("ReadStr(%q): %v", src, err)
		}
		if got := PrintStr(d); got != src {
			t.Errorf("round trip of %q gave %q", src, got)
		}
	}
}

func TestPrintList(t *testing.T) {
	got := PrintList([]types.Data{types.Number(1), types.Symbol("b")}, " ")
	if got != "1 b" {
		t.Fatalf("got %q", got)
	}
}
