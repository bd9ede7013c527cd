package types

// Data is any value the interpreter can read, evaluate or print.
type Data interface {
	malData()
}

type DNil struct{}

type DBool struct {
	Val bool
}

type DNumber struct {
	Num int64
}

type DSymbol struct {
	Name string
}

// DList is shared between every value that refers to it. Members must not be
// modified once the list has been built.
type DList struct {
	Members []Data
}

type NativeFn func(args []Data) (Data, error)

type DNative struct {
	Name string
	Fn   NativeFn
}

// DClosure is a user-defined function or macro. Env is the environment the
// fn* form was evaluated in.
type DClosure struct {
	Params  Data
	Body    Data
	Env     *Env
	IsMacro bool
}

func (DNil) malData()      {}
func (DBool) malData()     {}
func (DNumber) malData()   {}
func (DSymbol) malData()   {}
func (*DList) malData()    {}
func (*DNative) malData()  {}
func (*DClosure) malData() {}

var (
	Nil   Data = DNil{}
	True  Data = DBool{true}
	False Data = DBool{false}
)

func Bool(b bool) Data {
	if b {
		return True
	}
	return False
}

func Number(n int64) Data {
	return DNumber{n}
}

func Symbol(name string) Data {
	return DSymbol{name}
}

func List(members ...Data) *DList {
	return &DList{Members: members}
}

// IsSymbol reports whether d is the symbol called name.
func IsSymbol(d Data, name string) bool {
	s, ok := d.(DSymbol)
	return ok && s.Name == name
}

// Truthy is false only for nil and false.
func Truthy(d Data) bool {
	return d != Nil && d != False
}

// Equal compares values structurally. Lists are equal when their members
// are; functions are equal only to themselves.
func Equal(x, y Data) bool {
	switch a := x.(type) {
	case *DList:
		b, ok := y.(*DList)
		if !ok || len(a.Members) != len(b.Members) {
			return false
		}
		for i, m := range a.Members {
			if !Equal(m, b.Members[i]) {
				return false
			}
		}
		return true
	case *DNative:
		b, ok := y.(*DNative)
		return ok && a == b
	case *DClosure:
		b, ok := y.(*DClosure)
		return ok && a == b
	default:
		return x == y
	}
}
