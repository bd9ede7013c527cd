package reader

import (
	"regexp"
	"strconv"

	. "github.com/bshepherdson/mal/types"
)

var (
	tokenRE  = regexp.MustCompile(`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]+)`)
	numberRE = regexp.MustCompile(`^-?[0-9]+$`)
)

type MalReader struct {
	tokens []string
	index  int
}

func (r *MalReader) Next() (string, bool) {
	t, ok := r.Peek()
	if !ok {
		return t, false
	}

	r.index++
	return t, true
}

func (r *MalReader) Peek() (string, bool) {
	if r.index >= len(r.tokens) {
		return "EOF", false
	}
	return r.tokens[r.index], true
}

func (r *MalReader) Done() bool {
	return r.index >= len(r.tokens)
}

func tokenizer(input string) []string {
	t := make([]string, 0, 16)
	for _, m := range tokenRE.FindAllStringSubmatch(input, -1) {
		tok := m[1]
		if tok == "" || tok[0] == ';' {
			continue // Comments and trailing whitespace.
		}
		t = append(t, tok)
	}
	return t
}

// ReadStr reads the first form in input.
func ReadStr(input string) (Data, error) {
	tokens := tokenizer(input)
	if len(tokens) == 0 {
		return nil, Errorf(ParseError, "no input")
	}

	return ReadForm(&MalReader{tokens, 0})
}

// ReadAll reads every top-level form in input.
func ReadAll(input string) ([]Data, error) {
	r := &MalReader{tokenizer(input), 0}
	forms := []Data{}
	for !r.Done() {
		f, err := ReadForm(r)
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, nil
}

func ReadForm(r *MalReader) (Data, error) {
	t, ok := r.Peek()
	if !ok {
		return nil, Errorf(ParseError, "expected form, got end-of-input")
	}

	switch t {
	case "'":
		return nextWrapped(r, "quote")
	case "`":
		return nextWrapped(r, "quasiquote")
	case "~":
		return nextWrapped(r, "unquote")
	case "~@":
		return nextWrapped(r, "splice-unquote")
	case "(":
		return readList(r)
	case ")":
		return nil, Errorf(ParseError, "unexpected `)`")
	default:
		return readAtom(r)
	}
}

func nextWrapped(r *MalReader, wrapper string) (Data, error) {
	r.Next()
	next, err := ReadForm(r)
	if err != nil {
		return nil, err
	}
	return List(Symbol(wrapper), next), nil
}

func readList(r *MalReader) (Data, error) {
	r.Next() // Skip the opening (
	ret := []Data{}
	for {
		t, ok := r.Peek()
		if !ok {
			return nil, Errorf(ParseError, "expected `)`, got end-of-input")
		}
		if t == ")" {
			break
		}

		f, err := ReadForm(r)
		if err != nil {
			return nil, err
		}
		ret = append(ret, f)
	}

	r.Next() // Skip over the ).
	return &DList{Members: ret}, nil
}

func readAtom(r *MalReader) (Data, error) {
	t, _ := r.Next()

	switch {
	case numberRE.MatchString(t):
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, Errorf(ParseError, "badly formatted number: %s", t)
		}
		return Number(n), nil
	case t == "nil":
		return Nil, nil
	case t == "true":
		return True, nil
	case t == "false":
		return False, nil
	default:
		return Symbol(t), nil
	}
}
