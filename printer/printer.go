package printer

import (
	"strconv"
	"strings"

	"github.com/bshepherdson/mal/types"
)

func PrintStr(di types.Data) string {
	switch d := di.(type) {
	case *types.DList:
		outs := []string{}
		for _, m := range d.Members {
			outs = append(outs, PrintStr(m))
		}
		return "(" + strings.Join(outs, " ") + ")"

	case types.DNumber:
		return strconv.FormatInt(d.Num, 10)

	case types.DSymbol:
		return d.Name

	case types.DBool:
		return strconv.FormatBool(d.Val)

	case types.DNil:
		return "nil"

	case *types.DNative:
		return "#<native " + d.Name + ">"

	case *types.DClosure:
		if d.IsMacro {
			return "#<macro>"
		}
		return "#<function>"

	default:
		panic("Unknown Data type")
	}
}

// PrintList prints each of args and joins them with sep.
func PrintList(args []types.Data, sep string) string {
	strs := []string{}
	for _, expr := range args {
		strs = append(strs, PrintStr(expr))
	}
	return strings.Join(strs, sep)
}
