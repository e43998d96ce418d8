package mal

import (
	"bytes"
	"fmt"
	"strconv"
)

// String renders v in its canonical textual form.  The rendering of a value
// that was read from canonical text reproduces that text exactly; strings are
// printed with their raw quoted text and keywords with a single leading
// colon.
func (v *Val) String() string {
	switch v.Type {
	case VNil:
		return "nil"
	case VBool:
		return strconv.FormatBool(v.Bool)
	case VInt:
		return strconv.FormatUint(v.Num, 10)
	case VString, VSymbol:
		return v.Str
	case VKeyword:
		return ":" + v.Str[1:]
	case VList:
		return exprString(v, "(", ")")
	case VVector:
		return exprString(v, "[", "]")
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *Val, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	first := true
	for _, c := range v.Cells {
		s := c.String()
		if s == "" {
			continue
		}
		if !first {
			buf.WriteString(" ")
		}
		first = false
		buf.WriteString(s)
	}
	buf.WriteString(right)
	return buf.String()
}
