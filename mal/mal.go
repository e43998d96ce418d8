package mal

// ValType is the type of a Val.
type ValType uint

// Possible ValType values.
const (
	VInvalid ValType = iota
	VNil
	VBool
	VInt
	VString
	VKeyword
	VSymbol
	VList
	VVector

	numValTypes
)

var valTypeStrings = [numValTypes]string{
	VInvalid: "invalid",
	VNil:     "nil",
	VBool:    "bool",
	VInt:     "int",
	VString:  "string",
	VKeyword: "keyword",
	VSymbol:  "symbol",
	VList:    "list",
	VVector:  "vector",
}

func (t ValType) String() string {
	if t >= numValTypes {
		return valTypeStrings[VInvalid]
	}
	return valTypeStrings[t]
}

// Val is a mal value, the typed representation of one form.  Containers own
// their Cells exclusively -- values form a tree with no sharing and no
// cycles.
type Val struct {
	Type  ValType
	Num   uint64
	Str   string
	Bool  bool
	Cells []*Val
}

// Nil returns a Val representing nil, an absent value.
func Nil() *Val {
	return &Val{Type: VNil}
}

// Bool returns a Val representing the boolean b.
func Bool(b bool) *Val {
	return &Val{Type: VBool, Bool: b}
}

// Int returns a Val representing the non-negative integer x.
func Int(x uint64) *Val {
	return &Val{Type: VInt, Num: x}
}

// String returns a Val holding the raw quoted text of a string literal.  The
// text retains its surrounding quotes and is never unescaped.
func String(text string) *Val {
	return &Val{Type: VString, Str: text}
}

// Keyword returns a Val representing the keyword name, which includes its
// leading colon.
func Keyword(name string) *Val {
	return &Val{Type: VKeyword, Str: name}
}

// Symbol returns a Val representing the symbol sym.
func Symbol(sym string) *Val {
	return &Val{Type: VSymbol, Str: sym}
}

// List returns a Val representing a list with the given children.
func List(cells []*Val) *Val {
	return &Val{Type: VList, Cells: cells}
}

// Vector returns a Val representing a vector with the given children.
func Vector(cells []*Val) *Val {
	return &Val{Type: VVector, Cells: cells}
}

// Copy creates a deep copy of the receiver.
func (v *Val) Copy() *Val {
	if v == nil {
		return nil
	}
	cp := &Val{}
	*cp = *v
	cp.Cells = v.copyCells()
	return cp
}

func (v *Val) copyCells() []*Val {
	if len(v.Cells) == 0 {
		return nil
	}
	cells := make([]*Val, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}
