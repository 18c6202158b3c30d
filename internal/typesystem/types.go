// Package typesystem holds the simplified type classification shared by the
// analyzer and the evaluator. There are no parametric types: a function is
// just Function, and booleans are the Int type (0/1) throughout.
package typesystem

type Type int

const (
	Unknown Type = iota
	Int
	Float
	String
	Char
	Function
)

func (t Type) String() string {
	switch t {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Char:
		return "Char"
	case Function:
		return "Function"
	default:
		return "Unknown"
	}
}

// IsNumeric reports whether t participates in arithmetic and comparison.
func (t Type) IsNumeric() bool { return t == Int || t == Float }
