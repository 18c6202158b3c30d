package evaluator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/camlet-lang/camlet/internal/ast"
	"github.com/camlet-lang/camlet/internal/typesystem"
)

type ObjectType string

const (
	INTEGER_OBJ  = "INTEGER"
	FLOAT_OBJ    = "FLOAT"
	STRING_OBJ   = "STRING"
	CHAR_OBJ     = "CHAR"
	FUNCTION_OBJ = "FUNCTION"
	ERROR_OBJ    = "ERROR"
)

// Object is a runtime value. Inspect renders it the way result rows and the
// REPL print it; Kind maps it back onto the analyzer's type lattice.
type Object interface {
	Type() ObjectType
	Inspect() string
	Kind() typesystem.Type
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType      { return INTEGER_OBJ }
func (i *Integer) Inspect() string       { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Kind() typesystem.Type { return typesystem.Int }

type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	// Keep finite floats visually distinct from ints; Inf and NaN have no
	// decimal point to miss.
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f.Value, 0) && !math.IsNaN(f.Value) {
		s += "."
	}
	return s
}
func (f *Float) Kind() typesystem.Type { return typesystem.Float }

type String struct {
	Value string
}

func (s *String) Type() ObjectType      { return STRING_OBJ }
func (s *String) Inspect() string       { return strconv.Quote(s.Value) }
func (s *String) Kind() typesystem.Type { return typesystem.String }

type Char struct {
	Value rune
}

func (c *Char) Type() ObjectType      { return CHAR_OBJ }
func (c *Char) Inspect() string       { return strconv.QuoteRune(c.Value) }
func (c *Char) Kind() typesystem.Type { return typesystem.Char }

// Function is a closure over a single parameter. Multi-parameter functions
// are chains of these, one link per parameter. Name is set for named
// declarations so recursion can patch the closure environment.
type Function struct {
	Param string
	Body  ast.Expression
	Env   *Environment
	Name  string
}

func (f *Function) Type() ObjectType      { return FUNCTION_OBJ }
func (f *Function) Inspect() string       { return "<fun>" }
func (f *Function) Kind() typesystem.Type { return typesystem.Function }

// Error is a runtime failure carried as a value so evaluation can unwind
// without panicking.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Type() ObjectType      { return ERROR_OBJ }
func (e *Error) Inspect() string       { return fmt.Sprintf("runtime error: %s", e.Message) }
func (e *Error) Kind() typesystem.Type { return typesystem.Unknown }
