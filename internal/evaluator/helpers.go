package evaluator

import (
	"fmt"

	"github.com/camlet-lang/camlet/internal/token"
)

func newError(tok token.Token, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func isError(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == ERROR_OBJ
}
