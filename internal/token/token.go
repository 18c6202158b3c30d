package token

// TokenType identifies the exact lexical class of a token. The parser
// dispatches on these; the coarser Kind classification below is what the
// external token contract exposes.
type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	COMMENT = "COMMENT"

	// Identifiers and literals
	IDENT          = "IDENT"
	BACKTICK_IDENT = "BACKTICK_IDENT"
	INT            = "INT"
	FLOAT          = "FLOAT"
	STRING         = "STRING"
	CHAR           = "CHAR"

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	MOD      = "mod"
	EQ       = "=="
	NOT_EQ   = "<>"
	LT       = "<"
	GT       = ">"
	ARROW    = "->"

	// Delimiters
	LPAREN   = "("
	RPAREN   = ")"
	PIPE     = "|"
	SEMI     = ";"
	SEMISEMI = ";;"

	// Keywords
	LET       = "LET"
	IN        = "IN"
	MATCH     = "MATCH"
	WITH      = "WITH"
	FUN       = "FUN"
	TYPE      = "TYPE"
	IF        = "IF"
	THEN      = "THEN"
	ELSE      = "ELSE"
	REC       = "REC"
	MODULE    = "MODULE"
	OPEN      = "OPEN"
	AND       = "AND"
	OR        = "OR"
	EXCEPTION = "EXCEPTION"
	TRY       = "TRY"
)

// Token is a classified, positioned lexical unit. Literal holds the parsed
// value for literal tokens (int64, float64, string, rune) and the error
// message for ILLEGAL tokens; Lexeme is always the raw source text.
// Line and Column are 1-based and point at the token's first character.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"let":       LET,
	"in":        IN,
	"match":     MATCH,
	"with":      WITH,
	"fun":       FUN,
	"type":      TYPE,
	"if":        IF,
	"then":      THEN,
	"else":      ELSE,
	"rec":       REC,
	"module":    MODULE,
	"open":      OPEN,
	"and":       AND,
	"or":        OR,
	"exception": EXCEPTION,
	"try":       TRY,
	// mod is lexed from identifier text but acts as a multiplicative operator.
	"mod": MOD,
}

// LookupIdent maps identifier text to its keyword token type, or IDENT.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// Kind is the coarse classification exposed by the lex output contract.
type Kind string

const (
	KindKeyword       Kind = "Keyword"
	KindIdentifier    Kind = "Identifier"
	KindBacktickIdent Kind = "BacktickIdent"
	KindInt           Kind = "Int"
	KindFloat         Kind = "Float"
	KindString        Kind = "String"
	KindChar          Kind = "Char"
	KindOperator      Kind = "Operator"
	KindDelimiter     Kind = "Delimiter"
	KindComment       Kind = "Comment"
	KindError         Kind = "Error"
	KindEndOfInput    Kind = "EndOfInput"
)

// Kind returns the coarse class for a token type.
func (tt TokenType) Kind() Kind {
	switch tt {
	case IDENT:
		return KindIdentifier
	case BACKTICK_IDENT:
		return KindBacktickIdent
	case INT:
		return KindInt
	case FLOAT:
		return KindFloat
	case STRING:
		return KindString
	case CHAR:
		return KindChar
	case ASSIGN, PLUS, MINUS, ASTERISK, SLASH, MOD, EQ, NOT_EQ, LT, GT, ARROW:
		return KindOperator
	case LPAREN, RPAREN, PIPE, SEMI, SEMISEMI:
		return KindDelimiter
	case COMMENT:
		return KindComment
	case ILLEGAL:
		return KindError
	case EOF:
		return KindEndOfInput
	default:
		return KindKeyword
	}
}

func (t Token) Kind() Kind { return t.Type.Kind() }
