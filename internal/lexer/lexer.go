package lexer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/camlet-lang/camlet/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// Tokenize scans the whole input. The result always ends with exactly one
// EOF token; the scan cursor strictly advances, so this terminates on any
// input.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	startLine, startCol := l.line, l.column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Lexeme: "==", Literal: "==", Line: startLine, Column: startCol}
		} else {
			tok = newToken(token.ASSIGN, l.ch, startLine, startCol)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch, startLine, startCol)
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Literal: "->", Line: startLine, Column: startCol}
		} else {
			tok = newToken(token.MINUS, l.ch, startLine, startCol)
		}
	case '*':
		tok = newToken(token.ASTERISK, l.ch, startLine, startCol)
	case '/':
		tok = newToken(token.SLASH, l.ch, startLine, startCol)
	case '<':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Lexeme: "<>", Literal: "<>", Line: startLine, Column: startCol}
		} else {
			tok = newToken(token.LT, l.ch, startLine, startCol)
		}
	case '>':
		tok = newToken(token.GT, l.ch, startLine, startCol)
	case '(':
		if l.peekChar() == '*' {
			return l.readBlockComment()
		}
		tok = newToken(token.LPAREN, l.ch, startLine, startCol)
	case ')':
		tok = newToken(token.RPAREN, l.ch, startLine, startCol)
	case '|':
		tok = newToken(token.PIPE, l.ch, startLine, startCol)
	case ';':
		if l.peekChar() == ';' {
			l.readChar()
			tok = token.Token{Type: token.SEMISEMI, Lexeme: ";;", Literal: ";;", Line: startLine, Column: startCol}
		} else {
			tok = newToken(token.SEMI, l.ch, startLine, startCol)
		}
	case '"':
		return l.readString()
	case '\'':
		return l.readCharLiteral()
	case '`':
		return l.readBacktickIdent()
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Line: startLine, Column: startCol}
	default:
		if isLetter(l.ch) {
			lexeme := l.readIdentifier()
			return token.Token{
				Type:    token.LookupIdent(lexeme),
				Lexeme:  lexeme,
				Literal: lexeme,
				Line:    startLine,
				Column:  startCol,
			}
		} else if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = illegalToken(string(l.ch), startLine, startCol,
			"unrecognized character %q", l.ch)
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// readBlockComment scans a nested (* ... *) comment with depth counting and
// returns it as a single COMMENT token. An unterminated comment degrades to
// one ILLEGAL token spanning from the opening (* to end of input.
func (l *Lexer) readBlockComment() token.Token {
	start := l.position
	startLine, startCol := l.line, l.column

	l.readChar() // consume (, now at *
	l.readChar() // consume *, now inside
	depth := 1

	for depth > 0 {
		if l.ch == 0 {
			return illegalToken(l.span(start), startLine, startCol, "unterminated comment")
		}
		if l.ch == '(' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			depth++
			continue
		}
		if l.ch == '*' && l.peekChar() == ')' {
			l.readChar()
			l.readChar()
			depth--
			continue
		}
		l.readChar()
	}

	lexeme := l.span(start)
	return token.Token{Type: token.COMMENT, Lexeme: lexeme, Literal: lexeme, Line: startLine, Column: startCol}
}

func (l *Lexer) readString() token.Token {
	start := l.position
	startLine, startCol := l.line, l.column

	var value []rune
	for {
		l.readChar()
		if l.ch == 0 || l.ch == '\n' {
			// The error span covers the opening quote up to the break.
			return illegalToken(l.span(start), startLine, startCol, "unterminated string")
		}
		if l.ch == '"' {
			break
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 || l.ch == '\n' {
				return illegalToken(l.span(start), startLine, startCol, "unterminated string")
			}
			value = append(value, unescape(l.ch))
			continue
		}
		value = append(value, l.ch)
	}

	lexeme := l.input[start:l.readPosition]
	l.readChar() // consume closing "
	return token.Token{Type: token.STRING, Lexeme: lexeme, Literal: string(value), Line: startLine, Column: startCol}
}

func (l *Lexer) readCharLiteral() token.Token {
	start := l.position
	startLine, startCol := l.line, l.column

	l.readChar()
	if l.ch == 0 || l.ch == '\n' {
		return illegalToken(l.span(start), startLine, startCol, "unterminated character literal")
	}
	if l.ch == '\'' {
		l.readChar()
		return illegalToken(l.span(start), startLine, startCol, "empty character literal")
	}

	var value rune
	if l.ch == '\\' {
		l.readChar()
		if l.ch == 0 || l.ch == '\n' {
			return illegalToken(l.span(start), startLine, startCol, "unterminated character literal")
		}
		value = unescape(l.ch)
	} else {
		value = l.ch
	}

	l.readChar()
	if l.ch != '\'' {
		return illegalToken(l.span(start), startLine, startCol, "unterminated character literal")
	}

	lexeme := l.input[start:l.readPosition]
	l.readChar() // consume closing '
	return token.Token{Type: token.CHAR, Lexeme: lexeme, Literal: value, Line: startLine, Column: startCol}
}

func (l *Lexer) readBacktickIdent() token.Token {
	start := l.position
	startLine, startCol := l.line, l.column

	for {
		l.readChar()
		if l.ch == 0 || l.ch == '\n' {
			return illegalToken(l.span(start), startLine, startCol, "unterminated backtick identifier")
		}
		if l.ch == '`' {
			break
		}
	}

	name := l.input[start+1 : l.position]
	lexeme := l.input[start:l.readPosition]
	l.readChar() // consume closing `
	return token.Token{Type: token.BACKTICK_IDENT, Lexeme: lexeme, Literal: name, Line: startLine, Column: startCol}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '\'' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() token.Token {
	start := l.position
	startLine, startCol := l.line, l.column
	isFloat := false

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' {
		isFloat = true
		l.readChar()
		if !isDigit(l.ch) {
			// A trailing bare dot is an error, not a silent truncation.
			return illegalToken(l.span(start), startLine, startCol,
				"malformed number: expected digit after '.'")
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if !isDigit(l.ch) {
			return illegalToken(l.span(start), startLine, startCol,
				"malformed number: expected digit after exponent")
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	lexeme := l.span(start)
	if isFloat {
		val, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return illegalToken(lexeme, startLine, startCol, "malformed float literal %q", lexeme)
		}
		return token.Token{Type: token.FLOAT, Lexeme: lexeme, Literal: val, Line: startLine, Column: startCol}
	}

	val, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return illegalToken(lexeme, startLine, startCol, "integer literal out of range: %s", lexeme)
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: val, Line: startLine, Column: startCol}
}

// span returns the source text from start up to the current char, clamped
// to the input (the cursor may sit one past the end after EOF).
func (l *Lexer) span(start int) string {
	end := l.position
	if end > len(l.input) {
		end = len(l.input)
	}
	if start > end {
		return ""
	}
	return l.input[start:end]
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		// \\ \" \' and any other escaped character pass through literally.
		return ch
	}
}

func newToken(tokenType token.TokenType, ch rune, line, col int) token.Token {
	literal := string(ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: line, Column: col}
}

func illegalToken(lexeme string, line, col int, format string, args ...interface{}) token.Token {
	return token.Token{
		Type:    token.ILLEGAL,
		Lexeme:  lexeme,
		Literal: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  col,
	}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
