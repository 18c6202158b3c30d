package token

// Stream is an ordered, immutable token sequence with single-pass
// consumption and bounded lookahead.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Next returns the next token and advances. Once the underlying sequence
// is exhausted it keeps returning the final EOF token.
func (s *Stream) Next() Token {
	if s.pos >= len(s.tokens) {
		if len(s.tokens) == 0 {
			return Token{Type: EOF, Line: 1, Column: 1}
		}
		return s.tokens[len(s.tokens)-1]
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// Peek returns up to n upcoming tokens without consuming them.
func (s *Stream) Peek(n int) []Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	return s.tokens[s.pos:end]
}

// Pos reports how many tokens have been consumed.
func (s *Stream) Pos() int { return s.pos }

// Len reports the total number of tokens in the stream.
func (s *Stream) Len() int { return len(s.tokens) }
