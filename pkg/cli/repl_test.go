package cli

import "testing"

func TestPhraseComplete(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{"terminated", "let x = 1 ;;\n", true},
		{"unterminated", "let x = 1\n", false},
		{"terminator_inside_string", "let s = \"a;;b\"\n", false},
		{"terminator_after_string", "let s = \"a;;b\" ;;\n", true},
		{"terminator_inside_comment", "(* ;; *) let x = 1\n", false},
		{"terminator_inside_backtick_ident", "let `a;;b` = 1\n", false},
		{"mid_phrase", "1 ;; 2\n", true},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := phraseComplete(tc.input); got != tc.want {
				t.Errorf("phraseComplete(%q): got %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
