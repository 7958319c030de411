package pico

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

// FuzzInterpret feeds arbitrary sources through the full pipeline. The
// interpreter may reject input with an error but must never panic or run
// unbounded.
func FuzzInterpret(f *testing.F) {
	seeds := []string{
		"",
		"x = 1\n",
		"print 1 + 2 * 3\n",
		"if 1:\n  print 'a'\nelse:\n  print 'b'\n",
		"class P:\n  def __init__(n):\n    self.n = n\np = P(1)\nprint p.n\n",
		"x = 'unterminated",
		"x = \"esc\\q\\n\"\n",
		"a == b != c <= d >= e\n",
		"if 1:\n  if 2:\n    if 3:\n      x = 1\n",
		"print None, True, False\n",
		"return 1\n",
		"# just a comment\n",
		"99999999999999999999\n",
		"\t\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, source string) {
		engine := NewEngine(Config{StepQuota: 10000, RecursionLimit: 32, Output: io.Discard})
		script, err := engine.Compile(source)
		if err != nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		var out strings.Builder
		_, _ = script.Run(ctx, RunOptions{Output: &out})
	})
}

// FuzzLexerStreamShape checks the indentation-closure invariant on every
// input the lexer accepts: balanced Indent/Dedent counts and a single
// trailing Eof.
func FuzzLexerStreamShape(f *testing.F) {
	f.Add("if a:\n  b = 1\n")
	f.Add("x = 'str'\n\n  y = 2\n")
	f.Add("# comment only\n")
	f.Add("a\n\nb\n")

	f.Fuzz(func(t *testing.T, source string) {
		lex, err := NewLexerString(source)
		if err != nil {
			return
		}
		tokens := []Token{lex.CurrentToken()}
		for tokens[len(tokens)-1].Type != TokenEOF {
			tok, err := lex.NextToken()
			if err != nil {
				return
			}
			tokens = append(tokens, tok)
			if len(tokens) > 1<<20 {
				t.Fatalf("token stream did not terminate")
			}
		}

		indents, dedents, eofs := 0, 0, 0
		for i, tok := range tokens {
			switch tok.Type {
			case TokenIndent:
				indents++
			case TokenDedent:
				dedents++
			case TokenEOF:
				eofs++
			case TokenNewline:
				if i > 0 && tokens[i-1].Type == TokenNewline {
					t.Fatalf("consecutive Newline tokens in %q", source)
				}
			}
		}
		if indents != dedents {
			t.Fatalf("%q: %d indents vs %d dedents", source, indents, dedents)
		}
		if eofs != 1 {
			t.Fatalf("%q: %d Eof tokens", source, eofs)
		}
	})
}
