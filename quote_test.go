package tabcomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeWord_Bare(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a b", `a\ b`},
		{"a@b.c", `a\@b.c`},
		{"http://url", `http\://url`},
		{"a$b", `a\$b`},
		{"back\\slash", `back\\slash`},
		{"semi;colon", `semi\;colon`},
		{"par(en", `par\(en`},
		{"glob*?[x]", `glob\*\?\[x\]`},
		{`quo"te'`, `quo\"te\'`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeWord(tt.in, 0, bashWordBreaks), "input %q", tt.in)
	}
}

func TestEscapeWord_DoubleQuote(t *testing.T) {
	// Only the characters still special inside double quotes are escaped.
	assert.Equal(t, `a b`, escapeWord("a b", '"', bashWordBreaks))
	assert.Equal(t, `a\$b`, escapeWord("a$b", '"', bashWordBreaks))
	assert.Equal(t, `a\"b`, escapeWord(`a"b`, '"', bashWordBreaks))
	assert.Equal(t, "a\\`b", escapeWord("a`b", '"', bashWordBreaks))
	assert.Equal(t, `a'b`, escapeWord("a'b", '"', bashWordBreaks))
}

func TestEscapeWord_SingleQuote(t *testing.T) {
	// Nothing escapes inside single quotes; the quote is spliced around.
	assert.Equal(t, `a $ b`, escapeWord("a $ b", '\'', bashWordBreaks))
	assert.Equal(t, `don'\''t`, escapeWord("don't", '\'', bashWordBreaks))
}

func TestIsContinuation(t *testing.T) {
	assert.True(t, isContinuation("dir/"))
	assert.True(t, isContinuation("key="))
	assert.True(t, isContinuation("ns:"))
	assert.False(t, isContinuation("word"))
	assert.False(t, isContinuation(""))
}

func TestEncode_SingleCandidateSpace(t *testing.T) {
	f := NewFinder(NewCommand("prog"))
	out := f.encode([]Candidate{{Value: "word"}}, "", 0, -1)
	assert.Equal(t, []string{"word "}, out)

	out = f.encode([]Candidate{{Value: "dir/"}}, "", 0, -1)
	assert.Equal(t, []string{"dir/"}, out)

	out = f.encode([]Candidate{{Value: "word"}}, "", '"', -1)
	assert.Equal(t, []string{"word"}, out, "no separator inside an open quote")

	out = f.encode([]Candidate{{Value: "a"}, {Value: "b"}}, "", 0, -1)
	assert.Equal(t, []string{"a", "b"}, out, "no separator with multiple candidates")
}

func TestEncode_ColonStrip(t *testing.T) {
	f := NewFinder(NewCommand("prog"))
	out := f.encode([]Candidate{{Value: "http://u1"}, {Value: "http://u2"}}, "http:", 0, 4)
	assert.Equal(t, []string{"//u1", "//u2"}, out)
}

func TestEncode_ColonStripOnlyForBash(t *testing.T) {
	f := NewFinder(NewCommand("prog"), WithShell(Zsh))
	out := f.encode([]Candidate{{Value: "http://u1"}, {Value: "http://u2"}}, "http:", 0, 4)
	assert.Equal(t, []string{"http://u1", "http://u2"}, out)
}

func TestEncode_NoColonStripInsideQuote(t *testing.T) {
	f := NewFinder(NewCommand("prog"))
	out := f.encode([]Candidate{{Value: "a:b"}, {Value: "a:c"}}, "a:", '"', 1)
	assert.Equal(t, []string{"a:b", "a:c"}, out)
}

func TestShellWordBreaks(t *testing.T) {
	assert.Equal(t, bashWordBreaks, Bash.wordBreaks())
	assert.Empty(t, Zsh.wordBreaks())
	assert.True(t, Bash.colonWordBreak())
	assert.False(t, Fish.colonWordBreak())
}

func TestShellFromName(t *testing.T) {
	assert.Equal(t, Zsh, ShellFromName("zsh"))
	assert.Equal(t, Fish, ShellFromName("fish"))
	assert.Equal(t, Tcsh, ShellFromName("tcsh"))
	assert.Equal(t, Bash, ShellFromName("bash"))
	assert.Equal(t, Bash, ShellFromName("unknown"))
	assert.Equal(t, "zsh", Zsh.String())
}
