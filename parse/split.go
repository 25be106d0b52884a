// Package parse provides shell-aware splitting of raw command lines into
// words, plus a cursor over the resulting word list used by the grammar
// walker.
//
// Splitting is lexical only: single quotes suppress all escaping until the
// closing quote, double quotes allow backslash-escaping of the quote, the
// backslash and the shell's expansion characters, and no command or variable
// substitution is ever performed. Unescaped $ and backtick outside quotes are
// passed through literally, which differs from what an interactive shell
// would do with them; this is a known limitation shared with the shells'
// own completion protocols.
package parse

import "strings"

// Line is the result of splitting a raw command line at a cursor position.
type Line struct {
	// Words holds the completed words before the cursor. The in-progress
	// word is never included.
	Words []string
	// Prefix is the in-progress word under the cursor with quoting and
	// escaping already resolved. Empty when the cursor follows whitespace.
	Prefix string
	// Prequote is the open quote character (0, single or double quote) when the
	// in-progress word sits inside an unterminated quote.
	Prequote byte
	// FirstColon is the index of the first unescaped colon in Prefix, or -1.
	// Some shells treat the colon as an implicit word break, so the encoder
	// needs to know where the shell considers the current word to start.
	FirstColon int
}

// SplitLine splits line at the byte offset point. A negative point or a
// point past the end of line means the whole line. An unterminated quote is
// not an error; it is reported through Line.Prequote.
func SplitLine(line string, point int) Line {
	if point >= 0 && point < len(line) {
		line = line[:point]
	}

	var (
		words  []string
		cur    strings.Builder
		inWord bool
		quote  byte
		colon  = -1
	)

	flush := func() {
		if inWord {
			words = append(words, cur.String())
			cur.Reset()
			inWord = false
			colon = -1
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch quote {
		case '\'':
			if c == '\'' {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case '"':
			switch c {
			case '"':
				quote = 0
			case '\\':
				if i+1 < len(line) {
					switch n := line[i+1]; n {
					case '"', '\\', '$', '`':
						cur.WriteByte(n)
						i++
					default:
						cur.WriteByte(c)
					}
				} else {
					cur.WriteByte(c)
				}
			default:
				cur.WriteByte(c)
			}
		default:
			switch c {
			case ' ', '\t', '\n':
				flush()
			case '\'', '"':
				quote = c
				inWord = true
			case '\\':
				if i+1 < len(line) {
					i++
					cur.WriteByte(line[i])
				}
				inWord = true
			case ':':
				if colon < 0 {
					colon = cur.Len()
				}
				cur.WriteByte(c)
				inWord = true
			default:
				cur.WriteByte(c)
				inWord = true
			}
		}
	}

	l := Line{Words: words, Prequote: quote, FirstColon: -1}
	if inWord || quote != 0 {
		l.Prefix = cur.String()
		l.FirstColon = colon
	}
	return l
}
