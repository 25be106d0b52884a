package tabcomp

import "strings"

// Characters escaped in an unquoted word on top of the dialect's word
// breaks. Mirrors the metacharacters the reference shells re-split on.
const bareSpecials = "\\ \t\n\"'`$!*()[]?;|&<>"

// Characters still special inside an unterminated double quote.
const doubleQuoteSpecials = "\\\"`$!"

// Suffixes marking a candidate as a prefix requiring further completion
// (directories, key=value stems, colon-separated namespaces). Such a
// candidate never receives the trailing separator.
const continuationSuffixes = "/=:"

// encode re-quotes the surviving candidates for the configured dialect and
// applies the single-candidate trailing separator.
func (f *Finder) encode(cands []Candidate, prefix string, prequote byte, firstColon int) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		v := c.Value
		// The shell already treats the pre-colon portion as typed; strip it
		// so the replacement does not duplicate it.
		if f.shell.colonWordBreak() && firstColon >= 0 && prequote == 0 {
			if head := prefix[:firstColon+1]; strings.HasPrefix(v, head) {
				v = v[len(head):]
			}
		}
		out = append(out, escapeWord(v, prequote, f.wordBreaks))
	}
	if len(out) == 1 && f.appendSpace && prequote == 0 && !isContinuation(cands[0].Value) {
		out[0] += " "
	}
	return out
}

func isContinuation(value string) bool {
	return value != "" && strings.ContainsRune(continuationSuffixes, rune(value[len(value)-1]))
}

// escapeWord escapes the characters still special under the open quoting
// state. Inside single quotes nothing can be escaped; the quote itself is
// spliced out and back in around a literal one.
func escapeWord(v string, prequote byte, wordBreaks string) string {
	switch prequote {
	case '\'':
		return strings.ReplaceAll(v, "'", `'\''`)
	case '"':
		return escapeSet(v, doubleQuoteSpecials)
	default:
		return escapeSet(v, bareSpecials+wordBreaks)
	}
}

func escapeSet(v, set string) string {
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if strings.IndexByte(set, v[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(v[i])
	}
	return b.String()
}
