// Package tabcomp implements dynamic shell tab completion for programs whose
// argument grammar is declared as a tree of commands, flags and positionals.
// Given a partially typed command line and a cursor position it determines
// the candidate words the shell should offer next, re-quoted for the shell
// dialect consuming them.
//
// The pipeline is tokenize -> walk -> generate -> filter -> encode. The
// specification tree is never mutated during a completion pass; all transient
// state lives in a per-request walk state.
package tabcomp

import "errors"

// CompleterFunc produces candidate strings for an argument. It receives the
// literal in-progress prefix and a read-only snapshot of the values parsed so
// far. The snapshot is best-effort and may describe an incomplete or invalid
// invocation; completers must tolerate that. A panicking completer
// contributes no candidates and never fails the request.
type CompleterFunc func(prefix string, parsed map[string]string) []string

// ValidatorFunc is an acceptance predicate applied to value candidates
// (choices, completer output, filesystem entries). Rejecting every candidate
// is a valid outcome and yields an empty completion.
type ValidatorFunc func(candidate, prefix string) bool

// OptionsMode controls when flag invocation strings are offered alongside
// value candidates.
type OptionsMode int

const (
	// OptionsAlways offers flags at every word boundary.
	OptionsAlways OptionsMode = iota
	// OptionsNone offers flags only once the prefix starts with a dash.
	OptionsNone
	// OptionsLong behaves like OptionsAlways but, at an empty prefix, offers
	// only each flag's long forms, falling back to the short ones when a flag
	// has no long form.
	OptionsLong
	// OptionsShort is the short-form counterpart of OptionsLong.
	OptionsShort
)

// Shell selects the escaping and word-break rules of the consuming shell.
type Shell int

const (
	Bash Shell = iota
	Zsh
	Fish
	Tcsh
)

// bashWordBreaks mirrors the default COMP_WORDBREAKS value of bash minus
// whitespace, which is handled by the tokenizer.
const bashWordBreaks = "\"'@><=;|&(:"

func (s Shell) wordBreaks() string {
	if s == Bash {
		return bashWordBreaks
	}
	return ""
}

// colonWordBreak reports whether the shell splits the current word on
// unescaped colons, in which case the encoder strips the pre-colon portion
// the shell already considers typed.
func (s Shell) colonWordBreak() bool {
	return s == Bash
}

func (s Shell) String() string {
	switch s {
	case Bash:
		return "bash"
	case Zsh:
		return "zsh"
	case Fish:
		return "fish"
	case Tcsh:
		return "tcsh"
	}
	return "unknown"
}

// ShellFromName maps a shell name to its dialect, defaulting to bash.
func ShellFromName(name string) Shell {
	switch name {
	case "zsh":
		return Zsh
	case "fish":
		return Fish
	case "tcsh":
		return Tcsh
	default:
		return Bash
	}
}

// ArityKind is the closed set of value-consumption patterns an argument can
// declare. The walker switches on the kind; there is no behavior attached to
// arguments themselves.
type ArityKind int

const (
	// ArityExact consumes exactly Count values.
	ArityExact ArityKind = iota
	// ArityOptional consumes zero or one value.
	ArityOptional
	// ArityZeroOrMore consumes any number of values.
	ArityZeroOrMore
	// ArityOneOrMore consumes at least one value.
	ArityOneOrMore
	// ArityRemainder consumes every remaining word verbatim, including words
	// that look like flags, and disables flag recognition for the rest of
	// the line.
	ArityRemainder
)

// Arity describes how many values an argument consumes.
type Arity struct {
	Kind  ArityKind
	Count int
}

// Exactly returns an exact-count arity.
func Exactly(n int) Arity {
	return Arity{Kind: ArityExact, Count: n}
}

// Optional consumes zero or one value.
func Optional() Arity { return Arity{Kind: ArityOptional} }

// ZeroOrMore consumes any number of values.
func ZeroOrMore() Arity { return Arity{Kind: ArityZeroOrMore} }

// OneOrMore consumes one or more values.
func OneOrMore() Arity { return Arity{Kind: ArityOneOrMore} }

// Remainder consumes all remaining words verbatim.
func Remainder() Arity { return Arity{Kind: ArityRemainder} }

// min returns the fewest values the arity accepts.
func (a Arity) min() int {
	switch a.Kind {
	case ArityExact:
		return a.Count
	case ArityOneOrMore:
		return 1
	default:
		return 0
	}
}

// max returns the most values the arity accepts, -1 meaning unbounded.
func (a Arity) max() int {
	switch a.Kind {
	case ArityExact:
		return a.Count
	case ArityOptional:
		return 1
	default:
		return -1
	}
}

var (
	ErrFlagExpected      = errors.New("argument declares no invocation strings")
	ErrInvalidFlagForm   = errors.New("flag form must start with the option prefix")
	ErrFlagAlreadyExists = errors.New("flag form already registered")
	ErrPositionalFlag    = errors.New("positional argument cannot declare invocation strings")
	ErrCommandExists     = errors.New("subcommand already registered")
	ErrEmptyCommandName  = errors.New("subcommand name cannot be empty")
)
