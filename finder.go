package tabcomp

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/averil/tabcomp/parse"
)

// Finder drives the completion pipeline for one specification tree. The
// tree is read-only; a Finder may serve many requests in a long-lived
// process, but concurrent requests against the same Finder must be
// serialized by the caller.
type Finder struct {
	root *Command

	optionsMode     OptionsMode
	appendSpace     bool
	printSuppressed bool
	exclude         []string
	validator       ValidatorFunc
	shell           Shell
	wordBreaks      string
	delimiter       byte
	out             io.Writer
	logger          *zap.Logger

	display map[string]string
}

// FinderOption configures a Finder.
type FinderOption func(*Finder)

// NewFinder creates a Finder with the reference defaults: bash dialect,
// flags always offered, trailing separator on, vertical-tab delimiter.
func NewFinder(root *Command, opts ...FinderOption) *Finder {
	f := &Finder{
		root:        root,
		optionsMode: OptionsAlways,
		appendSpace: true,
		shell:       Bash,
		wordBreaks:  Bash.wordBreaks(),
		delimiter:   0x0b,
		out:         os.Stdout,
		logger:      newLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithOptionsMode controls when flag names are offered.
func WithOptionsMode(mode OptionsMode) FinderOption {
	return func(f *Finder) { f.optionsMode = mode }
}

// WithAppendSpace toggles the trailing separator on a single completed
// candidate.
func WithAppendSpace(on bool) FinderOption {
	return func(f *Finder) { f.appendSpace = on }
}

// WithSuppressed reveals suppressed arguments.
func WithSuppressed(show bool) FinderOption {
	return func(f *Finder) { f.printSuppressed = show }
}

// WithExclude sets literal strings never offered.
func WithExclude(values []string) FinderOption {
	return func(f *Finder) { f.exclude = values }
}

// WithValidator sets the acceptance predicate for value candidates.
func WithValidator(v ValidatorFunc) FinderOption {
	return func(f *Finder) { f.validator = v }
}

// WithShell selects the output dialect.
func WithShell(s Shell) FinderOption {
	return func(f *Finder) {
		f.shell = s
		f.wordBreaks = s.wordBreaks()
	}
}

// WithWordBreaks overrides the dialect's word-break characters, normally
// sourced from the shell's COMP_WORDBREAKS.
func WithWordBreaks(wb string) FinderOption {
	return func(f *Finder) { f.wordBreaks = wb }
}

// WithDelimiter sets the candidate delimiter used by Autocomplete.
func WithDelimiter(d byte) FinderOption {
	return func(f *Finder) { f.delimiter = d }
}

// WithOutput redirects Autocomplete's single write.
func WithOutput(w io.Writer) FinderOption {
	return func(f *Finder) { f.out = w }
}

// WithLogger overrides the debug logger.
func WithLogger(l *zap.Logger) FinderOption {
	return func(f *Finder) { f.logger = l }
}

// Complete runs the full pipeline for a raw line and cursor offset and
// returns the encoded candidates. Each call builds a fresh walk state, so a
// Finder can be reused request after request, REPL style.
func (f *Finder) Complete(line string, point int) []string {
	f.display = map[string]string{}

	l := parse.SplitLine(line, point)
	words := l.Words
	if len(words) > 0 {
		// The first word invokes the program; the grammar starts after it.
		words = words[1:]
	}

	res := f.walk(words)
	cands := f.filter(f.generate(res, l.Prefix), l.Prefix)
	encoded := f.encode(cands, l.Prefix, l.Prequote, l.FirstColon)

	f.logger.Debug("completion request",
		zap.String("line", line),
		zap.Int("point", point),
		zap.String("prefix", l.Prefix),
		zap.Int("candidates", len(encoded)))
	return encoded
}

// DisplayCompletions returns the display-only annotations gathered during
// the last Complete call, keyed by candidate (flag forms joined by spaces).
// The annotations are never written to the shell.
func (f *Finder) DisplayCompletions() map[string]string {
	return f.display
}

func (f *Finder) note(key, description string) {
	if f.display == nil {
		f.display = map[string]string{}
	}
	f.display[key] = description
}

// Autocomplete is the environment-protocol entry point used by the shell
// integration scripts. It activates only when _TABCOMP is set, performs
// exactly one write of delimiter-joined candidates, and reports whether the
// invocation was a completion request. Callers are expected to exit promptly
// when it returns true.
func (f *Finder) Autocomplete() (bool, error) {
	if os.Getenv("_TABCOMP") == "" {
		return false, nil
	}
	return true, f.autocompleteEnv(os.Getenv)
}

func (f *Finder) autocompleteEnv(getenv func(string) string) error {
	line := getenv("COMP_LINE")
	point := len(line)
	if raw := getenv("COMP_POINT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid COMP_POINT %q: %w", raw, err)
		}
		if p >= 0 && p < point {
			point = p
		}
	}

	if shell := getenv("_TABCOMP_SHELL"); shell != "" {
		f.shell = ShellFromName(shell)
		f.wordBreaks = f.shell.wordBreaks()
	}
	if wb := getenv("_TABCOMP_COMP_WORDBREAKS"); wb != "" {
		f.wordBreaks = strings.Map(dropSpace, wb)
	}
	if getenv("_TABCOMP_SUPPRESS_SPACE") == "1" {
		f.appendSpace = false
	}
	if raw := getenv("_TABCOMP_EXCLUDE"); raw != "" {
		values, err := parse.Split(raw)
		if err != nil {
			f.logger.Debug("ignoring malformed _TABCOMP_EXCLUDE", zap.Error(err))
		} else {
			f.exclude = append(f.exclude, values...)
		}
	}

	delimiter := string(f.delimiter)
	if ifs := getenv("_TABCOMP_IFS"); ifs != "" {
		delimiter = ifs
	}

	completions := f.Complete(line, point)
	_, err := io.WriteString(f.out, strings.Join(completions, delimiter))
	return err
}

func dropSpace(r rune) rune {
	switch r {
	case ' ', '\t', '\n':
		return -1
	}
	return r
}
