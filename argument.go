package tabcomp

import (
	"fmt"
	"strings"
)

// Argument declares one completable argument: either a positional (no
// invocation strings) or a flag (one or more invocation strings such as a
// short and a long form). Arguments are built once and treated as read-only
// by every completion request.
type Argument struct {
	// Name is the destination the argument's value is recorded under in the
	// parsed-value snapshot handed to completers. When empty it is derived
	// from the first long invocation string.
	Name        string
	Description string
	// Flags holds the invocation strings for a flag argument. An empty slice
	// marks the argument as positional.
	Flags []string
	// Arity defaults to Exactly(1).
	Arity Arity
	// Choices is an ordered closed set of acceptable values. Values may be
	// non-strings and are stringified before comparison.
	Choices []any
	// Completer, when set, supplies dynamic candidates.
	Completer CompleterFunc
	// Suppressed arguments are excluded from candidates unless the finder is
	// configured to reveal them.
	Suppressed bool
	// Groups names the mutually-exclusive groups this argument belongs to.
	Groups []string
}

// ConfigureArgumentFunc configures an Argument during construction.
type ConfigureArgumentFunc func(*Argument)

// NewArg builds an Argument from option functions.
func NewArg(configs ...ConfigureArgumentFunc) *Argument {
	arg := &Argument{Arity: Exactly(1)}
	for _, config := range configs {
		config(arg)
	}
	return arg
}

// WithName sets the destination name.
func WithName(name string) ConfigureArgumentFunc {
	return func(a *Argument) { a.Name = name }
}

// WithDescription sets the display-only annotation carried next to the
// argument's candidates. It is never sent to the shell.
func WithDescription(desc string) ConfigureArgumentFunc {
	return func(a *Argument) { a.Description = desc }
}

// WithFlags declares the argument's invocation strings, making it a flag.
func WithFlags(forms ...string) ConfigureArgumentFunc {
	return func(a *Argument) { a.Flags = forms }
}

// WithArity overrides the default Exactly(1) arity.
func WithArity(arity Arity) ConfigureArgumentFunc {
	return func(a *Argument) { a.Arity = arity }
}

// Standalone declares a boolean flag which consumes no value.
func Standalone() ConfigureArgumentFunc {
	return func(a *Argument) { a.Arity = Exactly(0) }
}

// WithChoices sets the closed choice set.
func WithChoices(choices ...any) ConfigureArgumentFunc {
	return func(a *Argument) { a.Choices = choices }
}

// WithCompleter attaches a dynamic completer.
func WithCompleter(completer CompleterFunc) ConfigureArgumentFunc {
	return func(a *Argument) { a.Completer = completer }
}

// WithGroups adds the argument to mutually-exclusive groups.
func WithGroups(groups ...string) ConfigureArgumentFunc {
	return func(a *Argument) { a.Groups = append(a.Groups, groups...) }
}

// Suppress hides the argument from candidates.
func Suppress() ConfigureArgumentFunc {
	return func(a *Argument) { a.Suppressed = true }
}

func (a *Argument) isPositional() bool {
	return len(a.Flags) == 0
}

// dest returns the key the argument's values are recorded under.
func (a *Argument) dest() string {
	if a.Name != "" {
		return a.Name
	}
	for _, form := range a.longForms() {
		return strings.TrimLeft(form, "-")
	}
	if len(a.Flags) > 0 {
		return strings.TrimLeft(a.Flags[0], "-")
	}
	return ""
}

// longForms returns the invocation strings longer than two characters,
// i.e. the "--flag" style forms.
func (a *Argument) longForms() []string {
	var forms []string
	for _, form := range a.Flags {
		if len(form) > 2 {
			forms = append(forms, form)
		}
	}
	return forms
}

func (a *Argument) shortForms() []string {
	var forms []string
	for _, form := range a.Flags {
		if len(form) <= 2 {
			forms = append(forms, form)
		}
	}
	return forms
}

// choiceStrings stringifies the choice set, preserving declaration order.
func (a *Argument) choiceStrings() []string {
	if len(a.Choices) == 0 {
		return nil
	}
	out := make([]string, len(a.Choices))
	for i, c := range a.Choices {
		out[i] = fmt.Sprint(c)
	}
	return out
}

// acceptsChoice reports whether word belongs to the closed choice set. Open
// arguments accept every word.
func (a *Argument) acceptsChoice(word string) bool {
	if len(a.Choices) == 0 {
		return true
	}
	for _, c := range a.choiceStrings() {
		if c == word {
			return true
		}
	}
	return false
}

// sharesGroup reports whether two arguments belong to a common
// mutually-exclusive group.
func (a *Argument) sharesGroup(other *Argument) bool {
	for _, g := range a.Groups {
		for _, og := range other.Groups {
			if g == og {
				return true
			}
		}
	}
	return false
}

// String returns a short description used in debug logs.
func (a *Argument) String() string {
	if a.isPositional() {
		return a.dest()
	}
	return strings.Join(a.Flags, " ")
}
