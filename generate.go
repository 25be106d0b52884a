package tabcomp

import (
	"strings"

	"go.uber.org/zap"
)

// Candidate is one completion offer: the raw value, a display-only
// annotation, and whether it came from a value source (choices, completer),
// which determines whether the caller-supplied validator applies to it.
type Candidate struct {
	Value       string
	Description string
	fromValue   bool
}

// generate produces the unfiltered candidate set for the walker's verdict.
func (f *Finder) generate(res *walkResult, prefix string) []Candidate {
	// A remainder argument owns the rest of the line outright; flag-shaped
	// words are plain values there.
	if res.remainder != nil {
		return f.valueCandidates(res.remainder, prefix, res.values)
	}

	dashed := flagShaped(prefix) || prefix == "-"

	if res.activeFlag != nil && res.flagRequired {
		// Mid-flight on a required arity. A dashed prefix aborts the value
		// consumption and completes flag names instead; otherwise only the
		// active flag's own values apply.
		if dashed && !res.noMoreFlags {
			return f.flagCandidates(res, prefix)
		}
		return f.valueCandidates(res.activeFlag, prefix, res.values)
	}

	var out []Candidate
	if !res.noMoreFlags && (f.optionsMode != OptionsNone || dashed) {
		out = append(out, f.flagCandidates(res, prefix)...)
	}
	if res.activeFlag != nil {
		out = append(out, f.valueCandidates(res.activeFlag, prefix, res.values)...)
	}
	for _, p := range res.activePositionals {
		out = append(out, f.valueCandidates(p, prefix, res.values)...)
	}
	if res.subcommandsActive {
		for pair := res.cmd.subcommands.Oldest(); pair != nil; pair = pair.Next() {
			f.note(pair.Key, pair.Value.Description)
			out = append(out, Candidate{Value: pair.Key, Description: pair.Value.Description})
		}
	}
	return out
}

// flagCandidates lists the invocation strings still offerable at the current
// command level.
func (f *Finder) flagCandidates(res *walkResult, prefix string) []Candidate {
	var out []Candidate
	for _, a := range res.cmd.flagList {
		if res.groupedOut[a] {
			continue
		}
		if a.Suppressed && !f.printSuppressed {
			continue
		}
		forms := f.includeForms(a, prefix)
		if len(forms) == 0 {
			continue
		}
		f.note(strings.Join(forms, " "), a.Description)
		for _, form := range forms {
			out = append(out, Candidate{Value: form, Description: a.Description})
		}
	}
	return out
}

// includeForms selects which invocation strings of a flag to offer. With a
// non-empty prefix every matching form is offered; at an empty prefix the
// long/short modes prefer one style per flag, falling back to the other when
// a flag only has the opposite style.
func (f *Finder) includeForms(a *Argument, prefix string) []string {
	if prefix != "" || f.optionsMode == OptionsAlways {
		var forms []string
		for _, form := range a.Flags {
			if strings.HasPrefix(form, prefix) {
				forms = append(forms, form)
			}
		}
		return forms
	}
	switch f.optionsMode {
	case OptionsLong:
		if long := a.longForms(); len(long) > 0 {
			return long
		}
		return a.shortForms()
	case OptionsShort:
		if short := a.shortForms(); len(short) > 0 {
			return short
		}
		return a.longForms()
	}
	return nil
}

// valueCandidates produces an argument's own completions: the static choice
// set and the dynamic completer output. A panicking completer contributes
// nothing; the request carries on.
func (f *Finder) valueCandidates(a *Argument, prefix string, values map[string]string) []Candidate {
	if a.Suppressed && !f.printSuppressed {
		return nil
	}
	var out []Candidate
	for _, c := range a.choiceStrings() {
		f.note(c, a.Description)
		out = append(out, Candidate{Value: c, Description: a.Description, fromValue: true})
	}
	if a.Completer != nil {
		for _, c := range f.runCompleter(a, prefix, values) {
			f.note(c, a.Description)
			out = append(out, Candidate{Value: c, Description: a.Description, fromValue: true})
		}
	}
	return out
}

func (f *Finder) runCompleter(a *Argument, prefix string, values map[string]string) (completions []string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Debug("completer panicked",
				zap.String("argument", a.String()),
				zap.Any("panic", r))
			completions = nil
		}
	}()
	return a.Completer(prefix, values)
}

// filter applies the literal byte-prefix test, the exclusion list, the
// caller validator (value candidates only) and an order-preserving dedup.
// An empty result is a valid terminal outcome, not an error.
func (f *Finder) filter(cands []Candidate, prefix string) []Candidate {
	var out []Candidate
	seen := map[string]bool{}
	for _, c := range cands {
		if !strings.HasPrefix(c.Value, prefix) {
			continue
		}
		if f.excluded(c.Value) {
			continue
		}
		if c.fromValue && f.validator != nil && !f.validator(c.Value, prefix) {
			continue
		}
		if seen[c.Value] {
			continue
		}
		seen[c.Value] = true
		out = append(out, c)
	}
	return out
}

func (f *Finder) excluded(value string) bool {
	for _, e := range f.exclude {
		if e == value {
			return true
		}
	}
	return false
}
