package tabcomp

import (
	"strings"

	"github.com/averil/tabcomp/parse"
	"github.com/averil/tabcomp/types/queue"
)

// walkResult is the grammar walker's verdict for one completion request: the
// command level the cursor sits in, which arguments may consume the next
// word, and the best-effort values parsed along the way.
type walkResult struct {
	cmd *Command

	// activePositionals lists every positional that could legally receive
	// the next word under some allocation of the words already typed.
	activePositionals []*Argument
	// subcommandsActive reports that a dispatch is declared and every
	// preceding positional minimum can be satisfied by the typed words.
	subcommandsActive bool

	// activeFlag is a flag whose arity consumption is mid-flight.
	// flagRequired marks that its minimum is still unmet, which suppresses
	// every other candidate source.
	activeFlag   *Argument
	flagRequired bool

	// remainder, when set, is the argument swallowing every further word.
	remainder *Argument

	seen        map[*Argument]bool
	groupedOut  map[*Argument]bool
	values      map[string]string
	noMoreFlags bool
}

type walkState struct {
	cmd          *Command
	posWords     []string
	seen         map[*Argument]bool
	groupedOut   map[*Argument]bool
	values       map[string]string
	pendingFlag  *Argument
	pendingCount int
	noMoreFlags  bool
	remainder    *Argument
}

// walk replays the completed words against the specification tree. The tree
// is only read; every completion request gets a fresh walkState.
func (f *Finder) walk(words []string) *walkResult {
	st := &walkState{
		cmd:        f.root,
		seen:       map[*Argument]bool{},
		groupedOut: map[*Argument]bool{},
		values:     map[string]string{},
	}
	s := parse.NewState(words)
	for s.Advance() {
		st.consume(s.Current())
	}
	return st.finish()
}

func flagShaped(word string) bool {
	return len(word) > 1 && strings.HasPrefix(word, "-")
}

func (st *walkState) consume(word string) {
	// A remainder argument swallows everything, flags included.
	if st.remainder != nil {
		st.recordValue(st.remainder, word)
		return
	}

	if st.pendingFlag != nil && st.consumeFlagValue(word) {
		return
	}

	if !st.noMoreFlags {
		if word == "--" {
			st.noMoreFlags = true
			return
		}
		if flagShaped(word) {
			st.consumeFlag(word)
			return
		}
	}

	// Subcommand descent requires every pending positional minimum to be
	// satisfiable by the words consumed so far.
	if st.cmd.hasSubcommands() && allocFeasible(st.posWords, st.cmd.positionals) {
		if sub, ok := st.cmd.subcommand(word); ok {
			st.descend(sub)
			return
		}
	}

	st.posWords = append(st.posWords, word)
	if r := st.remainderPositional(); r != nil {
		st.remainder = r
		st.noMoreFlags = true
		st.recordValue(r, word)
	}
}

// consumeFlagValue feeds a word to the mid-flight flag. It reports whether
// the word was consumed; otherwise the flag's consumption is closed and the
// word must be re-examined.
func (st *walkState) consumeFlagValue(word string) bool {
	a := st.pendingFlag
	switch a.Arity.Kind {
	case ArityExact:
		// Declared arity consumes the next N words regardless of shape.
		st.recordValue(a, word)
		st.pendingCount++
		if st.pendingCount >= a.Arity.Count {
			st.pendingFlag = nil
		}
		return true
	case ArityOptional:
		st.pendingFlag = nil
		if !flagShaped(word) {
			st.recordValue(a, word)
			return true
		}
		return false
	case ArityZeroOrMore, ArityOneOrMore:
		if !flagShaped(word) {
			st.recordValue(a, word)
			st.pendingCount++
			return true
		}
		st.pendingFlag = nil
		return false
	}
	st.pendingFlag = nil
	return false
}

func (st *walkState) consumeFlag(word string) {
	name, value, hasValue := strings.Cut(word, "=")
	a, ok := st.cmd.lookupFlag(name)
	if !ok {
		// Unknown flags are skipped. Completion must not fail merely
		// because the line would not survive the host's parse.
		return
	}
	st.markSeen(a)
	if hasValue {
		st.recordValue(a, value)
		return
	}
	switch a.Arity.Kind {
	case ArityExact:
		if a.Arity.Count > 0 {
			st.pendingFlag, st.pendingCount = a, 0
		}
	case ArityRemainder:
		st.remainder = a
		st.noMoreFlags = true
	default:
		st.pendingFlag, st.pendingCount = a, 0
	}
}

func (st *walkState) markSeen(a *Argument) {
	st.seen[a] = true
	if len(a.Groups) == 0 {
		return
	}
	// Retire mutually-exclusive siblings. The seen flag itself stays
	// offerable since flags may legally repeat.
	for _, other := range st.cmd.flagList {
		if other != a && a.sharesGroup(other) {
			st.groupedOut[other] = true
		}
	}
}

func (st *walkState) descend(sub *Command) {
	// Snapshot this level's positional words before they reset, so
	// completers below the dispatch can still read them.
	st.assignPositionalValues()
	st.cmd = sub
	st.seen = map[*Argument]bool{}
	st.groupedOut = map[*Argument]bool{}
	st.posWords = nil
	st.pendingFlag = nil
	st.pendingCount = 0
}

func (st *walkState) recordValue(a *Argument, value string) {
	if dest := a.dest(); dest != "" {
		st.values[dest] = value
	}
}

// remainderPositional reports the remainder positional that the consumed
// words have reached, if any. Earlier positionals keep their minimum share;
// everything beyond flows into the remainder.
func (st *walkState) remainderPositional() *Argument {
	need := 0
	for _, p := range st.cmd.positionals {
		if p.Arity.Kind == ArityRemainder {
			if len(st.posWords) > need {
				return p
			}
			return nil
		}
		need += p.Arity.min()
	}
	return nil
}

func (st *walkState) finish() *walkResult {
	res := &walkResult{
		cmd:         st.cmd,
		seen:        st.seen,
		groupedOut:  st.groupedOut,
		values:      st.values,
		noMoreFlags: st.noMoreFlags,
		remainder:   st.remainder,
	}

	if st.pendingFlag != nil {
		res.activeFlag = st.pendingFlag
		switch st.pendingFlag.Arity.Kind {
		case ArityExact:
			res.flagRequired = st.pendingCount < st.pendingFlag.Arity.Count
		case ArityOneOrMore:
			res.flagRequired = st.pendingCount < 1
		}
	}

	if st.remainder == nil {
		res.activePositionals = refitActive(st.posWords, st.cmd.positionals)
		res.subcommandsActive = st.cmd.hasSubcommands() &&
			allocFeasible(st.posWords, st.cmd.positionals)
	}

	st.assignPositionalValues()
	return res
}

// assignPositionalValues distributes the consumed positional words over the
// level's positionals for the parsed-value snapshot: minimums first, then
// extras to variable arities left to right. The snapshot is best-effort and
// records the last value per destination.
func (st *walkState) assignPositionalValues() {
	words := queue.New[string]()
	for _, w := range st.posWords {
		words.Enqueue(w)
	}
	extra := words.Len()
	for _, p := range st.cmd.positionals {
		extra -= p.Arity.min()
	}
	for _, p := range st.cmd.positionals {
		take := p.Arity.min()
		if max := p.Arity.max(); (max < 0 || max > take) && extra > 0 {
			grow := extra
			if max >= 0 && take+grow > max {
				grow = max - take
			}
			take += grow
			extra -= grow
		}
		for ; take > 0; take-- {
			w, ok := words.Dequeue()
			if !ok {
				return
			}
			st.recordValue(p, w)
		}
	}
}

// refitActive computes the positionals that could receive the next word: pj
// is active when the typed words admit an order-preserving allocation to
// p1..p(j-1) plus a trailing run already inside pj, such that pj can accept
// one more word. Closed-choice positionals only accept member words, which
// resolves the greedy/conservative boundary explicitly instead of guessing.
func refitActive(words []string, positionals []*Argument) []*Argument {
	var active []*Argument
	for j, p := range positionals {
		if p.Arity.Kind == ArityRemainder {
			// Reached only with zero words in it (otherwise remainder mode
			// has taken over); it can always accept the next word.
			if allocFeasible(words, positionals[:j]) {
				active = append(active, p)
			}
			continue
		}
		if canReceiveNext(words, positionals, j) {
			active = append(active, p)
		}
	}
	return active
}

// canReceiveNext reports whether positionals[j] can consume the next word.
func canReceiveNext(words []string, positionals []*Argument, j int) bool {
	p := positionals[j]
	// Try every split: head allocated fully to earlier positionals, tail
	// already consumed by p.
	for tail := 0; tail <= len(words); tail++ {
		head := words[:len(words)-tail]
		in := words[len(words)-tail:]
		if max := p.Arity.max(); max >= 0 && tail+1 > max {
			continue
		}
		if !wordsInChoices(p, in) {
			continue
		}
		if allocExact(head, positionals[:j]) {
			return true
		}
	}
	return false
}

// allocExact reports whether words can be fully distributed over the given
// positionals with every arity bound and choice set respected.
func allocExact(words []string, positionals []*Argument) bool {
	if len(positionals) == 0 {
		return len(words) == 0
	}
	p := positionals[0]
	lo := p.Arity.min()
	hi := p.Arity.max()
	if hi < 0 || hi > len(words) {
		hi = len(words)
	}
	for c := lo; c <= hi; c++ {
		if !wordsInChoices(p, words[:c]) {
			break
		}
		if allocExact(words[c:], positionals[1:]) {
			return true
		}
	}
	return false
}

// allocFeasible reports whether words can be distributed so that every
// positional reaches its minimum, which gates subcommand descent.
func allocFeasible(words []string, positionals []*Argument) bool {
	return allocExact(words, positionals)
}

func wordsInChoices(p *Argument, words []string) bool {
	if len(p.Choices) == 0 {
		return true
	}
	for _, w := range words {
		if !p.acceptsChoice(w) {
			return false
		}
	}
	return true
}
