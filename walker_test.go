package tabcomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pos(configs ...ConfigureArgumentFunc) *Argument {
	return NewArg(configs...)
}

func TestAllocExact(t *testing.T) {
	vehicle := pos(WithName("vehicle"), WithChoices("bus", "car"))
	fruit := pos(WithName("fruit"), WithChoices("apple"))
	many := pos(WithName("many"), WithArity(OneOrMore()))

	assert.True(t, allocExact(nil, nil))
	assert.False(t, allocExact([]string{"x"}, nil))
	assert.True(t, allocExact([]string{"bus"}, []*Argument{vehicle}))
	assert.False(t, allocExact([]string{"train"}, []*Argument{vehicle}))
	assert.True(t, allocExact([]string{"bus", "apple"}, []*Argument{vehicle, fruit}))
	assert.False(t, allocExact([]string{"bus", "pear"}, []*Argument{vehicle, fruit}))
	assert.True(t, allocExact([]string{"a", "b", "apple"}, []*Argument{many, fruit}))
	// The open-ended run cannot give up its minimum.
	assert.False(t, allocExact(nil, []*Argument{many}))
}

func TestRefitActive_TrailingRun(t *testing.T) {
	one := pos(WithName("one"), WithChoices("a"))
	two := pos(WithName("two"), WithArity(OneOrMore()), WithChoices("x", "y"))

	// "a x": the run is inside two and can grow further.
	active := refitActive([]string{"a", "x"}, []*Argument{one, two})
	assert.Equal(t, []*Argument{two}, active)

	// A word outside both choice sets kills every allocation.
	active = refitActive([]string{"z"}, []*Argument{one, two})
	assert.Empty(t, active)
}

func TestRefitActive_BoundedArity(t *testing.T) {
	twoExactly := pos(WithName("pair"), WithArity(Exactly(2)))
	assert.Equal(t,
		[]*Argument{twoExactly},
		refitActive([]string{"x"}, []*Argument{twoExactly}),
		"one of two consumed, one more fits")
	assert.Empty(t,
		refitActive([]string{"x", "y"}, []*Argument{twoExactly}),
		"arity exhausted")
}

func TestWalk_ValuesSnapshot(t *testing.T) {
	root := NewCommand("prog")
	_ = root.AddFlag(NewArg(WithFlags("--name")))
	_ = root.AddFlag(NewArg(WithFlags("-o", "--output")))
	_ = root.AddPositional(NewArg(WithName("target")))
	f := NewFinder(root)

	res := f.walk([]string{"--name", "bob", "-o", "out.txt", "all"})
	assert.Equal(t, "bob", res.values["name"])
	assert.Equal(t, "out.txt", res.values["output"], "short form records under the long destination")
	assert.Equal(t, "all", res.values["target"])
}

func TestWalk_LastValueWins(t *testing.T) {
	root := NewCommand("prog")
	_ = root.AddFlag(NewArg(WithFlags("--name")))
	f := NewFinder(root)

	res := f.walk([]string{"--name", "a", "--name", "b"})
	assert.Equal(t, "b", res.values["name"])
}

func TestWalk_ExplicitArityConsumesFlagShapedWords(t *testing.T) {
	root := NewCommand("prog")
	_ = root.AddFlag(NewArg(WithFlags("--email"), WithArity(Exactly(3))))
	_ = root.AddFlag(NewArg(WithFlags("-v"), Standalone()))
	f := NewFinder(root)

	// The declared count wins over word shape: "-v" is a value here.
	res := f.walk([]string{"--email", "a", "-v", "c"})
	assert.Nil(t, res.activeFlag)
	assert.Equal(t, "c", res.values["email"])
	assert.False(t, res.seen[mustFlag(t, root, "-v")])
}

func TestWalk_VariableArityStopsAtFlagShape(t *testing.T) {
	root := NewCommand("prog")
	_ = root.AddFlag(NewArg(WithFlags("--tags"), WithArity(ZeroOrMore())))
	_ = root.AddFlag(NewArg(WithFlags("-v"), Standalone()))
	f := NewFinder(root)

	res := f.walk([]string{"--tags", "a", "-v"})
	assert.True(t, res.seen[mustFlag(t, root, "-v")])
	assert.Equal(t, "a", res.values["tags"])
}

func TestWalk_RemainderSwallowsFlags(t *testing.T) {
	root := NewCommand("prog")
	_ = root.AddFlag(NewArg(WithFlags("--exec"), WithArity(Remainder())))
	_ = root.AddFlag(NewArg(WithFlags("-v"), Standalone()))
	f := NewFinder(root)

	res := f.walk([]string{"--exec", "ls", "-v"})
	assert.NotNil(t, res.remainder)
	assert.True(t, res.noMoreFlags)
	assert.Equal(t, "-v", res.values["exec"])
	assert.False(t, res.seen[mustFlag(t, root, "-v")])
}

func TestWalk_ParentPositionalSurvivesDescent(t *testing.T) {
	root := NewCommand("prog")
	_ = root.AddPositional(NewArg(WithName("env"), WithChoices("dev", "prod")))
	mid := NewCommand("deploy")
	_ = mid.AddPositional(NewArg(WithName("region"), WithChoices("eu", "us")))
	leaf := NewCommand("status")
	_ = mid.AddSubcommand(leaf)
	_ = root.AddSubcommand(mid)
	f := NewFinder(root)

	res := f.walk([]string{"prod", "deploy", "eu", "status"})
	assert.Equal(t, leaf, res.cmd)
	assert.Equal(t, "prod", res.values["env"])
	assert.Equal(t, "eu", res.values["region"], "every level snapshots on descent")
}

func TestWalk_DescendResetsPositionalWords(t *testing.T) {
	root := NewCommand("prog")
	_ = root.AddPositional(NewArg(WithName("vehicle"), WithChoices("bus")))
	sub := NewCommand("go")
	_ = sub.AddPositional(NewArg(WithName("dest"), WithChoices("home")))
	_ = root.AddSubcommand(sub)
	f := NewFinder(root)

	res := f.walk([]string{"bus", "go"})
	assert.Equal(t, sub, res.cmd)
	assert.Len(t, res.activePositionals, 1)
	assert.Equal(t, "dest", res.activePositionals[0].Name)
}

func mustFlag(t *testing.T, c *Command, form string) *Argument {
	t.Helper()
	a, ok := c.lookupFlag(form)
	if !ok {
		t.Fatalf("flag %q not registered", form)
	}
	return a
}
