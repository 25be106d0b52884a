package tabcomp

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Command is one level of the argument-specification tree: an ordered list
// of positionals, a set of flags addressable by any of their invocation
// strings, and an optional subcommand dispatch. Commands form a tree and are
// read-only during a walk.
type Command struct {
	Name        string
	Description string

	positionals []*Argument
	// flagForms maps every invocation string to its argument; flagList keeps
	// the unique arguments in declaration order for candidate listing.
	flagForms   *orderedmap.OrderedMap[string, *Argument]
	flagList    []*Argument
	subcommands *orderedmap.OrderedMap[string, *Command]

	helpDisabled bool
}

// ConfigureCommandFunc configures a Command during construction.
type ConfigureCommandFunc func(*Command)

// NewCommand creates a command. A -h/--help flag is registered first, the
// way argument parsers conventionally do; disable it with WithoutHelp.
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{
		Name:        name,
		flagForms:   orderedmap.New[string, *Argument](),
		subcommands: orderedmap.New[string, *Command](),
	}
	for _, config := range configs {
		config(cmd)
	}
	if !cmd.helpDisabled {
		_ = cmd.AddFlag(NewArg(
			WithFlags("-h", "--help"),
			Standalone(),
			WithDescription("show this help message and exit"),
		))
	}
	return cmd
}

// WithCommandDescription sets the command's display-only description.
func WithCommandDescription(desc string) ConfigureCommandFunc {
	return func(c *Command) { c.Description = desc }
}

// WithoutHelp suppresses the automatic -h/--help flag.
func WithoutHelp() ConfigureCommandFunc {
	return func(c *Command) { c.helpDisabled = true }
}

// AddFlag registers a flag argument under each of its invocation strings.
func (c *Command) AddFlag(arg *Argument) error {
	if len(arg.Flags) == 0 {
		return ErrFlagExpected
	}
	for _, form := range arg.Flags {
		if !strings.HasPrefix(form, "-") || form == "-" || form == "--" {
			return fmt.Errorf("%w: %q", ErrInvalidFlagForm, form)
		}
		if _, exists := c.flagForms.Get(form); exists {
			return fmt.Errorf("%w: %q", ErrFlagAlreadyExists, form)
		}
	}
	for _, form := range arg.Flags {
		c.flagForms.Set(form, arg)
	}
	c.flagList = append(c.flagList, arg)
	return nil
}

// AddPositional appends a positional argument.
func (c *Command) AddPositional(arg *Argument) error {
	if len(arg.Flags) != 0 {
		return ErrPositionalFlag
	}
	c.positionals = append(c.positionals, arg)
	return nil
}

// AddSubcommand registers a child command in the dispatch.
func (c *Command) AddSubcommand(sub *Command) error {
	if sub.Name == "" {
		return ErrEmptyCommandName
	}
	if _, exists := c.subcommands.Get(sub.Name); exists {
		return fmt.Errorf("%w: %q", ErrCommandExists, sub.Name)
	}
	c.subcommands.Set(sub.Name, sub)
	return nil
}

// lookupFlag resolves an invocation string to its argument.
func (c *Command) lookupFlag(form string) (*Argument, bool) {
	return c.flagForms.Get(form)
}

// subcommand resolves a subcommand name.
func (c *Command) subcommand(name string) (*Command, bool) {
	return c.subcommands.Get(name)
}

// hasSubcommands reports whether a dispatch is declared.
func (c *Command) hasSubcommands() bool {
	return c.subcommands.Len() > 0
}

// subcommandNames lists subcommands in registration order.
func (c *Command) subcommandNames() []string {
	names := make([]string, 0, c.subcommands.Len())
	for pair := c.subcommands.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}
