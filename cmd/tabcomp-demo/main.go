// Command tabcomp-demo is a small program exercising the completion engine.
// Run it with --generate <shell> to print the registration script, then
// source the output and press tab.
package main

import (
	"fmt"
	"os"

	"github.com/averil/tabcomp"
	"github.com/averil/tabcomp/completers"
	"github.com/averil/tabcomp/completion"
)

func buildTree() *tabcomp.Command {
	root := tabcomp.NewCommand("tabcomp-demo")

	root.AddFlag(tabcomp.NewArg(
		tabcomp.WithFlags("-v", "--verbose"),
		tabcomp.WithDescription("enable verbose output"),
		tabcomp.Standalone(),
	))
	root.AddFlag(tabcomp.NewArg(
		tabcomp.WithFlags("--color"),
		tabcomp.WithChoices("auto", "always", "never"),
	))
	root.AddFlag(tabcomp.NewArg(
		tabcomp.WithFlags("--config"),
		tabcomp.WithCompleter(completers.FilesCompleter{Allowed: []string{"*.yaml", "*.yml"}}.Complete),
	))

	build := tabcomp.NewCommand("build",
		tabcomp.WithCommandDescription("compile the project"))
	build.AddFlag(tabcomp.NewArg(
		tabcomp.WithFlags("-o", "--output"),
		tabcomp.WithCompleter(completers.DirectoriesCompleter{}.Complete),
	))
	build.AddPositional(tabcomp.NewArg(
		tabcomp.WithName("target"),
		tabcomp.WithChoices("all", "docs", "dist"),
	))
	root.AddSubcommand(build)

	clean := tabcomp.NewCommand("clean",
		tabcomp.WithCommandDescription("remove build artifacts"))
	clean.AddPositional(tabcomp.NewArg(
		tabcomp.WithName("paths"),
		tabcomp.WithArity(tabcomp.ZeroOrMore()),
		tabcomp.WithCompleter(completers.FilesCompleter{}.Complete),
	))
	root.AddSubcommand(clean)

	return root
}

func main() {
	finder := tabcomp.NewFinder(buildTree())
	if done, err := finder.Autocomplete(); done {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if len(os.Args) == 3 && os.Args[1] == "--generate" {
		manager, err := completion.NewManager(os.Args[2], os.Args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		manager.Accept()
		fmt.Print(manager.Script())
		return
	}

	fmt.Println("tabcomp-demo: run with --generate bash|zsh|fish, or via a completion request")
}
