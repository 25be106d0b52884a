// completion/fish.go
package completion

import "fmt"

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string) string {
	return fmt.Sprintf(`function __tabcomp_%[1]s
    set -lx _TABCOMP 1
    set -lx _TABCOMP_SHELL fish
    set -lx _TABCOMP_IFS \n
    set -lx _TABCOMP_SUPPRESS_SPACE 1
    set -lx COMP_LINE (commandline -p)
    set -lx COMP_POINT (commandline -pC)
    "%[1]s" 2>/dev/null
end

complete -c %[1]s -f -a '(__tabcomp_%[1]s)'
`, programName)
}
