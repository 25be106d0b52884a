// completion/zsh.go
package completion

import "fmt"

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string) string {
	return fmt.Sprintf(`#compdef %[1]s

__tabcomp_%[1]s() {
    local -a completions
    local IFS=$'\013'
    completions=( $(COMP_LINE="$BUFFER" \
        COMP_POINT="$CURSOR" \
        _TABCOMP=1 \
        _TABCOMP_SHELL=zsh \
        _TABCOMP_SUPPRESS_SPACE=1 \
        "%[1]s" 2>/dev/null) )
    compadd -Q -S '' -- "${completions[@]}"
}

compdef __tabcomp_%[1]s %[1]s
`, programName)
}
