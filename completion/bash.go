// completion/bash.go
package completion

import "fmt"

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string) string {
	return fmt.Sprintf(`#!/bin/bash

function __tabcomp_%[1]s() {
    local IFS=$'\013'
    COMPREPLY=( $(COMP_LINE="$COMP_LINE" \
        COMP_POINT="$COMP_POINT" \
        _TABCOMP=1 \
        _TABCOMP_SHELL=bash \
        _TABCOMP_COMP_WORDBREAKS="$COMP_WORDBREAKS" \
        "%[1]s" 2>/dev/null) )
    if [[ $? != 0 ]]; then
        unset COMPREPLY
    fi
}

complete -o nospace -F __tabcomp_%[1]s %[1]s
`, programName)
}
