package completion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGenerator(t *testing.T) {
	assert.IsType(t, &BashGenerator{}, GetGenerator("bash"))
	assert.IsType(t, &ZshGenerator{}, GetGenerator("zsh"))
	assert.IsType(t, &FishGenerator{}, GetGenerator("fish"))
	assert.IsType(t, &BashGenerator{}, GetGenerator("unknown"), "bash is the default")
}

func TestBashGenerator(t *testing.T) {
	script := (&BashGenerator{}).Generate("myprog")

	assert.Contains(t, script, "complete -o nospace -F __tabcomp_myprog myprog")
	assert.Contains(t, script, "_TABCOMP=1")
	assert.Contains(t, script, "_TABCOMP_SHELL=bash")
	assert.Contains(t, script, `COMP_LINE="$COMP_LINE"`)
	assert.Contains(t, script, `COMP_POINT="$COMP_POINT"`)
	assert.Contains(t, script, `_TABCOMP_COMP_WORDBREAKS="$COMP_WORDBREAKS"`)
	assert.Contains(t, script, `local IFS=$'\013'`)
}

func TestZshGenerator(t *testing.T) {
	script := (&ZshGenerator{}).Generate("myprog")

	assert.True(t, strings.HasPrefix(script, "#compdef myprog"))
	assert.Contains(t, script, "compadd -Q -S ''")
	assert.Contains(t, script, "_TABCOMP_SHELL=zsh")
	assert.Contains(t, script, "_TABCOMP_SUPPRESS_SPACE=1")
	assert.Contains(t, script, `COMP_LINE="$BUFFER"`)
	assert.Contains(t, script, `COMP_POINT="$CURSOR"`)
}

func TestFishGenerator(t *testing.T) {
	script := (&FishGenerator{}).Generate("myprog")

	assert.Contains(t, script, "complete -c myprog -f -a '(__tabcomp_myprog)'")
	assert.Contains(t, script, "_TABCOMP_SHELL fish")
	assert.Contains(t, script, "commandline -p")
	assert.Contains(t, script, "commandline -pC")
}

func TestNewManager(t *testing.T) {
	m, err := NewManager("bash", "/usr/local/bin/myprog")
	require.NoError(t, err)
	assert.Equal(t, "myprog", m.ProgramName, "program name is the base name")
	assert.Equal(t, "bash", m.Shell)
	assert.NotEmpty(t, m.Paths.Primary)
}

func TestNewManager_UnsupportedShell(t *testing.T) {
	_, err := NewManager("powershell", "myprog")
	assert.Error(t, err)
}

func TestManager_SaveWithoutScript(t *testing.T) {
	m, err := NewManager("bash", "myprog")
	require.NoError(t, err)
	assert.Error(t, m.Save())
}

func TestManager_SaveBash(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m, err := NewManager("bash", "myprog")
	require.NoError(t, err)
	m.Accept()
	assert.NotEmpty(t, m.Script())
	require.NoError(t, m.Save())

	path := filepath.Join(home, ".local", "share", "bash-completion", "completions", "myprog")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "complete -o nospace -F __tabcomp_myprog myprog")
}

func TestManager_SaveZshUsesUnderscorePrefix(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m, err := NewManager("zsh", "myprog")
	require.NoError(t, err)
	m.Accept()
	require.NoError(t, m.Save())

	_, err = os.Stat(filepath.Join(home, ".zsh", "completion", "_myprog"))
	assert.NoError(t, err)
}

func TestManager_SaveFishExtension(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m, err := NewManager("fish", "myprog")
	require.NoError(t, err)
	m.Accept()
	require.NoError(t, m.Save())

	_, err = os.Stat(filepath.Join(home, ".config", "fish", "completions", "myprog.fish"))
	assert.NoError(t, err)
}
