package completion

import (
	"fmt"
	"os"
	"path/filepath"
)

// Manager generates and saves a registration script for a given shell.
type Manager struct {
	Shell       string
	ProgramName string
	Paths       Paths
	generator   Generator
	script      string
}

// NewManager creates a manager which can be used to generate and install the
// registration script for a given shell
func NewManager(shell, programName string) (*Manager, error) {
	paths, err := getCompletionPaths(shell)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion paths: %w", err)
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   GetGenerator(shell),
	}, nil
}

// Accept generates and stores the registration script
func (m *Manager) Accept() {
	m.script = m.generator.Generate(m.ProgramName)
}

// Script returns the previously generated registration script
func (m *Manager) Script() string {
	return m.script
}

// Save writes the previously generated registration script to the shell's
// completion directory
func (m *Manager) Save() error {
	if m.script == "" {
		return fmt.Errorf("no completion script generated")
	}

	if err := m.ensureCompletionPath(); err != nil {
		return err
	}

	filepath := m.getCompletionFilePath()
	if err := os.WriteFile(filepath, []byte(m.script), 0644); err != nil {
		return fmt.Errorf("failed to write completion file: %w", err)
	}

	return ensurePermission(filepath, 0644)
}

func (m *Manager) ensureCompletionPath() error {
	perm := os.FileMode(0755)
	err := os.MkdirAll(m.Paths.Primary, perm)
	if err != nil {
		return fmt.Errorf("failed to create primary completion directory: %w", err)
	}

	err = ensurePermission(m.Paths.Primary, perm)
	if err == nil {
		return nil
	}

	if m.Paths.Fallback != "" {
		err = os.MkdirAll(m.Paths.Fallback, perm)
		if err != nil {
			return fmt.Errorf("failed to create fallback completion directory: %w", err)
		}
		return ensurePermission(m.Paths.Fallback, perm)
	}

	return fmt.Errorf("failed to create completion directories: %w", err)
}

func (m *Manager) getShellFileConventions() FileInfo {
	switch m.Shell {
	case "bash":
		return FileInfo{
			Prefix:    "", // No prefix needed
			Extension: "", // No extension needed
			Comment:   "Bash completion files are typically just the command name",
		}
	case "zsh":
		return FileInfo{
			Prefix:    "_", // zsh completions typically start with underscore
			Extension: "",  // No extension needed
			Comment:   "Zsh completion files should start with _ (e.g., _git)",
		}
	case "fish":
		return FileInfo{
			Prefix:    "",      // No prefix needed
			Extension: ".fish", // .fish extension required
			Comment:   "Fish completion files must end in .fish",
		}
	default:
		return FileInfo{}
	}
}

func (m *Manager) getCompletionFilePath() string {
	conventions := m.getShellFileConventions()
	filename := conventions.Prefix + m.ProgramName + conventions.Extension
	return filepath.Join(m.Paths.Primary, filename)
}
