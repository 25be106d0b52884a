// Package completion generates and installs the shell scripts that route
// tab presses back into the program's completion entry point.
package completion

// Paths holds information about completion script locations
type Paths struct {
	Primary   string // Main completion path
	Fallback  string // Alternative path if primary isn't available
	Extension string // File extension for completion script (if any)
	Comment   string // Documentation about the path choice
}

// FileInfo holds shell-specific naming conventions
type FileInfo struct {
	Prefix    string // Some shells require specific prefixes
	Extension string // File extension if required
	Comment   string // Documentation about the naming convention
}

// Generator produces the registration script for one shell. The script does
// not describe the grammar; it re-invokes the program with the completion
// environment set and splits its single write on the agreed delimiter.
type Generator interface {
	Generate(programName string) string
}

// GetGenerator returns the generator for a shell name, defaulting to bash.
func GetGenerator(shell string) Generator {
	switch shell {
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	default:
		return &BashGenerator{}
	}
}
