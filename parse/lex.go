package parse

import "github.com/google/shlex"

// Split splits a fully quoted string into shell words. Unlike SplitLine it
// rejects unterminated quotes, which makes it suitable for configuration
// values such as exclusion lists, where the input is expected to be complete.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
