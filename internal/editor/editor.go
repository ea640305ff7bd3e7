// Package editor opens content files in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Fallback is used when neither $VISUAL nor $EDITOR is set.
const Fallback = "vi"

// Command splits the configured editor into program and arguments.
// $VISUAL wins over $EDITOR; both may carry flags, e.g. "code --wait".
func Command(getenv func(string) string) (string, []string) {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(getenv(key)); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}
	return Fallback, nil
}

// Open blocks until the editor exits.
func Open(path string) error {
	name, args := Command(os.Getenv)
	cmd := exec.Command(name, append(args, path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", name, err)
	}
	return nil
}
