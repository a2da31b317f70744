package output

import (
	"fmt"
	"os"
)

// WriteFile writes the report text to the named result file in the
// current working directory, replacing any previous run's output.
func WriteFile(name, text string) error {
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing results file: %w", err)
	}
	return nil
}
