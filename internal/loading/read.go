package loading

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// readRequired reads a file that must exist.
func readRequired(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Cause: err}
		}
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return content, nil
}
