package configs

import (
	"errors"
)

// First decodes the value at path from the first file that has it, or
// returns def. Invalid files and undecodable values panic.
func First[T any](loader Loader, path string, def T) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return def
		}
		panic(err)
	}
	return value
}
