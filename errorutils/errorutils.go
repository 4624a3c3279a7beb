package errorutils

// Must unwraps a (value, error) pair and panics on the error.
// Only use it where an error means the program itself is broken, like reading embedded files.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
