package util

// ErrWrap returns a function which unwraps a (value, error) pair,
// falling back to def in case of error
func ErrWrap[T any](def T) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			return def
		}
		return value
	}
}

// ErrSuppress explicitly discards an error
func ErrSuppress(_ error) {}
