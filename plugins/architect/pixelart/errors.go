package pixelart

import "fmt"

// FetchError reports an unreachable image source. No partial instructions
// are ever produced alongside one.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("pixelart: fetch %v: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports bytes that could not be decoded into an image.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pixelart: decode %v: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
