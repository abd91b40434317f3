package render

import (
	"errors"
	"fmt"
)

var (
	ErrRenderSize = errors.New("render: target size too small")
	ErrEncode     = errors.New("render: encode failed")
	ErrNoFrames   = errors.New("render: no frames to render")
)

// RenderSizeError reports a target pixel size that cannot hold the grid at
// an integer scale of at least one.
type RenderSizeError struct {
	Size   int
	Width  int
	Height int
}

func (e *RenderSizeError) Error() string {
	return fmt.Sprintf("render: target size %d too small for %dx%d grid", e.Size, e.Width, e.Height)
}

func (e *RenderSizeError) Unwrap() error { return ErrRenderSize }

// EncodeError wraps a failure writing the animation.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("render: encode: %v", e.Err)
	}
	return fmt.Sprintf("render: encode %s: %v", e.Path, e.Err)
}

// Unwrap lets errors.Is match both ErrEncode and the underlying cause.
func (e *EncodeError) Unwrap() []error { return []error{ErrEncode, e.Err} }
