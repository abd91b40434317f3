package export

import (
	"fmt"
	"io"

	"github.com/san-kum/rollsim/internal/render"
)

// WriteFramesText dumps every frame as symbol rows separated by a header.
func WriteFramesText(w io.Writer, src render.Source) error {
	for i := 0; i < src.Len(); i++ {
		if _, err := fmt.Fprintf(w, "-- frame %d --\n%s", i, src.At(i).String()); err != nil {
			return err
		}
	}
	return nil
}
