package render

import (
	"bufio"
	"image"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/rollsim/internal/grid"
)

const (
	// EdgeDelay is the display time of the first and last frame, in
	// hundredths of a second.
	EdgeDelay = 200

	DefaultSize  = 800
	DefaultDelay = 100
)

// Source is an ordered sequence of grid snapshots.
type Source interface {
	Len() int
	At(i int) *grid.Grid
}

type Options struct {
	// Size is the target pixel size of the longer side.
	Size int
	// Delay is the base delay; interior frames are shown for Delay/10
	// hundredths of a second.
	Delay int
	// FPS is the AVI frame rate; GIF output ignores it.
	FPS int
}

func DefaultOptions() Options {
	return Options{Size: DefaultSize, Delay: DefaultDelay, FPS: AVIFrameRate}
}

// Scale returns the integer upscale factor that fits the larger grid
// dimension into size pixels.
func Scale(width, height, size int) (int, error) {
	longest := max(width, height)
	if longest <= 0 || size < longest {
		return 0, &RenderSizeError{Size: size, Width: width, Height: height}
	}
	return size / longest, nil
}

// Frame draws g with each cell as a scale x scale block.
func Frame(g *grid.Grid, scale int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, g.Width()*scale, g.Height()*scale), palette)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			idx := colorIndex(g.At(r, c))
			if idx == emptyIndex {
				continue
			}
			for y := r * scale; y < (r+1)*scale; y++ {
				row := img.Pix[y*img.Stride : (y+1)*img.Stride]
				for x := c * scale; x < (c+1)*scale; x++ {
					row[x] = idx
				}
			}
		}
	}
	return img
}

// Delays returns the per-frame display times for n frames.
func Delays(n, baseDelay int) []int {
	delays := make([]int, n)
	for i := range delays {
		if i == 0 || i == n-1 {
			delays[i] = EdgeDelay
		} else {
			delays[i] = baseDelay / 10
		}
	}
	return delays
}

// Render converts every snapshot in src into a looping animation.
func Render(src Source, opts Options) (*gif.GIF, error) {
	n := src.Len()
	if n == 0 {
		return nil, ErrNoFrames
	}
	first := src.At(0)
	scale, err := Scale(first.Width(), first.Height(), opts.Size)
	if err != nil {
		return nil, err
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, n),
		Delay:     Delays(n, opts.Delay),
		LoopCount: 0,
	}
	for i := 0; i < n; i++ {
		anim.Image = append(anim.Image, Frame(src.At(i), scale))
	}
	return anim, nil
}

// Encode renders src and writes it to w.
func Encode(w io.Writer, src Source, opts Options) error {
	anim, err := Render(src, opts)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// WriteFile renders src into the file at path. The file is only created
// once rendering has succeeded.
func WriteFile(path string, src Source, opts Options) error {
	anim, err := Render(src, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	bw := bufio.NewWriter(f)
	if err := gif.EncodeAll(bw, anim); err != nil {
		f.Close()
		return &EncodeError{Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return &EncodeError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
