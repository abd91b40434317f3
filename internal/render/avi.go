package render

import (
	"bytes"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// AVIFrameRate is the AVI frame rate used when Options.FPS is unset.
const AVIFrameRate = 10

// WriteAVI renders src as a Motion-JPEG AVI at path, at opts.FPS frames per
// second. Frame durations are approximated by repeating frames. JPEG is
// lossy, so colors are approximate; use WriteFile for an exact artifact.
func WriteAVI(path string, src Source, opts Options) error {
	anim, err := Render(src, opts)
	if err != nil {
		return err
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = AVIFrameRate
	}

	b := anim.Image[0].Bounds()
	aw, err := mjpeg.New(path, int32(b.Dx()), int32(b.Dy()), int32(fps))
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	var buf bytes.Buffer
	for i, img := range anim.Image {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
			aw.Close()
			return &EncodeError{Path: path, Err: err}
		}
		for n := repeats(anim.Delay[i], fps); n > 0; n-- {
			if err := aw.AddFrame(buf.Bytes()); err != nil {
				aw.Close()
				return &EncodeError{Path: path, Err: err}
			}
		}
	}
	if err := aw.Close(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

// repeats converts a delay in hundredths of a second to a frame count at
// fps, showing every frame at least once.
func repeats(delay, fps int) int {
	n := delay * fps / 100
	if n < 1 {
		return 1
	}
	return n
}
