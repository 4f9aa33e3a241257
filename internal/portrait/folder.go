package portrait

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"  // inbox decode support
	_ "image/jpeg" // inbox decode support

	xdraw "golang.org/x/image/draw"
)

// portraitSide is the edge length of the normalised output image.
const portraitSide = 256

// FolderSource acquires portraits from a drop directory: the first image
// file that appears in the inbox is consumed, center-cropped square,
// scaled to 256x256 and written to the destination as PNG.
type FolderSource struct {
	Inbox string
	// Interval between inbox scans. Zero means 500ms.
	Interval time.Duration
}

// NewFolderSource returns a FolderSource watching the given directory.
func NewFolderSource(inbox string) *FolderSource {
	return &FolderSource{Inbox: inbox}
}

// Acquire implements Source. It polls the inbox until an image appears or
// ctx is done. The consumed inbox file is removed afterwards.
func (f *FolderSource) Acquire(ctx context.Context, nameHint, destPath string) error {
	if err := os.MkdirAll(f.Inbox, 0o755); err != nil {
		return fmt.Errorf("portrait: create inbox: %w", err)
	}

	interval := f.Interval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if src, ok := f.findImage(); ok {
			if err := normalise(src, destPath); err != nil {
				// Likely a half-copied file; leave it and retry next tick.
				select {
				case <-ctx.Done():
					return ErrCanceled
				case <-ticker.C:
					continue
				}
			}
			os.Remove(src)
			return nil
		}
		select {
		case <-ctx.Done():
			return ErrCanceled
		case <-ticker.C:
		}
	}
}

// findImage returns the first image file in the inbox, if any.
func (f *FolderSource) findImage() (string, bool) {
	entries, err := os.ReadDir(f.Inbox)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif":
			return filepath.Join(f.Inbox, e.Name()), true
		}
	}
	return "", false
}

// normalise decodes src, center-crops it square, scales to portraitSide
// and writes the result to destPath as PNG.
func normalise(src, destPath string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("portrait: open %s: %w", src, err)
	}
	img, _, err := image.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("portrait: decode %s: %w", src, err)
	}

	out := image.NewRGBA(image.Rect(0, 0, portraitSide, portraitSide))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), img, centerSquare(img.Bounds()), xdraw.Src, nil)

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("portrait: create dest dir: %w", err)
		}
	}
	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("portrait: create %s: %w", destPath, err)
	}
	if err := png.Encode(dst, out); err != nil {
		dst.Close()
		return fmt.Errorf("portrait: encode %s: %w", destPath, err)
	}
	return dst.Close()
}

// centerSquare returns the largest centered square within r.
func centerSquare(r image.Rectangle) image.Rectangle {
	w, h := r.Dx(), r.Dy()
	side := w
	if h < side {
		side = h
	}
	x0 := r.Min.X + (w-side)/2
	y0 := r.Min.Y + (h-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}
