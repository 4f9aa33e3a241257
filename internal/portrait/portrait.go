// Package portrait acquires player portrait images.
//
// The game only depends on the Source interface; the shipped implementation
// is FolderSource, which waits for the player to drop a photo into an inbox
// directory and normalises it into a square portrait.
package portrait

import (
	"context"
	"errors"
)

// ErrCanceled is returned when acquisition was canceled or timed out
// before an image was obtained.
var ErrCanceled = errors.New("portrait: capture canceled")

// Source obtains a portrait image and writes it to destPath.
// On success destPath holds a loadable square image. Cancellation and
// timeout arrive through ctx and are reported as ErrCanceled.
type Source interface {
	Acquire(ctx context.Context, nameHint, destPath string) error
}
