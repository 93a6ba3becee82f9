package capture

import (
	"context"
	"image"
)

// UnsupportedDevice is a Device for platforms without camera support.
// Every acquisition fails with ErrUnsupported, which the session
// classifies as FailureUnsupported.
type UnsupportedDevice struct{}

func (UnsupportedDevice) Acquire(_ context.Context, _ Constraints) (Stream, error) {
	return nil, ErrUnsupported
}

// NopSurface is a Surface that renders nowhere and yields empty frames.
// Paired with UnsupportedDevice when no real render sink is wired.
type NopSurface struct{}

func (NopSurface) Bind(Stream) {}

func (NopSurface) Unbind() {}

func (NopSurface) Frame() (image.Image, error) {
	return image.NewNRGBA(image.Rect(0, 0, 0, 0)), nil
}
