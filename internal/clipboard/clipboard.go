// Package clipboard moves canvas images to and from the system clipboard.
package clipboard

import (
	"errors"
	"image"
)

// ErrEmpty is returned when the clipboard holds no image.
var ErrEmpty = errors.New("clipboard does not contain image data")

// System is the process clipboard.
type System struct{}

func (System) WriteImage(img image.Image) error { return WriteImage(img) }

func (System) ReadImage() (*image.NRGBA, error) { return ReadImage() }
