//go:build !linux

package headless

import (
	"errors"

	"github.com/richinsley/goflame/graphics"
)

var ErrUnsupported = errors.New("egl headless rendering is not supported on this platform")

func NewHeadless(width, height int) (graphics.Context, error) {
	return nil, ErrUnsupported
}
