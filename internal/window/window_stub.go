//go:build !cgo

package window

import (
	"errors"

	"github.com/gogpu/gasket/internal/viewer"
)

// Run reports that this build has no window support.
func Run(_ *viewer.Session, _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
