package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/andareed/siftly-timeline/logging"
)

// ErrUnavailable is returned when neither a system clipboard nor an OSC52
// capable terminal is reachable.
var ErrUnavailable = errors.New("clipboard unavailable")

func copyOSC52(w io.Writer, text string) error {
	if _, err := osc52.New(text).WriteTo(w); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Supported(f *os.File) bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isTTY(f)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
