// Package clipboard puts text on the system clipboard, falling back to an
// OSC52 escape sequence so copies also work over SSH.
package clipboard

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-timeline/logging"
)

// Copy tries the system clipboard first, then OSC52 on the terminal.
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}

	if !osc52Supported(os.Stderr) {
		return fmt.Errorf("%w: no system clipboard and OSC52 unsupported by terminal", ErrUnavailable)
	}
	return copyOSC52(os.Stderr, text)
}
