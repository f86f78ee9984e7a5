// Package gateway drives the external OpenClaw process.
package gateway

import (
	"fmt"
	"os/exec"
	"time"

	"clawmgr/internal/errs"
)

const (
	binaryName       = "openclaw"
	legacyBinaryName = "clawdbot"

	// How long the daemon needs after "daemon restart" before it answers
	// requests again. Fixed pause, no probing.
	restartSettle = 2 * time.Second
)

// Locate returns the gateway binary name, preferring the current one over
// the legacy clawdbot install.
func Locate() (string, error) {
	return locate(binaryName, legacyBinaryName)
}

func locate(names ...string) (string, error) {
	for _, name := range names {
		if _, err := exec.LookPath(name); err == nil {
			return name, nil
		}
	}
	return "", &errs.PreconditionError{
		Msg: "openclaw is not installed (npm install -g openclaw@latest)",
	}
}

// Controller restarts the gateway daemon after config changes.
type Controller struct {
	bin    string
	settle time.Duration
}

// NewController returns a controller for the given gateway binary.
func NewController(bin string) *Controller {
	return &Controller{bin: bin, settle: restartSettle}
}

// Restart asks the daemon to reload its config, then waits for it to come
// back up. Callers that can finish their work without the restart log the
// error and move on.
func (c *Controller) Restart() error {
	cmd := exec.Command(c.bin, "daemon", "restart")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s daemon restart: %w", c.bin, err)
	}
	time.Sleep(c.settle)
	return nil
}
