// Copyright (c) 2026, the hailodash authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shell

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/hailodash/hailodash/pkg/defaults"
	"github.com/hailodash/hailodash/pkg/errors"
)

// DefaultTimeout bounds a single external tool invocation. Individual
// probes override it for known-slow tools (hailortcli takes several
// seconds when the device firmware is unresponsive).
const DefaultTimeout = defaults.ProbeCommandTimeout

// Runner executes an external command with a bounded runtime. A command
// that exceeds the bound is killed and reported as an error; the caller
// treats that the same as the tool being absent.
type Runner interface {
	// Output runs the named command and returns its trimmed stdout.
	// Non-zero exit, a missing binary, and a timeout all return an error.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// CommandRunner is the production Runner backed by os/exec.
type CommandRunner struct {
	// Timeout bounds each invocation. Zero means DefaultTimeout.
	Timeout time.Duration
}

// NewRunner creates a CommandRunner with the given timeout.
// A zero timeout selects DefaultTimeout.
func NewRunner(timeout time.Duration) *CommandRunner {
	return &CommandRunner{Timeout: timeout}
}

// Output implements Runner.
func (r *CommandRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		switch {
		case cctx.Err() != nil:
			return "", errors.Wrap(errors.ErrCodeTimeout,
				fmt.Sprintf("command %q timed out after %s", name, timeout), cctx.Err())
		case stderrors.Is(err, exec.ErrNotFound):
			return "", errors.Wrap(errors.ErrCodeNotFound,
				fmt.Sprintf("command %q not found", name), err)
		default:
			return "", errors.Wrap(errors.ErrCodeExecFailed,
				fmt.Sprintf("command %q failed", name), err)
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
