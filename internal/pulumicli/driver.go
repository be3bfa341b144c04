/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pulumicli

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"sync"

	"github.com/go-logr/logr"
)

// Driver invokes the pulumi binary found on PATH.
type Driver struct {
	Logger logr.Logger
}

// NewDriver builds a Driver that logs subprocess output through logger.
func NewDriver(logger logr.Logger) *Driver {
	return &Driver{Logger: logger}
}

// Run executes cmd in workdir and returns the process's exit code. Stdout
// and stderr are each drained by their own goroutine, scanning line by
// line and forwarding to Logger.Info/Error respectively — the same shape
// as the teacher's cloudflared tunnel pipe-and-scan, generalized from one
// stream to two (see SPEC_FULL.md §4.8).
func (d *Driver) Run(ctx context.Context, workdir string, cmd Command) (int, error) {
	proc := exec.CommandContext(ctx, "pulumi", cmd.Args()...)
	proc.Dir = workdir

	stdout, err := proc.StdoutPipe()
	if err != nil {
		return -1, err
	}
	stderr, err := proc.StderrPipe()
	if err != nil {
		return -1, err
	}

	if err := proc.Start(); err != nil {
		return -1, err
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go d.scan(&wg, stdout, false)
	go d.scan(&wg, stderr, true)
	wg.Wait()

	if err := proc.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

func (d *Driver) scan(wg *sync.WaitGroup, r io.Reader, isErr bool) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if isErr {
			d.Logger.Error(nil, line)
		} else {
			d.Logger.Info(line)
		}
	}
}
