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

package runtime

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/stromee/pulumi-operator/internal/apperrors"
)

// nodejsRuntime runs "npm install" — the one install step spec.md
// implements explicitly.
type nodejsRuntime struct{}

func (nodejsRuntime) Name() string { return "nodejs" }

func (nodejsRuntime) Install(ctx context.Context, workdir string) error {
	cmd := exec.CommandContext(ctx, "npm", "install")
	cmd.Dir = workdir
	if out, err := cmd.CombinedOutput(); err != nil {
		return apperrors.Wrapf(err, apperrors.ConfigMissing, "npm install failed: %s", string(out))
	}
	return nil
}

// pythonRuntime runs "pip install -r requirements.txt" when that file is
// present, and is a no-op otherwise.
type pythonRuntime struct{}

func (pythonRuntime) Name() string { return "python" }

func (pythonRuntime) Install(ctx context.Context, workdir string) error {
	reqs := filepath.Join(workdir, "requirements.txt")
	if _, err := os.Stat(reqs); err != nil {
		return nil
	}
	cmd := exec.CommandContext(ctx, "pip", "install", "-r", reqs)
	cmd.Dir = workdir
	if out, err := cmd.CombinedOutput(); err != nil {
		return apperrors.Wrapf(err, apperrors.ConfigMissing, "pip install failed: %s", string(out))
	}
	return nil
}

// golangRuntime and dotnetRuntime resolve dependencies at build time via
// their own toolchains rather than a separate install step, so they're
// deliberate no-ops rather than an unsupported-runtime error.
type golangRuntime struct{}

func (golangRuntime) Name() string                                    { return "golang" }
func (golangRuntime) Install(ctx context.Context, workdir string) error { return nil }

type dotnetRuntime struct{}

func (dotnetRuntime) Name() string                                    { return "dotnet" }
func (dotnetRuntime) Install(ctx context.Context, workdir string) error { return nil }
