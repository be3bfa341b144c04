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

// Package worker implements the in-job pipeline each stack's CronJob runs:
// resolve the stack's spec, fetch its program source, hydrate backend
// credentials, install the program's runtime dependencies, then drive the
// pulumi CLI through login, a defensive cancel, and finally up.
package worker

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	pulumiv1 "github.com/stromee/pulumi-operator/api/v1"
	"github.com/stromee/pulumi-operator/internal/apperrors"
	"github.com/stromee/pulumi-operator/internal/config"
	"github.com/stromee/pulumi-operator/internal/fetch"
	"github.com/stromee/pulumi-operator/internal/k8sgateway"
	"github.com/stromee/pulumi-operator/internal/pulumicli"
	"github.com/stromee/pulumi-operator/internal/repository"
	"github.com/stromee/pulumi-operator/internal/runtime"
)

// Run executes the full worker pipeline described in SPEC_FULL.md §4.6 and
// returns the exit code the worker process should terminate with — either
// a fixed code for a pipeline failure ahead of "pulumi up", or the exit
// code "pulumi up" itself returned.
func Run(ctx context.Context, gw *k8sgateway.Gateway, cfg *config.WorkerConfig, driver *pulumicli.Driver, logger logr.Logger) (int, error) {
	stack := &pulumiv1.PulumiStack{}
	if err := gw.GetInNamespace(ctx, cfg.WatchNamespace, cfg.PulumiStack, stack); err != nil {
		return 1, apperrors.Wrap(err, apperrors.ApiError, "resolve PulumiStack "+cfg.PulumiStack)
	}

	auth, err := (&repository.Auth{Gateway: gw}).Resolve(ctx, stack.Namespace, stack.Spec.Auth)
	if err != nil {
		return 1, err
	}

	source, err := (&repository.Source{Gateway: gw}).Resolve(ctx, stack.Namespace, stack.Spec.Source)
	if err != nil {
		return 1, err
	}

	if err := hydrateCredentials(ctx, gw, stack.Namespace, auth); err != nil {
		return 1, err
	}

	fetched, err := fetch.Fetch(ctx, gw, stack.Namespace, source)
	if err != nil {
		return 1, err
	}
	defer os.RemoveAll(fetched.Dir)

	workdir := fetched.Dir
	if stack.Spec.Path != "" {
		workdir = filepath.Join(workdir, stack.Spec.Path)
	}

	runtimeName, err := readRuntime(workdir)
	if err != nil {
		return 1, err
	}
	rt, err := runtime.Get(runtimeName)
	if err != nil {
		return 1, err
	}
	if err := rt.Install(ctx, workdir); err != nil {
		return 1, err
	}

	if _, err := driver.Run(ctx, workdir, pulumicli.Login{URL: auth.Backend}); err != nil {
		return 1, apperrors.Wrap(err, apperrors.UpdateFailed, "pulumi login")
	}

	stackName := stack.Spec.StackName
	if stackName == "" {
		stackName = stack.Name
	}

	// Defensive: clear any stale lock left by a prior run that never
	// finished. Best-effort — a failing cancel here (nothing to cancel is
	// the common case) must not abort the deployment.
	if code, err := driver.Run(ctx, workdir, pulumicli.Cancel{Stack: stackName}); err != nil || code != 0 {
		logger.Info("defensive pulumi cancel did not succeed, continuing", "exitCode", code, "error", err)
	}

	code, err := driver.Run(ctx, workdir, pulumicli.Up{
		Stack:       stackName,
		Yes:         true,
		SkipPreview: true,
	})
	if err != nil {
		return 1, apperrors.Wrap(err, apperrors.UpdateFailed, "pulumi up")
	}
	return code, nil
}
