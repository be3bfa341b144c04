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

// Package fetch materializes a stack's program source into a local
// directory, dispatching on whether the resolved source is a Git
// repository or an OCI artifact.
package fetch

import (
	"context"

	pulumiv1 "github.com/stromee/pulumi-operator/api/v1"
	"github.com/stromee/pulumi-operator/internal/apperrors"
	"github.com/stromee/pulumi-operator/internal/k8sgateway"
	"github.com/stromee/pulumi-operator/internal/repository"
)

// Result is the local filesystem outcome of a fetch.
type Result struct {
	Dir string
}

// Fetch dispatches source to the Git or OCI fetcher and returns the local
// directory its program was written to. namespace scopes the Secret lookup
// for Git credentials. Each fetcher runs its blocking work on its own
// goroutine and reports back over a buffered channel, so a caller juggling
// several stacks never blocks the reconciliation loop on I/O for one of
// them (see SPEC_FULL.md §4.7/§9, OQ-3).
func Fetch(ctx context.Context, gw *k8sgateway.Gateway, namespace string, source *repository.ResolvedSource) (*Result, error) {
	switch source.Kind {
	case pulumiv1.SourceKindGitStackSource, pulumiv1.SourceKindClusterGitStackSource:
		return runAsync(ctx, func(ctx context.Context) (*Result, error) {
			return fetchGit(ctx, gw, namespace, source)
		})
	case pulumiv1.SourceKindOciStackSource, pulumiv1.SourceKindClusterOciStackSource:
		return runAsync(ctx, func(ctx context.Context) (*Result, error) {
			return fetchOci(ctx, source)
		})
	default:
		return nil, apperrors.Newf(apperrors.FetchError, "unsupported source kind %q", source.Kind)
	}
}

type fetchFunc func(ctx context.Context) (*Result, error)

func runAsync(ctx context.Context, fn fetchFunc) (*Result, error) {
	type outcome struct {
		result *Result
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		r, err := fn(ctx)
		done <- outcome{result: r, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, apperrors.Wrap(ctx.Err(), apperrors.FetchError, "fetch cancelled")
	case o := <-done:
		return o.result, o.err
	}
}
