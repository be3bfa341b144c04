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

package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	pulumiv1 "github.com/stromee/pulumi-operator/api/v1"
	"github.com/stromee/pulumi-operator/internal/apperrors"
	"github.com/stromee/pulumi-operator/internal/repository"
)

func TestRunAsyncReturnsResultOnSuccess(t *testing.T) {
	want := &Result{Dir: "/tmp/demo"}
	got, err := runAsync(t.Context(), func(ctx context.Context) (*Result, error) {
		return want, nil
	})
	if err != nil {
		t.Fatalf("runAsync: %v", err)
	}
	if got != want {
		t.Errorf("runAsync() = %v, want %v", got, want)
	}
}

func TestRunAsyncPropagatesFetcherError(t *testing.T) {
	wantErr := errors.New("boom")
	_, err := runAsync(t.Context(), func(ctx context.Context) (*Result, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("runAsync() error = %v, want wrapping %v", err, wantErr)
	}
}

func TestRunAsyncReturnsFetchErrorOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	_, err := runAsync(ctx, func(ctx context.Context) (*Result, error) {
		<-release
		return &Result{}, nil
	})
	if !apperrors.Is(err, apperrors.FetchError) {
		t.Errorf("error kind = %v, want FetchError", err)
	}
}

func TestFetchRejectsUnsupportedSourceKind(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()

	_, err := Fetch(ctx, nil, "team-a", &repository.ResolvedSource{Kind: pulumiv1.SourceKind("Bogus")})
	if err == nil {
		t.Fatal("expected error for unsupported source kind")
	}
	if !apperrors.Is(err, apperrors.FetchError) {
		t.Errorf("error kind = %v, want FetchError", err)
	}
}
