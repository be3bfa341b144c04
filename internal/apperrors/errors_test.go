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

package apperrors

import (
	"errors"
	"testing"
)

func TestIsMatchesWrappedKind(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, GitError, "clone failed")
	if !Is(err, GitError) {
		t.Error("Is(err, GitError) = false, want true")
	}
	if Is(err, OciError) {
		t.Error("Is(err, OciError) = true, want false")
	}
}

func TestIsMatchesOutermostKind(t *testing.T) {
	inner := New(SecretShapeInvalid, "missing key")
	outer := Wrap(inner, FetchError, "resolve source")
	if !Is(outer, FetchError) {
		t.Error("Is(outer, FetchError) = false, want true")
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if err := Wrap(nil, GitError, "whatever"); err != nil {
		t.Errorf("Wrap(nil, ...) = %v, want nil", err)
	}
	if err := Wrapf(nil, GitError, "whatever %d", 1); err != nil {
		t.Errorf("Wrapf(nil, ...) = %v, want nil", err)
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, ApiError, "get object")

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As should find the *Error")
	}
	if appErr.Unwrap() == nil {
		t.Error("Unwrap() should not be nil for a wrapped error")
	}
}

func TestNewHasNoCause(t *testing.T) {
	err := New(CrdNameInvalid, "missing name")
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As should find the *Error")
	}
	if appErr.Unwrap() != nil {
		t.Error("New() error should have no wrapped cause")
	}
}
