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

package worker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stromee/pulumi-operator/internal/apperrors"
)

func writePulumiYAML(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Pulumi.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write Pulumi.yaml: %v", err)
	}
	return dir
}

func TestReadRuntimeScalarForm(t *testing.T) {
	dir := writePulumiYAML(t, "name: demo\nruntime: nodejs\n")
	got, err := readRuntime(dir)
	if err != nil {
		t.Fatalf("readRuntime: %v", err)
	}
	if got != "nodejs" {
		t.Errorf("readRuntime() = %q, want %q", got, "nodejs")
	}
}

func TestReadRuntimeMappingForm(t *testing.T) {
	dir := writePulumiYAML(t, "name: demo\nruntime:\n  name: python\n  options:\n    virtualenv: venv\n")
	got, err := readRuntime(dir)
	if err != nil {
		t.Fatalf("readRuntime: %v", err)
	}
	if got != "python" {
		t.Errorf("readRuntime() = %q, want %q", got, "python")
	}
}

func TestReadRuntimeMissingFile(t *testing.T) {
	_, err := readRuntime(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing Pulumi.yaml")
	}
	if !apperrors.Is(err, apperrors.ConfigMissing) {
		t.Errorf("error kind = %v, want ConfigMissing", err)
	}
}

func TestReadRuntimeMissingField(t *testing.T) {
	dir := writePulumiYAML(t, "name: demo\n")
	_, err := readRuntime(dir)
	if err == nil {
		t.Fatal("expected error for missing runtime field")
	}
	if !apperrors.Is(err, apperrors.ConfigMissing) {
		t.Errorf("error kind = %v, want ConfigMissing", err)
	}
}
