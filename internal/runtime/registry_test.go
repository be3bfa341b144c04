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
	"strings"
	"testing"

	"github.com/stromee/pulumi-operator/internal/apperrors"
)

func TestGetKnownRuntimes(t *testing.T) {
	for _, name := range []string{"nodejs", "python", "golang", "dotnet"} {
		t.Run(name, func(t *testing.T) {
			rt, err := Get(name)
			if err != nil {
				t.Fatalf("Get(%q) returned error: %v", name, err)
			}
			if rt.Name() != name {
				t.Errorf("Get(%q).Name() = %q, want %q", name, rt.Name(), name)
			}
		})
	}
}

func TestGetUnknownRuntime(t *testing.T) {
	_, err := Get("rust")
	if err == nil {
		t.Fatal("Get(rust) should return an error")
	}
	if !apperrors.Is(err, apperrors.ConfigMissing) {
		t.Errorf("Get(rust) error kind = %v, want ConfigMissing", err)
	}
	if !strings.Contains(err.Error(), "unknown pulumi runtime") {
		t.Errorf("error message should mention 'unknown pulumi runtime', got: %v", err)
	}
}

func TestPythonInstallSkipsWithoutRequirements(t *testing.T) {
	rt, err := Get("python")
	if err != nil {
		t.Fatalf("Get(python): %v", err)
	}
	if err := rt.Install(t.Context(), t.TempDir()); err != nil {
		t.Errorf("Install with no requirements.txt should be a no-op, got: %v", err)
	}
}

func TestGolangAndDotnetAreNoOps(t *testing.T) {
	for _, name := range []string{"golang", "dotnet"} {
		rt, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if err := rt.Install(t.Context(), t.TempDir()); err != nil {
			t.Errorf("%s Install should be a no-op, got: %v", name, err)
		}
	}
}
