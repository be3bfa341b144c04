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

package config

import (
	"testing"

	"github.com/stromee/pulumi-operator/internal/apperrors"
)

func TestLoadRequiresOperatorNamespace(t *testing.T) {
	t.Setenv("OPERATOR_NAMESPACE", "")
	t.Setenv("WORKER_IMAGE", "ghcr.io/acme/pulumi-worker:v1")

	_, err := Load()
	if !apperrors.Is(err, apperrors.ConfigMissing) {
		t.Errorf("error kind = %v, want ConfigMissing", err)
	}
}

func TestLoadRequiresWorkerImage(t *testing.T) {
	t.Setenv("OPERATOR_NAMESPACE", "pulumi-system")
	t.Setenv("WORKER_IMAGE", "")

	_, err := Load()
	if !apperrors.Is(err, apperrors.ConfigMissing) {
		t.Errorf("error kind = %v, want ConfigMissing", err)
	}
}

func TestLoadSucceeds(t *testing.T) {
	t.Setenv("OPERATOR_NAMESPACE", "pulumi-system")
	t.Setenv("WORKER_IMAGE", "ghcr.io/acme/pulumi-worker:v1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OperatorNamespace != "pulumi-system" || cfg.WorkerImage != "ghcr.io/acme/pulumi-worker:v1" {
		t.Errorf("Load() = %+v, want fields from env", cfg)
	}
}

func TestLoadWorkerRequiresAllThreeVars(t *testing.T) {
	tests := []struct {
		name           string
		pulumiStack    string
		watchNamespace string
		operatorNs     string
	}{
		{"missing PULUMI_STACK", "", "team-a", "pulumi-system"},
		{"missing WATCH_NAMESPACE", "demo", "", "pulumi-system"},
		{"missing OPERATOR_NAMESPACE", "demo", "team-a", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PULUMI_STACK", tt.pulumiStack)
			t.Setenv("WATCH_NAMESPACE", tt.watchNamespace)
			t.Setenv("OPERATOR_NAMESPACE", tt.operatorNs)

			_, err := LoadWorker()
			if !apperrors.Is(err, apperrors.ConfigMissing) {
				t.Errorf("error kind = %v, want ConfigMissing", err)
			}
		})
	}
}

func TestLoadWorkerSucceeds(t *testing.T) {
	t.Setenv("PULUMI_STACK", "demo")
	t.Setenv("WATCH_NAMESPACE", "team-a")
	t.Setenv("OPERATOR_NAMESPACE", "pulumi-system")

	cfg, err := LoadWorker()
	if err != nil {
		t.Fatalf("LoadWorker: %v", err)
	}
	if cfg.PulumiStack != "demo" || cfg.WatchNamespace != "team-a" || cfg.OperatorNamespace != "pulumi-system" {
		t.Errorf("LoadWorker() = %+v, want fields from env", cfg)
	}
}
