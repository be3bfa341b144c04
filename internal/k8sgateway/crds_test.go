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

package k8sgateway

import (
	"testing"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

func newCRDClient(t *testing.T) *fake.ClientBuilder {
	t.Helper()
	scheme := runtime.NewScheme()
	if err := apiextensionsv1.AddToScheme(scheme); err != nil {
		t.Fatalf("AddToScheme: %v", err)
	}
	return fake.NewClientBuilder().WithScheme(scheme)
}

func TestAllCRDsCoversEverySpecKind(t *testing.T) {
	crds := AllCRDs()
	wantNames := map[string]bool{
		"pulumistacks.pulumi.stromee.de":           false,
		"gitstacksources.pulumi.stromee.de":        false,
		"clustergitstacksources.pulumi.stromee.de": false,
		"ocistacksources.pulumi.stromee.de":        false,
		"clusterocistacksources.pulumi.stromee.de": false,
		"stackauths.pulumi.stromee.de":              false,
		"clusterstackauths.pulumi.stromee.de":       false,
	}
	for _, c := range crds {
		if _, ok := wantNames[c.Name]; !ok {
			t.Errorf("unexpected CRD %q", c.Name)
			continue
		}
		wantNames[c.Name] = true
	}
	for name, seen := range wantNames {
		if !seen {
			t.Errorf("missing CRD %q", name)
		}
	}
}

func TestInstallCRDsCreatesThenPatchesWithoutError(t *testing.T) {
	c := newCRDClient(t).Build()
	crds := AllCRDs()[:1]

	if err := InstallCRDs(t.Context(), c, crds...); err != nil {
		t.Fatalf("first InstallCRDs (create path): %v", err)
	}

	got := &apiextensionsv1.CustomResourceDefinition{}
	if err := c.Get(t.Context(), types.NamespacedName{Name: crds[0].Name}, got); err != nil {
		t.Fatalf("CRD not retrievable after install: %v", err)
	}

	// Installing the same definition again must patch, not error — the
	// boundary property from spec.md §8.
	if err := InstallCRDs(t.Context(), c, crds...); err != nil {
		t.Fatalf("second InstallCRDs (patch path): %v", err)
	}
}

func TestInstallOneRejectsUnnamedCRD(t *testing.T) {
	c := newCRDClient(t).Build()
	unnamed := &apiextensionsv1.CustomResourceDefinition{}
	if err := installOne(t.Context(), c, unnamed); err == nil {
		t.Fatal("expected CrdNameInvalid error for a CRD with no name")
	}
}
