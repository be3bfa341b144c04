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
	"context"
	"encoding/json"
	"time"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/stromee/pulumi-operator/internal/apperrors"
)

const crdGroup = "pulumi.stromee.de"

// freeFormSchema accepts any JSON object shape. The real CRDs in this
// module carry nested Go structs with known fields; a hand-rolled
// controller-gen isn't part of this exercise, so every CRD is installed
// with a permissive open-ended schema and relies on Go-side validation
// (AddToScheme's json tags, the repository/worker validation path) rather
// than server-side OpenAPI validation.
func freeFormSchema() *apiextensionsv1.JSONSchemaProps {
	preserve := true
	return &apiextensionsv1.JSONSchemaProps{
		Type:                   "object",
		XPreserveUnknownFields: &preserve,
	}
}

func crd(plural, kind, listKind, singular string, scope apiextensionsv1.ResourceScope, shortNames ...string) *apiextensionsv1.CustomResourceDefinition {
	return &apiextensionsv1.CustomResourceDefinition{
		ObjectMeta: metav1.ObjectMeta{
			Name: plural + "." + crdGroup,
		},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: crdGroup,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Plural:     plural,
				Singular:   singular,
				Kind:       kind,
				ListKind:   listKind,
				ShortNames: shortNames,
			},
			Scope: scope,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{
				{
					Name:    "v1",
					Served:  true,
					Storage: true,
					Schema: &apiextensionsv1.CustomResourceValidation{
						OpenAPIV3Schema: freeFormSchema(),
					},
					Subresources: &apiextensionsv1.CustomResourceSubresources{
						Status: &apiextensionsv1.CustomResourceSubresourceStatus{},
					},
				},
			},
		},
	}
}

// AllCRDs returns the CustomResourceDefinition objects for the seven kinds
// this module registers: PulumiStack plus its four namespaced/cluster-scoped
// source kinds and two auth kinds.
func AllCRDs() []*apiextensionsv1.CustomResourceDefinition {
	pulumiStack := crd("pulumistacks", "PulumiStack", "PulumiStackList", "pulumistack", apiextensionsv1.NamespaceScoped, "pstack")
	// crd() enables the status subresource on every kind; PulumiStack is
	// the only kind whose Go type has a Status field that gets written.
	return []*apiextensionsv1.CustomResourceDefinition{
		pulumiStack,
		crd("gitstacksources", "GitStackSource", "GitStackSourceList", "gitstacksource", apiextensionsv1.NamespaceScoped),
		crd("clustergitstacksources", "ClusterGitStackSource", "ClusterGitStackSourceList", "clustergitstacksource", apiextensionsv1.ClusterScoped),
		crd("ocistacksources", "OciStackSource", "OciStackSourceList", "ocistacksource", apiextensionsv1.NamespaceScoped),
		crd("clusterocistacksources", "ClusterOciStackSource", "ClusterOciStackSourceList", "clusterocistacksource", apiextensionsv1.ClusterScoped),
		crd("stackauths", "StackAuth", "StackAuthList", "stackauth", apiextensionsv1.NamespaceScoped),
		crd("clusterstackauths", "ClusterStackAuth", "ClusterStackAuthList", "clusterstackauth", apiextensionsv1.ClusterScoped),
	}
}

// InstallCRDs ensures every definition in crds exists in the cluster,
// waiting for each to become retrievable before moving to the next.
// Each CRD is created; on conflict with an existing definition it is
// strategic-merge-patched instead, matching the teacher's
// create-then-patch idiom for child objects.
func InstallCRDs(ctx context.Context, c client.Client, crds ...*apiextensionsv1.CustomResourceDefinition) error {
	for _, want := range crds {
		if err := installOne(ctx, c, want); err != nil {
			return err
		}
	}
	return nil
}

func installOne(ctx context.Context, c client.Client, want *apiextensionsv1.CustomResourceDefinition) error {
	if want.Name == "" {
		return apperrors.New(apperrors.CrdNameInvalid, "CRD object has no metadata.name")
	}

	err := c.Create(ctx, want.DeepCopy())
	switch {
	case err == nil:
	case apierrors.IsAlreadyExists(err):
		body, marshalErr := json.Marshal(want)
		if marshalErr != nil {
			return apperrors.Wrap(marshalErr, apperrors.ApiError, "marshal CRD "+want.Name)
		}
		if patchErr := c.Patch(ctx, want, client.RawPatch(types.StrategicMergePatchType, body)); patchErr != nil {
			return apperrors.Wrap(patchErr, apperrors.ApiError, "patch CRD "+want.Name)
		}
	default:
		return apperrors.Wrap(err, apperrors.ApiError, "create CRD "+want.Name)
	}

	return waitRetrievable(ctx, c, want.Name)
}

func waitRetrievable(ctx context.Context, c client.Client, name string) error {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	check := func() (bool, error) {
		got := &apiextensionsv1.CustomResourceDefinition{}
		err := c.Get(ctx, types.NamespacedName{Name: name}, got)
		if err == nil {
			return true, nil
		}
		if apierrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if ok, err := check(); err != nil {
		return apperrors.Wrap(err, apperrors.ApiError, "poll CRD "+name)
	} else if ok {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return apperrors.Wrap(ctx.Err(), apperrors.ApiError, "poll CRD "+name+": context done")
		case <-ticker.C:
			ok, err := check()
			if err != nil {
				return apperrors.Wrap(err, apperrors.ApiError, "poll CRD "+name)
			}
			if ok {
				return nil
			}
		}
	}
}
