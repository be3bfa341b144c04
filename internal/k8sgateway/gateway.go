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

// Package k8sgateway is the single seam through which the rest of this
// module talks to the API server: typed get/list helpers and finalizer
// mutation, wrapping a controller-runtime client.Client.
package k8sgateway

import (
	"context"
	"encoding/json"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/stromee/pulumi-operator/internal/apperrors"
)

// Gateway wraps a controller-runtime client with the typed operations the
// controller, stack service, and worker pipeline need.
type Gateway struct {
	client.Client
}

// New builds a Gateway over an already-constructed controller-runtime
// client. The client's own kubeconfig/in-cluster resolution (performed by
// the caller via ctrl.GetConfigOrDie) is out of scope here.
func New(c client.Client) *Gateway {
	return &Gateway{Client: c}
}

// Get fetches obj by namespaced name, wrapping not-found and transport
// failures alike into apperrors.ApiError so callers only branch on Kind.
func (g *Gateway) Get(ctx context.Context, key types.NamespacedName, obj client.Object) error {
	if err := g.Client.Get(ctx, key, obj); err != nil {
		return apperrors.Wrap(err, apperrors.ApiError, "get "+key.String())
	}
	return nil
}

// GetInNamespace is Get with the namespace and name supplied separately,
// the shape the worker's config (which never parses a combined key) wants.
func (g *Gateway) GetInNamespace(ctx context.Context, namespace, name string, obj client.Object) error {
	return g.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, obj)
}

// List fetches a cluster-wide list of obj's kind.
func (g *Gateway) List(ctx context.Context, list client.ObjectList, opts ...client.ListOption) error {
	if err := g.Client.List(ctx, list, opts...); err != nil {
		return apperrors.Wrap(err, apperrors.ApiError, "list")
	}
	return nil
}

// ListInNamespace is List scoped to a single namespace.
func (g *Gateway) ListInNamespace(ctx context.Context, namespace string, list client.ObjectList, opts ...client.ListOption) error {
	return g.List(ctx, list, append(opts, client.InNamespace(namespace))...)
}

// ListAllHandledNamespaces lists list's kind across every namespace the
// operator reconciles. Today that's every namespace in the cluster, so it
// is List with no namespace filter; this is the extension point for a
// namespace allow-list.
func (g *Gateway) ListAllHandledNamespaces(ctx context.Context, list client.ObjectList, opts ...client.ListOption) error {
	return g.List(ctx, list, opts...)
}

// finalizerPatch is the JSON merge patch body for a finalizers mutation.
type finalizerPatch struct {
	Metadata finalizerPatchMetadata `json:"metadata"`
}

type finalizerPatchMetadata struct {
	Finalizers []string `json:"finalizers"`
}

// HasFinalizer reports whether obj already carries the given finalizer.
func HasFinalizer(obj client.Object, finalizer string) bool {
	for _, f := range obj.GetFinalizers() {
		if f == finalizer {
			return true
		}
	}
	return false
}

// AddFinalizer patches finalizer onto obj via a JSON merge patch against
// metadata.finalizers, leaving the in-memory obj's finalizer list updated
// to match so callers don't need a follow-up Get.
func (g *Gateway) AddFinalizer(ctx context.Context, obj client.Object, finalizer string) error {
	if HasFinalizer(obj, finalizer) {
		return nil
	}
	next := append(append([]string{}, obj.GetFinalizers()...), finalizer)
	if err := g.patchFinalizers(ctx, obj, next); err != nil {
		return err
	}
	obj.SetFinalizers(next)
	return nil
}

// RemoveFinalizer patches finalizer off obj.
func (g *Gateway) RemoveFinalizer(ctx context.Context, obj client.Object, finalizer string) error {
	existing := obj.GetFinalizers()
	next := make([]string, 0, len(existing))
	for _, f := range existing {
		if f != finalizer {
			next = append(next, f)
		}
	}
	if len(next) == len(existing) {
		return nil
	}
	if err := g.patchFinalizers(ctx, obj, next); err != nil {
		return err
	}
	obj.SetFinalizers(next)
	return nil
}

func (g *Gateway) patchFinalizers(ctx context.Context, obj client.Object, finalizers []string) error {
	body, err := json.Marshal(finalizerPatch{Metadata: finalizerPatchMetadata{Finalizers: finalizers}})
	if err != nil {
		return apperrors.Wrap(err, apperrors.ApiError, "marshal finalizer patch")
	}
	patch := client.RawPatch(types.MergePatchType, body)
	if err := g.Client.Patch(ctx, obj, patch); err != nil {
		if apierrors.IsNotFound(err) {
			return apperrors.Wrap(err, apperrors.ApiError, "finalizer patch: object gone")
		}
		return apperrors.Wrap(err, apperrors.ApiError, "finalizer patch")
	}
	return nil
}
