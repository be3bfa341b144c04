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

// Package repository resolves the typed references a PulumiStack carries
// (SourceReference, AuthReference) into the concrete, possibly
// cluster-scoped, CR they name.
package repository

import (
	"context"

	"k8s.io/apimachinery/pkg/types"

	pulumiv1 "github.com/stromee/pulumi-operator/api/v1"
	"github.com/stromee/pulumi-operator/internal/apperrors"
	"github.com/stromee/pulumi-operator/internal/k8sgateway"
)

// ResolvedSource is a source CR's fields collapsed into a single shape,
// regardless of which of the four source kinds produced it.
type ResolvedSource struct {
	Kind       pulumiv1.SourceKind
	Repository string // Git only
	Ref        string // Git only
	Path       string // Git only; see SPEC_FULL.md OQ-1
	Auth       *pulumiv1.GitAuth
	Url        string // OCI only
	Tag        string // OCI only
}

// ResolvedAuth is a StackAuth/ClusterStackAuth's fields collapsed into a
// single shape.
type ResolvedAuth struct {
	Backend           string
	BackendAuthSecret *string
	AccessTokenSecret *string
}

// Source resolves SourceReference values against the gateway, consulting
// the namespaced or cluster-scoped kind named by ref.Type.
type Source struct {
	Gateway *k8sgateway.Gateway
}

// Resolve fetches the CR ref names, in namespace ns for the namespaced
// kinds, and collapses it to a ResolvedSource.
func (s *Source) Resolve(ctx context.Context, ns string, ref pulumiv1.SourceReference) (*ResolvedSource, error) {
	switch ref.Type {
	case pulumiv1.SourceKindGitStackSource:
		obj := &pulumiv1.GitStackSource{}
		if err := s.Gateway.GetInNamespace(ctx, ns, ref.Name, obj); err != nil {
			return nil, err
		}
		return gitResolved(pulumiv1.SourceKindGitStackSource, obj.Spec), nil

	case pulumiv1.SourceKindClusterGitStackSource:
		obj := &pulumiv1.ClusterGitStackSource{}
		if err := s.Gateway.Get(ctx, types.NamespacedName{Name: ref.Name}, obj); err != nil {
			return nil, err
		}
		return gitResolved(pulumiv1.SourceKindClusterGitStackSource, obj.Spec), nil

	case pulumiv1.SourceKindOciStackSource:
		obj := &pulumiv1.OciStackSource{}
		if err := s.Gateway.GetInNamespace(ctx, ns, ref.Name, obj); err != nil {
			return nil, err
		}
		return ociResolved(pulumiv1.SourceKindOciStackSource, obj.Spec), nil

	case pulumiv1.SourceKindClusterOciStackSource:
		obj := &pulumiv1.ClusterOciStackSource{}
		if err := s.Gateway.Get(ctx, types.NamespacedName{Name: ref.Name}, obj); err != nil {
			return nil, err
		}
		return ociResolved(pulumiv1.SourceKindClusterOciStackSource, obj.Spec), nil

	default:
		return nil, apperrors.Newf(apperrors.FetchError, "unknown source kind %q", ref.Type)
	}
}

func gitResolved(kind pulumiv1.SourceKind, spec pulumiv1.GitStackSourceSpec) *ResolvedSource {
	return &ResolvedSource{
		Kind:       kind,
		Repository: spec.Repository,
		Ref:        spec.Ref,
		Path:       spec.Path,
		Auth:       spec.Auth,
	}
}

func ociResolved(kind pulumiv1.SourceKind, spec pulumiv1.OciStackSourceSpec) *ResolvedSource {
	return &ResolvedSource{Kind: kind, Url: spec.Url, Tag: spec.Tag}
}

// Auth resolves AuthReference values against the gateway.
type Auth struct {
	Gateway *k8sgateway.Gateway
}

// Resolve fetches the StackAuth/ClusterStackAuth ref names.
func (a *Auth) Resolve(ctx context.Context, ns string, ref pulumiv1.AuthReference) (*ResolvedAuth, error) {
	switch ref.Type {
	case pulumiv1.AuthKindStackAuth:
		obj := &pulumiv1.StackAuth{}
		if err := a.Gateway.GetInNamespace(ctx, ns, ref.Name, obj); err != nil {
			return nil, err
		}
		return authResolved(obj.Spec), nil

	case pulumiv1.AuthKindClusterStackAuth:
		obj := &pulumiv1.ClusterStackAuth{}
		if err := a.Gateway.Get(ctx, types.NamespacedName{Name: ref.Name}, obj); err != nil {
			return nil, err
		}
		return authResolved(obj.Spec), nil

	default:
		return nil, apperrors.Newf(apperrors.FetchError, "unknown auth kind %q", ref.Type)
	}
}

func authResolved(spec pulumiv1.StackAuthSpec) *ResolvedAuth {
	r := &ResolvedAuth{Backend: spec.Backend}
	if spec.BackendAuthSecret != nil {
		r.BackendAuthSecret = &spec.BackendAuthSecret.Name
	}
	if spec.AccessTokenSecret != nil {
		r.AccessTokenSecret = &spec.AccessTokenSecret.Name
	}
	return r
}

