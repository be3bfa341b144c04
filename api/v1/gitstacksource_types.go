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

package v1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// GitAuthKind selects the shape of credential a GitAuth.SecretRef holds.
// +kubebuilder:validation:Enum=Basic;Ssh
type GitAuthKind string

const (
	GitAuthKindBasic GitAuthKind = "Basic"
	GitAuthKindSsh   GitAuthKind = "Ssh"
)

// GitAuth references the Secret supplying Git transport credentials.
type GitAuth struct {
	// Kind selects which keys are read from SecretRef: Basic reads
	// "username"/"password"; Ssh reads "identity", "identity.pass", and
	// "remote.pub.sha256".
	Kind GitAuthKind `json:"kind"`
	// SecretRef names the Secret holding the credential keys.
	SecretRef corev1.LocalObjectReference `json:"secretRef"`
}

// GitStackSourceSpec defines where to clone a stack's program source from.
type GitStackSourceSpec struct {
	// Repository is the Git clone URL (https:// or ssh://, or an
	// scp-like "git@host:path" form).
	Repository string `json:"repository"`

	// Ref is an optional branch name, tag name, or commit hash to check
	// out. Tried in that order. Defaults to the repository's HEAD.
	//+optional
	Ref string `json:"ref,omitempty"`

	// Path is an optional subdirectory within the repository. Redundant
	// with PulumiStack.spec.path; see SPEC_FULL.md OQ-1 — the worker
	// does not read this field and uses only PulumiStack.spec.path.
	//+optional
	Path string `json:"path,omitempty"`

	// Auth is optional; when unset, the clone is attempted with no
	// transport credentials and no Secret is consulted.
	//+optional
	Auth *GitAuth `json:"auth,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:resource:path=gitstacksources,scope=Namespaced

// GitStackSource is the Schema for the gitstacksources API.
type GitStackSource struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec GitStackSourceSpec `json:"spec,omitempty"`
}

//+kubebuilder:object:root=true

// GitStackSourceList contains a list of GitStackSource.
type GitStackSourceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []GitStackSource `json:"items"`
}

//+kubebuilder:object:root=true
//+kubebuilder:resource:path=clustergitstacksources,scope=Cluster

// ClusterGitStackSource is the cluster-scoped counterpart to GitStackSource.
type ClusterGitStackSource struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec GitStackSourceSpec `json:"spec,omitempty"`
}

//+kubebuilder:object:root=true

// ClusterGitStackSourceList contains a list of ClusterGitStackSource.
type ClusterGitStackSourceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ClusterGitStackSource `json:"items"`
}

func init() {
	SchemeBuilder.Register(&GitStackSource{}, &GitStackSourceList{})
	SchemeBuilder.Register(&ClusterGitStackSource{}, &ClusterGitStackSourceList{})
}
