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

// SourceKind enumerates the CRD kinds a PulumiStack.spec.source.type may
// name; the kind also determines whether the referenced object is
// namespaced (consulted in the PulumiStack's own namespace) or
// cluster-scoped.
// +kubebuilder:validation:Enum=GitStackSource;ClusterGitStackSource;OciStackSource;ClusterOciStackSource
type SourceKind string

const (
	SourceKindGitStackSource        SourceKind = "GitStackSource"
	SourceKindClusterGitStackSource SourceKind = "ClusterGitStackSource"
	SourceKindOciStackSource        SourceKind = "OciStackSource"
	SourceKindClusterOciStackSource SourceKind = "ClusterOciStackSource"
)

// AuthKind enumerates the CRD kinds a PulumiStack.spec.auth.type may name.
// +kubebuilder:validation:Enum=StackAuth;ClusterStackAuth
type AuthKind string

const (
	AuthKindStackAuth        AuthKind = "StackAuth"
	AuthKindClusterStackAuth AuthKind = "ClusterStackAuth"
)

// SourceReference names the GitStackSource/OciStackSource (namespaced or
// cluster-scoped) that supplies this stack's program source.
type SourceReference struct {
	// Name is the referenced object's metadata.name.
	Name string `json:"name"`
	// Type selects which CRD kind — and therefore which repository,
	// namespaced or cluster-scoped — resolves Name.
	Type SourceKind `json:"type"`
}

// AuthReference names the StackAuth/ClusterStackAuth that supplies this
// stack's backend credentials.
type AuthReference struct {
	// Name is the referenced object's metadata.name.
	Name string `json:"name"`
	// Type selects which CRD kind resolves Name.
	Type AuthKind `json:"type"`
}

// MainContainerOverrides merges additional env vars and volume mounts into
// the worker's main container, on top of the baseline the Stack Service
// always sets (PULUMI_STACK, WATCH_NAMESPACE, OPERATOR_NAMESPACE).
type MainContainerOverrides struct {
	// ExtraEnv are environment variables appended to the main container.
	//+optional
	ExtraEnv []corev1.EnvVar `json:"extraEnv,omitempty"`
	// ExtraVolumeMounts are volume mounts appended to the main container.
	//+optional
	ExtraVolumeMounts []corev1.VolumeMount `json:"extraVolumeMounts,omitempty"`
}

// MainPodOverrides merges additional metadata into the worker pod template.
type MainPodOverrides struct {
	// ExtraAnnotations are annotations appended to the pod template.
	//+optional
	ExtraAnnotations map[string]string `json:"extraAnnotations,omitempty"`
}

// PulumiStackSpec defines the desired state of a PulumiStack.
type PulumiStackSpec struct {
	// StackName is the logical Pulumi stack identifier passed to the CLI.
	// If empty, the worker falls back to the PulumiStack's own name.
	//+optional
	StackName string `json:"stackName,omitempty"`

	// Source names the GitStackSource/OciStackSource (namespaced or
	// cluster-scoped) this stack's program is fetched from.
	Source SourceReference `json:"source"`

	// Auth names the StackAuth/ClusterStackAuth this stack's backend
	// credentials are resolved from.
	Auth AuthReference `json:"auth"`

	// Path is an optional subdirectory within the fetched source tree
	// containing Pulumi.yaml. A path set on the referenced Git source is
	// not used (see SPEC_FULL.md OQ-1).
	//+optional
	Path string `json:"path,omitempty"`

	// InitContainers are merged into the generated workload's pod spec
	// ahead of the main container.
	//+optional
	InitContainers []corev1.Container `json:"initContainers,omitempty"`

	// ExtraVolumes are merged into the generated workload's pod spec.
	//+optional
	ExtraVolumes []corev1.Volume `json:"extraVolumes,omitempty"`

	// MainContainer overrides env vars and volume mounts on the main
	// (pulumi up) container.
	//+optional
	MainContainer MainContainerOverrides `json:"mainContainer,omitempty"`

	// MainPod overrides pod-level metadata on the generated workload.
	//+optional
	MainPod MainPodOverrides `json:"mainPod,omitempty"`

	// Organization is an optional Pulumi organization name.
	//+optional
	Organization string `json:"organization,omitempty"`
}

// PulumiStackStatus defines the observed state of a PulumiStack.
type PulumiStackStatus struct {
	// ObservedGeneration is the .metadata.generation last acted on.
	//+optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// LastReconcileTime records when the controller last finished acting
	// on this object, successfully or not.
	//+optional
	LastReconcileTime *metav1.Time `json:"lastReconcileTime,omitempty"`

	// Conditions represent the latest available observations of the
	// stack's reconciliation state (e.g. "Ready", "DeleteFailed").
	//+optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:path=pulumistacks,scope=Namespaced
//+kubebuilder:printcolumn:name="Source",type=string,JSONPath=`.spec.source.name`
//+kubebuilder:printcolumn:name="Auth",type=string,JSONPath=`.spec.auth.name`
//+kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// PulumiStack is the Schema for the pulumistacks API.
type PulumiStack struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PulumiStackSpec   `json:"spec,omitempty"`
	Status PulumiStackStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// PulumiStackList contains a list of PulumiStack.
type PulumiStackList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PulumiStack `json:"items"`
}

func init() {
	SchemeBuilder.Register(&PulumiStack{}, &PulumiStackList{})
}
