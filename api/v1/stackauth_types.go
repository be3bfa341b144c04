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

// StackAuthSpec defines the Pulumi backend and credentials a stack deploys
// against.
type StackAuthSpec struct {
	// Backend is the Pulumi state backend URL, e.g. "file:///state",
	// "s3://my-bucket", or "https://app.pulumi.com".
	Backend string `json:"backend"`

	// BackendAuthSecret optionally names a Secret holding backend
	// credentials (AWS_ACCESS_KEY_ID, AWS_DEFAULT_REGION,
	// AWS_SECRET_ACCESS_KEY) exported into the worker's process
	// environment for the backend driver to pick up.
	//+optional
	BackendAuthSecret *corev1.LocalObjectReference `json:"backendAuthSecret,omitempty"`

	// AccessTokenSecret optionally names a Secret whose "token" key is
	// exported as PULUMI_CONFIG_PASSPHRASE.
	//+optional
	AccessTokenSecret *corev1.LocalObjectReference `json:"accessTokenSecret,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:resource:path=stackauths,scope=Namespaced

// StackAuth is the Schema for the stackauths API.
type StackAuth struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec StackAuthSpec `json:"spec,omitempty"`
}

//+kubebuilder:object:root=true

// StackAuthList contains a list of StackAuth.
type StackAuthList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []StackAuth `json:"items"`
}

//+kubebuilder:object:root=true
//+kubebuilder:resource:path=clusterstackauths,scope=Cluster

// ClusterStackAuth is the cluster-scoped counterpart to StackAuth.
type ClusterStackAuth struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec StackAuthSpec `json:"spec,omitempty"`
}

//+kubebuilder:object:root=true

// ClusterStackAuthList contains a list of ClusterStackAuth.
type ClusterStackAuthList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ClusterStackAuth `json:"items"`
}

func init() {
	SchemeBuilder.Register(&StackAuth{}, &StackAuthList{})
	SchemeBuilder.Register(&ClusterStackAuth{}, &ClusterStackAuthList{})
}
