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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// OciStackSourceSpec defines where to pull a stack's program source from,
// packaged as an OCI artifact.
type OciStackSourceSpec struct {
	// Url is the OCI repository reference, e.g. "ghcr.io/acme/infra".
	Url string `json:"url"`

	// Tag is the artifact tag to pull. Defaults to "latest".
	//+optional
	Tag string `json:"tag,omitempty"`
}

//+kubebuilder:object:root=true
//+kubebuilder:resource:path=ocistacksources,scope=Namespaced

// OciStackSource is the Schema for the ocistacksources API.
type OciStackSource struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec OciStackSourceSpec `json:"spec,omitempty"`
}

//+kubebuilder:object:root=true

// OciStackSourceList contains a list of OciStackSource.
type OciStackSourceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []OciStackSource `json:"items"`
}

//+kubebuilder:object:root=true
//+kubebuilder:resource:path=clusterocistacksources,scope=Cluster

// ClusterOciStackSource is the cluster-scoped counterpart to OciStackSource.
type ClusterOciStackSource struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec OciStackSourceSpec `json:"spec,omitempty"`
}

//+kubebuilder:object:root=true

// ClusterOciStackSourceList contains a list of ClusterOciStackSource.
type ClusterOciStackSourceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ClusterOciStackSource `json:"items"`
}

func init() {
	SchemeBuilder.Register(&OciStackSource{}, &OciStackSourceList{})
	SchemeBuilder.Register(&ClusterOciStackSource{}, &ClusterOciStackSourceList{})
}
