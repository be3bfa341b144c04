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

package worker

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stromee/pulumi-operator/internal/apperrors"
)

// projectFile mirrors just the corner of Pulumi.yaml this pipeline needs:
// the runtime name. Upstream Pulumi.yaml allows "runtime: nodejs" or
// "runtime: {name: nodejs, options: {...}}"; runtimeField accepts both.
type projectFile struct {
	Runtime runtimeField `yaml:"runtime"`
}

type runtimeField struct {
	Name string
}

// UnmarshalYAML accepts either a scalar runtime name or a mapping with a
// "name" key, matching the two forms Pulumi.yaml permits.
func (r *runtimeField) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&r.Name)
	}
	var named struct {
		Name string `yaml:"name"`
	}
	if err := value.Decode(&named); err != nil {
		return err
	}
	r.Name = named.Name
	return nil
}

// readRuntime parses <workdir>/Pulumi.yaml and returns its runtime name.
func readRuntime(workdir string) (string, error) {
	path := filepath.Join(workdir, "Pulumi.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ConfigMissing, "read "+path)
	}

	var proj projectFile
	if err := yaml.Unmarshal(data, &proj); err != nil {
		return "", apperrors.Wrap(err, apperrors.ConfigMissing, "parse "+path)
	}
	if proj.Runtime.Name == "" {
		return "", apperrors.Newf(apperrors.ConfigMissing, "%s has no runtime field", path)
	}
	return proj.Runtime.Name, nil
}
