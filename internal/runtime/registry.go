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

// Package runtime dispatches the dependency-install step the worker
// pipeline runs before invoking pulumi, keyed by the "runtime" field of
// the stack's Pulumi.yaml.
package runtime

import (
	"context"
	"sort"
	"sync"

	"github.com/stromee/pulumi-operator/internal/apperrors"
)

// Runtime installs a Pulumi program's dependencies ahead of "pulumi up".
type Runtime interface {
	// Name is the Pulumi.yaml "runtime" value this implementation handles.
	Name() string
	// Install resolves and installs the program's dependencies in workdir.
	Install(ctx context.Context, workdir string) error
}

var (
	mu       sync.RWMutex
	runtimes = map[string]Runtime{}
)

// Register makes a Runtime available by its Name(). Typically called from
// an init() function.
func Register(r Runtime) {
	mu.Lock()
	defer mu.Unlock()
	runtimes[r.Name()] = r
}

// Get returns the Runtime registered under name, or a ConfigMissing error
// naming the registered alternatives if name is unrecognized — the typed
// decision completing spec.md §9's "other runtimes are an explicit gap".
func Get(name string) (Runtime, error) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := runtimes[name]
	if !ok {
		return nil, apperrors.Newf(apperrors.ConfigMissing, "unknown pulumi runtime %q (available: %v)", name, names())
	}
	return r, nil
}

func names() []string {
	out := make([]string, 0, len(runtimes))
	for name := range runtimes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func init() {
	Register(nodejsRuntime{})
	Register(pythonRuntime{})
	Register(golangRuntime{})
	Register(dotnetRuntime{})
}
