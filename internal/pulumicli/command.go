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

// Package pulumicli wraps the pulumi binary: command construction and
// subprocess supervision with line-by-line stdout/stderr logging.
package pulumicli

import "strconv"

// Command renders itself into the argv pulumi should be invoked with.
type Command interface {
	Args() []string
}

// Login runs "pulumi login <url>".
type Login struct {
	URL string
}

// Args implements Command.
func (c Login) Args() []string { return []string{"login", c.URL} }

// Up runs "pulumi up" with the recognized flag set from SPEC_FULL.md §4.8.
// String fields and Parallel render only when set ("Option<T>" in the spec
// language); plain bool fields render their flag only when true. Refresh
// and ShowFullOutput default to true: their flag renders when the pointer
// is nil or points to true.
type Up struct {
	Config                string
	ConfigFile             string
	Debug                  bool
	Diff                   bool
	ExpectNoChanges        bool
	Message                string
	Parallel               *int32
	Refresh                *bool
	SkipPreview            bool
	Stack                  string
	Yes                    bool
	ShowConfig             bool
	ShowFullOutput         *bool
	ShowReads              bool
	ShowReplacementSteps   bool
	ShowSames              bool
}

// Args implements Command.
func (c Up) Args() []string {
	args := []string{"up"}
	if c.Config != "" {
		args = append(args, "--config", c.Config)
	}
	if c.ConfigFile != "" {
		args = append(args, "--config-file", c.ConfigFile)
	}
	if c.Debug {
		args = append(args, "--debug")
	}
	if c.Diff {
		args = append(args, "--diff")
	}
	if c.ExpectNoChanges {
		args = append(args, "--expect-no-changes")
	}
	if c.Message != "" {
		args = append(args, "--message", c.Message)
	}
	if c.Parallel != nil {
		args = append(args, "--parallel", strconv.Itoa(int(*c.Parallel)))
	}
	refresh := true
	if c.Refresh != nil {
		refresh = *c.Refresh
	}
	if refresh {
		args = append(args, "--refresh")
	}
	if c.SkipPreview {
		args = append(args, "--skip-preview")
	}
	if c.Stack != "" {
		args = append(args, "--stack", c.Stack)
	}
	if c.Yes {
		args = append(args, "--yes")
	}
	if c.ShowConfig {
		args = append(args, "--show-config")
	}
	showFullOutput := true
	if c.ShowFullOutput != nil {
		showFullOutput = *c.ShowFullOutput
	}
	if showFullOutput {
		args = append(args, "--show-full-output")
	}
	if c.ShowReads {
		args = append(args, "--show-reads")
	}
	if c.ShowReplacementSteps {
		args = append(args, "--show-replacement-steps")
	}
	if c.ShowSames {
		args = append(args, "--show-sames")
	}
	return args
}

// Destroy runs "pulumi destroy".
type Destroy struct {
	Stack       string
	Yes         bool
	SkipPreview bool
}

// Args implements Command.
func (c Destroy) Args() []string {
	args := []string{"destroy"}
	if c.Stack != "" {
		args = append(args, "--stack", c.Stack)
	}
	if c.Yes {
		args = append(args, "--yes")
	}
	if c.SkipPreview {
		args = append(args, "--skip-preview")
	}
	return args
}

// Cancel runs "pulumi cancel".
type Cancel struct {
	Stack string
}

// Args implements Command.
func (c Cancel) Args() []string {
	args := []string{"cancel"}
	if c.Stack != "" {
		args = append(args, "--stack", c.Stack)
	}
	return args
}
