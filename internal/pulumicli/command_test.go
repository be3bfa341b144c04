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

package pulumicli

import (
	"reflect"
	"testing"
)

func TestLoginArgs(t *testing.T) {
	got := Login{URL: "s3://my-bucket"}.Args()
	want := []string{"login", "s3://my-bucket"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Login.Args() = %v, want %v", got, want)
	}
}

func TestUpArgsDefaults(t *testing.T) {
	got := Up{Stack: "demo"}.Args()
	want := []string{"up", "--refresh", "--stack", "demo", "--show-full-output"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Up{}.Args() = %v, want %v", got, want)
	}
}

func TestUpArgsEveryFlag(t *testing.T) {
	parallel := int32(4)
	noRefresh := false
	noShowFullOutput := false
	got := Up{
		Config:               "foo=bar",
		ConfigFile:           "Pulumi.dev.yaml",
		Debug:                true,
		Diff:                 true,
		ExpectNoChanges:      true,
		Message:              "release",
		Parallel:             &parallel,
		Refresh:              &noRefresh,
		SkipPreview:          true,
		Stack:                "demo",
		Yes:                  true,
		ShowConfig:           true,
		ShowFullOutput:       &noShowFullOutput,
		ShowReads:            true,
		ShowReplacementSteps: true,
		ShowSames:            true,
	}.Args()

	want := []string{
		"up",
		"--config", "foo=bar",
		"--config-file", "Pulumi.dev.yaml",
		"--debug",
		"--diff",
		"--expect-no-changes",
		"--message", "release",
		"--parallel", "4",
		"--skip-preview",
		"--stack", "demo",
		"--yes",
		"--show-config",
		"--show-reads",
		"--show-replacement-steps",
		"--show-sames",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Up{all fields}.Args() = %v, want %v", got, want)
	}
}

func TestUpArgsBooleanFlagsOmittedWhenFalse(t *testing.T) {
	got := Up{Stack: "demo"}.Args()
	for _, flag := range []string{"--debug", "--diff", "--expect-no-changes", "--skip-preview", "--yes", "--show-config", "--show-reads", "--show-replacement-steps", "--show-sames"} {
		for _, arg := range got {
			if arg == flag {
				t.Errorf("Up{}.Args() unexpectedly contains %s", flag)
			}
		}
	}
}

func TestDestroyArgs(t *testing.T) {
	got := Destroy{Stack: "demo", Yes: true}.Args()
	want := []string{"destroy", "--stack", "demo", "--yes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Destroy.Args() = %v, want %v", got, want)
	}
}

func TestCancelArgs(t *testing.T) {
	got := Cancel{Stack: "demo"}.Args()
	want := []string{"cancel", "--stack", "demo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cancel.Args() = %v, want %v", got, want)
	}
}

func TestCancelArgsNoStack(t *testing.T) {
	got := Cancel{}.Args()
	want := []string{"cancel"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cancel{}.Args() = %v, want %v", got, want)
	}
}
