/*
 Copyright (c) 2025 Arenadata Softwer LLC.
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

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/apploc/apploc-cli/pkg/config"

	"github.com/bmizerany/assert"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of c and its subcommands to its default, so
// tests can run rootCmd more than once.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := execute(args, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"id", "secret", ageKeyFlag} {
		t.Setenv(envKey(key), "")
	}
}

func Test_execute(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"NoCommand", []string{}, 1, "Usage:", errNoCommand.Error()},
		{"UnknownCommand", []string{"bogus"}, 1, "", `unknown command "bogus"`},
		{"Help", []string{"help"}, 0, "update", ""},
		{"HelpFlag", []string{"--help"}, 0, "init", ""},
		{"Version", []string{"--version"}, 0, version, ""},
		{"InitExtraArgs", []string{"init", "extra"}, 1, "", "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			if !strings.Contains(stdout, tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantStdout)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
			if tt.wantCode != 0 && !strings.Contains(stderr, "Error: ") {
				t.Errorf("stderr = %q, want the error prefix", stderr)
			}
		})
	}
}

func Test_execute_UpdateWithoutConfig(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	if _, ok, _ := config.Find(dir); ok {
		t.Skip("config file present in an ancestor of the temp dir")
	}

	code, _, stderr := run(t, "update", "--dir", dir)
	assert.Equal(t, 1, code)
	assert.Equal(t, true, strings.Contains(stderr, "apploc init"))
}

func Test_execute_UpdateRejected(t *testing.T) {
	isolateEnv(t)
	srv := newAPIServer(t, "good-secret", helloProject)
	dir := t.TempDir()
	writeConfig(t, dir, &config.Config{ID: "project", Secret: "wrong-secret", Path: "locales.json"})

	code, _, stderr := run(t, "update", "--dir", dir, "--endpoint", srv.URL)
	assert.Equal(t, 1, code)
	assert.Equal(t, true, strings.Contains(stderr, "bad secret"))
}

func Test_execute_Update(t *testing.T) {
	isolateEnv(t)
	srv := newAPIServer(t, "good-secret", helloProject)
	dir := t.TempDir()
	writeConfig(t, dir, &config.Config{ID: "project", Secret: "good-secret", Path: "locales.json"})

	code, stdout, stderr := run(t, "update", "--dir", dir, "--endpoint", srv.URL)
	assert.Equal(t, 0, code)
	assert.Equal(t, "", stderr)
	assert.Equal(t, true, strings.Contains(stdout, "Updated"))
}
