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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmizerany/assert"
)

func mkTree(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func touchConfig(t *testing.T, dir string) {
	t.Helper()
	if err := Write(filepath.Join(dir, FileName), &Config{ID: "id", Secret: "s", Path: "l.json"}); err != nil {
		t.Fatal(err)
	}
}

func TestFind(t *testing.T) {
	root := mkTree(t, "a/b/c", "a/x")
	touchConfig(t, root)
	touchConfig(t, filepath.Join(root, "a", "b"))

	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"SameDir", "a/b", "a/b"},
		{"NearestAncestor", "a/b/c", "a/b"},
		{"OtherBranch", "a/x", ""},
		{"Root", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok, err := Find(filepath.Join(root, tt.start))
			assert.Equal(t, nil, err)
			assert.Equal(t, true, ok)
			assert.Equal(t, filepath.Join(root, tt.want), dir)
		})
	}
}

func TestFind_NotFound(t *testing.T) {
	root := mkTree(t, "a/b")

	// a config above the temp dir would shadow the result
	if _, ok, _ := Find(filepath.Dir(root)); ok {
		t.Skip("config file present in an ancestor of the temp dir")
	}

	dir, ok, err := Find(filepath.Join(root, "a", "b"))
	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)
	assert.Equal(t, "", dir)

	_, err = Locate(filepath.Join(root, "a"))
	assert.Equal(t, true, errors.Is(err, ErrNotFound))
}

func TestFind_DirectoryNamedLikeConfig(t *testing.T) {
	root := mkTree(t, "a/"+FileName)
	touchConfig(t, root)

	dir, ok, err := Find(filepath.Join(root, "a"))
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)
	assert.Equal(t, root, dir)
}

func TestLocate(t *testing.T) {
	root := mkTree(t, "a/b")
	touchConfig(t, root)

	file, err := Locate(filepath.Join(root, "a", "b"))
	assert.Equal(t, nil, err)
	assert.Equal(t, filepath.Join(root, FileName), file)
}
