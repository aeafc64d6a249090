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
	"fmt"
	"path/filepath"

	"github.com/apploc/apploc-cli/pkg/utils"
)

var ErrNotFound = fmt.Errorf("%s not found in this directory or any parent directory, run `apploc init` first", FileName)

// Find walks from startDir up to the filesystem root and returns the nearest
// directory containing FileName. Not finding one is not an error.
func Find(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}

	for {
		ok, err := utils.FileExists(filepath.Join(dir, FileName))
		if err != nil && !errors.Is(err, utils.ErrIsDirectory) {
			return "", false, err
		}
		if ok {
			return dir, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Locate is Find for callers that require a config: it returns the path to
// the config file or ErrNotFound.
func Locate(startDir string) (string, error) {
	dir, ok, err := Find(startDir)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotFound
	}

	return filepath.Join(dir, FileName), nil
}
