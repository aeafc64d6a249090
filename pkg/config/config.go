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
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const FileName = "apploc.config.json"

var (
	ErrMissingID     = errors.New("id is required")
	ErrMissingSecret = errors.New("secret is required")
	ErrMissingPath   = errors.New("path is required")
)

// Config is the project configuration stored in apploc.config.json.
// Path is relative to the directory holding the config file.
type Config struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
	Path   string `json:"path"`
}

func (c *Config) Validate() error {
	var result *multierror.Error
	if len(strings.TrimSpace(c.ID)) == 0 {
		result = multierror.Append(result, ErrMissingID)
	}
	if len(strings.TrimSpace(c.Secret)) == 0 {
		result = multierror.Append(result, ErrMissingSecret)
	}
	if len(strings.TrimSpace(c.Path)) == 0 {
		result = multierror.Append(result, ErrMissingPath)
	}

	return result.ErrorOrNil()
}

// OutputPath resolves the localization file path against configDir.
func (c *Config) OutputPath(configDir string) string {
	if filepath.IsAbs(c.Path) {
		return filepath.Clean(c.Path)
	}
	return filepath.Join(configDir, c.Path)
}

func Read(file string) (*Config, error) {
	fi, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fi.Close()

	conf := new(Config)
	if err = json.NewDecoder(fi).Decode(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

func Write(file string, conf *Config) error {
	b, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	return os.WriteFile(file, b, 0600)
}
