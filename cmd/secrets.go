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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apploc/apploc-cli/pkg/secrets"
	"github.com/apploc/apploc-cli/pkg/utils"

	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const ageKeyFlag = "age-key"

var (
	noAgeKeyProvided = errors.New("no age key provided")
)

// envKey maps a flag or field name to its environment variable,
// e.g. age-key -> APPLOC_AGE_KEY.
func envKey(key string) string {
	key = slug.Make(appName + "-" + key)
	key = strings.ToUpper(key)
	return strings.ReplaceAll(key, "-", "_")
}

// environment holds the variables of an optional .env file. Process
// environment variables take precedence over it.
type environment map[string]string

func loadEnvironment(dir string) (environment, error) {
	file := filepath.Join(dir, ".env")
	ok, err := utils.FileExists(file)
	if err != nil || !ok {
		return environment{}, err
	}

	env, err := godotenv.Read(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return env, nil
}

func (e environment) get(key string) string {
	name := envKey(key)
	if v := os.Getenv(name); len(v) > 0 {
		return v
	}
	return e[name]
}

func ageKeyFlags(cmd *cobra.Command, key string) {
	if len(key) == 0 {
		panic("age-key must not be empty")
	}

	fileKey := key + "-file"
	cmd.Flags().String(key, "", "Set private age key. Can be set by "+envKey(key)+" environment variable")
	cmd.Flags().String(fileKey, "", "Read private age key from file (default: "+secrets.KeyFileName+" next to the config file)")

	cmd.MarkFlagsMutuallyExclusive(key, fileKey)
}

func ageKeyFile(cmd *cobra.Command, key, dir string) string {
	file, _ := cmd.Flags().GetString(key + "-file")
	if len(file) == 0 {
		file = filepath.Join(dir, secrets.KeyFileName)
	}
	return file
}

func getAgeKey(cmd *cobra.Command, key, dir string, env environment) (string, error) {
	ageKey, _ := cmd.Flags().GetString(key)
	if len(ageKey) == 0 {
		ageKey = env.get(key)
	}

	fileKey := key + "-file"
	if len(ageKey) == 0 || cmd.Flags().Changed(fileKey) {
		keyFile := ageKeyFile(cmd, key, dir)
		isAgeKeyFileExists, err := utils.FileExists(keyFile)
		if err != nil {
			return "", err
		}
		if isAgeKeyFileExists {
			ageKey, err = secrets.ReadKeyFile(keyFile)
			if err != nil {
				return "", fmt.Errorf("read age key from file %q failed: %w", keyFile, err)
			}
		} else if cmd.Flags().Changed(fileKey) {
			return "", fmt.Errorf("age key file %q not found", keyFile)
		}
	}

	if len(ageKey) > 0 {
		return ageKey, nil
	}

	return "", noAgeKeyProvided
}

func readOrCreateNewAgeKey(cmd *cobra.Command, key, dir string, env environment) (*secrets.AgeCrypt, bool, error) {
	ageKey, err := getAgeKey(cmd, key, dir, env)
	if err != nil && !errors.Is(err, noAgeKeyProvided) {
		return nil, false, err
	} else if err == nil {
		cryptKey, err := secrets.NewAgeCryptFromString(ageKey)
		return cryptKey, false, err
	}

	cryptKey, err := secrets.NewAgeCrypt()
	return cryptKey, true, err
}

// unsealSecret returns secret as is unless it is an age message, which is
// decrypted with the configured key.
func unsealSecret(cmd *cobra.Command, secret, dir string, env environment) (string, error) {
	if !secrets.IsSealed(secret) {
		return secret, nil
	}

	ageKey, err := getAgeKey(cmd, ageKeyFlag, dir, env)
	if err != nil {
		return "", fmt.Errorf("secret is encrypted: %w", err)
	}

	cryptKey, err := secrets.NewAgeCryptFromString(ageKey)
	if err != nil {
		return "", fmt.Errorf("parse age key: %w", err)
	}

	plain, err := cryptKey.Decrypt(secret)
	if err != nil {
		return "", fmt.Errorf("decrypt secret: %w", err)
	}
	return plain, nil
}
