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

package secrets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apploc/apploc-cli/pkg/utils"

	"filippo.io/age"
	"filippo.io/age/armor"
)

const KeyFileName = "apploc.key"

var ErrNoKey = errors.New("no age key found")

type AgeCrypt struct {
	*age.X25519Identity
}

func NewAgeCrypt() (*AgeCrypt, error) {
	id, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, err
	}
	return &AgeCrypt{id}, nil
}

func NewAgeCryptFromString(s string) (*AgeCrypt, error) {
	id, err := age.ParseX25519Identity(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &AgeCrypt{id}, nil
}

// IsSealed reports whether v is an armored age message.
func IsSealed(v string) bool {
	return strings.HasPrefix(strings.TrimSpace(v), armor.Header)
}

func (c *AgeCrypt) Encrypt(data string) (string, error) {
	buf := new(bytes.Buffer)
	aw := armor.NewWriter(buf)

	w, err := age.Encrypt(aw, c.Recipient())
	if err != nil {
		return "", err
	}
	if _, err = w.Write([]byte(data)); err != nil {
		return "", err
	}
	if err = w.Close(); err != nil {
		return "", err
	}
	if err = aw.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (c *AgeCrypt) Decrypt(data string) (string, error) {
	ar := armor.NewReader(strings.NewReader(strings.TrimSpace(data)))

	r, err := age.Decrypt(ar, c)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, r); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// WriteKeyFile stores the private key in the age-keygen layout.
func (c *AgeCrypt) WriteKeyFile(path string) error {
	content := fmt.Sprintf("# public key: %s\n%s\n", c.Recipient(), c.String())
	return os.WriteFile(path, []byte(content), 0600)
}

func ReadKeyFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	key, ok := utils.FirstLine(string(b))
	if !ok {
		return "", ErrNoKey
	}

	return key, nil
}
