// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the file and environment leave a setting empty.
const (
	DefaultListenAddr     = ":8080"
	DefaultContainer      = "evidencefiles"
	DefaultHTMLContainer  = "htmlcontent"
	DefaultPrimaryIndex   = "evidence"
	DefaultSecondaryIndex = "pdf-html"
)

// Config is the root application configuration.
type Config struct {
	Listen    ListenConfig    `yaml:"listen"`
	Storage   StorageConfig   `yaml:"storage"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Index     IndexConfig     `yaml:"index"`
}

// ListenConfig holds the HTTP server settings.
type ListenConfig struct {
	Addr string `yaml:"addr"`
}

// StorageConfig holds the blob store settings.
type StorageConfig struct {
	// Path is the directory backing the blob store.
	Path string `yaml:"path"`

	// Account is the storage account name used in generated blob URLs.
	Account string `yaml:"account"`

	// Container holds uploaded documents.
	Container string `yaml:"container"`

	// HTMLContainer holds scraped HTML bodies.
	HTMLContainer string `yaml:"html_container"`
}

// EmbeddingConfig holds embedding service settings. The API key should come
// from the environment, not the file.
type EmbeddingConfig struct {
	Host   string `yaml:"host"`
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// IndexConfig holds the search index settings.
type IndexConfig struct {
	// Path is the directory the indexes live under.
	Path string `yaml:"path"`

	// Primary is the main content index name.
	Primary string `yaml:"primary"`

	// Secondary is the PDF cross-check index name.
	Secondary string `yaml:"secondary"`
}

// Load reads the configuration from a YAML file, applies environment
// overrides and defaults, and validates it. A missing file is not an error;
// the environment alone can supply a full configuration.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides file values with EVIDEX_* environment variables.
func (c *Config) applyEnv() {
	overrideString(&c.Listen.Addr, "EVIDEX_LISTEN_ADDR")
	overrideString(&c.Storage.Path, "EVIDEX_STORAGE_PATH")
	overrideString(&c.Storage.Account, "EVIDEX_STORAGE_ACCOUNT")
	overrideString(&c.Storage.Container, "EVIDEX_STORAGE_CONTAINER")
	overrideString(&c.Storage.HTMLContainer, "EVIDEX_STORAGE_HTML_CONTAINER")
	overrideString(&c.Embedding.Host, "EVIDEX_EMBEDDING_HOST")
	overrideString(&c.Embedding.APIKey, "EVIDEX_EMBEDDING_API_KEY")
	overrideString(&c.Embedding.Model, "EVIDEX_EMBEDDING_MODEL")
	overrideString(&c.Index.Path, "EVIDEX_INDEX_PATH")
	overrideString(&c.Index.Primary, "EVIDEX_INDEX_PRIMARY")
	overrideString(&c.Index.Secondary, "EVIDEX_INDEX_SECONDARY")
}

func (c *Config) applyDefaults() {
	if c.Listen.Addr == "" {
		c.Listen.Addr = DefaultListenAddr
	}
	if c.Storage.Container == "" {
		c.Storage.Container = DefaultContainer
	}
	if c.Storage.HTMLContainer == "" {
		c.Storage.HTMLContainer = DefaultHTMLContainer
	}
	if c.Index.Primary == "" {
		c.Index.Primary = DefaultPrimaryIndex
	}
	if c.Index.Secondary == "" {
		c.Index.Secondary = DefaultSecondaryIndex
	}
}

// Validate reports the first required setting that has no value. Only the
// container names and index names carry defaults; everything else must be
// configured explicitly.
func (c *Config) Validate() error {
	required := []struct {
		value string
		name  string
	}{
		{c.Storage.Path, "storage.path"},
		{c.Storage.Account, "storage.account"},
		{c.Embedding.Host, "embedding.host"},
		{c.Embedding.APIKey, "embedding.api_key"},
		{c.Embedding.Model, "embedding.model"},
		{c.Index.Path, "index.path"},
	}

	for _, setting := range required {
		if setting.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingSetting, setting.name)
		}
	}
	return nil
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
