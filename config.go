// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".tradeflow.yaml"

type DataConfig struct {
	File      string `yaml:"file"`
	HasHeader bool   `yaml:"has_header"`
}

type ScanConfig struct {
	MatchLimit int `yaml:"match_limit"`
}

type LoadingConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type CacheConfig struct {
	ExpirationMinutes int `yaml:"expiration_minutes"`
}

type Config struct {
	Data  DataConfig    `yaml:"data"`
	Scan  ScanConfig    `yaml:"scan"`
	Load  LoadingConfig `yaml:"load"`
	Cache CacheConfig   `yaml:"cache"`
}

var defaultConfig = Config{
	Data: DataConfig{
		File:      "effects.csv",
		HasHeader: true,
	},
	Scan: ScanConfig{
		MatchLimit: 10,
	},
	Load: LoadingConfig{
		ShowProgress: true,
	},
	Cache: CacheConfig{
		ExpirationMinutes: 30,
	},
}

// CacheExpiration returns the lifetime of rendered records.
func (c *Config) CacheExpiration() time.Duration {
	if c.Cache.ExpirationMinutes <= 0 {
		return time.Duration(defaultConfig.Cache.ExpirationMinutes) * time.Minute
	}
	return time.Duration(c.Cache.ExpirationMinutes) * time.Minute
}

// LoadConfigFrom reads the configuration at configPath over the defaults.
// Settings missing from the file keep their default; a file that cannot
// be read or parsed yields the defaults.
func LoadConfigFrom(configPath string) *Config {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		config = defaultConfig
		return &config
	}

	if config.Data.File == "" {
		config.Data.File = defaultConfig.Data.File
	}
	return &config
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, err
	}
	return LoadConfigFrom(configPath), nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config := LoadConfigFrom(configPath)

	fmt.Printf("🔧 Tradeflow Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("📂 %sData:%s\n", Green, Reset)
	fmt.Printf("  • %sfile%s: %s\n", Green, Reset, config.Data.File)
	fmt.Printf("  • %shas_header%s: %s\n\n", Green, Reset, strconv.FormatBool(config.Data.HasHeader))

	fmt.Printf("🔍 %sScan:%s\n", Green, Reset)
	fmt.Printf("  • %smatch_limit%s: %d\n", Green, Reset, config.Scan.MatchLimit)
	fmt.Printf("    Records listed for the max/min value (0 lists all)\n\n")

	fmt.Printf("⏳ %sLoad:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_progress%s: %s\n\n", Green, Reset, strconv.FormatBool(config.Load.ShowProgress))

	fmt.Printf("🗄  %sCache:%s\n", Green, Reset)
	fmt.Printf("  • %sexpiration_minutes%s: %d\n\n", Green, Reset, config.Cache.ExpirationMinutes)

	fmt.Printf("💡 %sTo change a setting, edit %s%s\n", Info, configPath, Reset)
}
