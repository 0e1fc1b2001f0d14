// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuanpeiyu/SmaliEx/data/dalvik"
	"github.com/yuanpeiyu/SmaliEx/logging"
	"github.com/yuanpeiyu/SmaliEx/protocol"
)

// Local holds the per-user settings of the opcode tools. It is loaded from
// ConfigFilename in the config directory, with defaults for anything the
// file leaves out.
type Local struct {
	// Version tracks the current version of the defaults so we can migrate old -> new
	Version uint32

	// APILevel is the platform API level opcode tables are built for.
	APILevel int

	// OatVersion overrides the oat version; 0 uses the default for APILevel.
	OatVersion int

	// Experimental makes experimental opcodes visible.
	Experimental bool

	// BaseLoggerDebugLevel is the logging.Level of the base logger.
	BaseLoggerDebugLevel uint32

	// EnableDeadlockDetection turns on go-deadlock's lock order checking.
	EnableDeadlockDetection bool
}

// ConfigFilename is the name of the config file in the config directory
const ConfigFilename = "config.json"

var defaultLocal = Local{
	Version:                 1,
	APILevel:                dalvik.DefaultAPILevel,
	OatVersion:              0,
	Experimental:            false,
	BaseLoggerDebugLevel:    uint32(logging.Warn),
	EnableDeadlockDetection: DefaultDeadlock == "enable",
}

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	return defaultLocal
}

// LoadConfigFromDisk returns a Local config structure based on merging the defaults
// with settings loaded from the config file from the custom dir. If the custom file
// cannot be loaded, the default config is returned (with the error from loading the
// custom file).
func LoadConfigFromDisk(custom string) (Local, error) {
	return LoadConfigFromFile(filepath.Join(custom, ConfigFilename))
}

// LoadConfigFromFile is LoadConfigFromDisk for an explicit file path.
func LoadConfigFromFile(configFile string) (Local, error) {
	c, err := mergeConfigFromFile(configFile, defaultLocal)
	if err != nil {
		return defaultLocal, err
	}
	if err = c.Validate(); err != nil {
		return defaultLocal, fmt.Errorf("%s: %w", configFile, err)
	}
	return c, nil
}

func mergeConfigFromFile(configpath string, source Local) (Local, error) {
	f, err := os.Open(configpath)
	if err != nil {
		return source, err
	}
	defer f.Close()

	err = protocol.NewJSONDecoder(f).Decode(&source)
	return source, err
}

// Validate reports settings that cannot form a packed version.
func (cfg Local) Validate() error {
	if cfg.APILevel < 0 || cfg.APILevel > dalvik.MaxAPILevel {
		return fmt.Errorf("APILevel %d out of range [0, %d]", cfg.APILevel, dalvik.MaxAPILevel)
	}
	if cfg.OatVersion < 0 || cfg.OatVersion > 0xFFFF {
		return fmt.Errorf("OatVersion %d out of range [0, %d]", cfg.OatVersion, 0xFFFF)
	}
	if cfg.BaseLoggerDebugLevel > uint32(logging.Debug) {
		return fmt.Errorf("BaseLoggerDebugLevel %d out of range [0, %d]", cfg.BaseLoggerDebugLevel, logging.Debug)
	}
	return nil
}

// DalvikVersion is the opcode table version these settings select.
func (cfg Local) DalvikVersion() dalvik.Version {
	return dalvik.MakeVersion(cfg.APILevel, cfg.OatVersion)
}

// LogLevel is BaseLoggerDebugLevel as a logging.Level.
func (cfg Local) LogLevel() logging.Level {
	return logging.Level(cfg.BaseLoggerDebugLevel)
}

// SaveToDisk writes the Local settings into a root/ConfigFilename file
func (cfg Local) SaveToDisk(root string) error {
	configpath := filepath.Join(root, ConfigFilename)
	filename := os.ExpandEnv(configpath)
	return cfg.SaveToFile(filename)
}

// SaveToFile saves the config to a specific filename, allowing overriding the default name
func (cfg Local) SaveToFile(filename string) error {
	return os.WriteFile(filename, protocol.EncodeJSON(cfg), 0644)
}
