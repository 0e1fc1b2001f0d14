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

package main

import (
	"fmt"
	"os"

	"github.com/algorand/go-deadlock"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/yuanpeiyu/SmaliEx/config"
	"github.com/yuanpeiyu/SmaliEx/data/dalvik"
	"github.com/yuanpeiyu/SmaliEx/logging"
)

var (
	versionCheck bool
	configDir    string
	apiLevelArg  string
	oatVersion   int
	experimental bool
	debugLogging bool
)

var rootCmd = &cobra.Command{
	Use:   "opdoc",
	Short: "Inspect the dalvik opcode tables for a platform version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionCheck {
			fmt.Println(config.FormatVersion())
			return
		}
		// If no arguments passed, we should fallback to help
		cmd.HelpFunc()(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(resolveCmd)

	rootCmd.Flags().BoolVarP(&versionCheck, "version", "v", false, "Display current build version and exit")
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "Directory holding "+config.ConfigFilename)
	rootCmd.PersistentFlags().StringVarP(&apiLevelArg, "api", "a", "", "API level, as a number or a release name such as M")
	rootCmd.PersistentFlags().IntVarP(&oatVersion, "oat", "o", 0, "Oat version; 0 uses the default for the API level")
	rootCmd.PersistentFlags().BoolVarP(&experimental, "experimental", "x", false, "Include experimental opcodes")
	rootCmd.PersistentFlags().BoolVarP(&debugLogging, "debug", "d", false, "Enable debug logging")
}

// loadSettings merges the config file (if any) with the flags the user set.
func loadSettings(cmd *cobra.Command) (config.Local, error) {
	cfg := config.GetDefaultLocal()
	if configDir != "" {
		var err error
		cfg, err = config.LoadConfigFromDisk(configDir)
		if err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("api") {
		api, err := dalvik.ParseAPILevel(apiLevelArg)
		if err != nil {
			return cfg, err
		}
		cfg.APILevel = api
	}
	if flags.Changed("oat") {
		cfg.OatVersion = oatVersion
	}
	if flags.Changed("experimental") {
		cfg.Experimental = experimental
	}
	if debugLogging {
		cfg.BaseLoggerDebugLevel = uint32(logging.Debug)
	}
	return cfg, cfg.Validate()
}

// opcodesFromSettings applies the process-wide settings and returns the
// opcode tables they select.
func opcodesFromSettings(cmd *cobra.Command) *dalvik.Opcodes {
	cfg, err := loadSettings(cmd)
	if err != nil {
		reportErrorf("Cannot load settings: %v", err)
	}
	deadlock.Opts.Disable = !cfg.EnableDeadlockDetection
	log := logging.Base()
	log.SetLevel(cfg.LogLevel())
	log.With("config", configDir).Debugf("using %s experimental=%v", cfg.DalvikVersion(), cfg.Experimental)
	return dalvik.ForVersion(cfg.DalvikVersion(), cfg.Experimental)
}

func reportErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	// Hidden command to generate docs in a given directory
	// opdoc generate-docs [path]
	if len(os.Args) == 3 && os.Args[1] == "generate-docs" {
		err := doc.GenMarkdownTree(rootCmd, os.Args[2])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
