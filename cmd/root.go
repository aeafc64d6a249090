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
	"io"
	"os"
	"path"
	"path/filepath"
	goruntime "runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const appName = "apploc"

var version = "1.0.0-dev"

var errNoCommand = errors.New("no command given")

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Keep local localization files in sync with AppLoc",
	Long: `apploc downloads the translations of an AppLoc project and stores them
in a local localization file, grouped by locale.
- init creates apploc.config.json in the current directory
- update finds the nearest apploc.config.json and refreshes the file it points to`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if getBool(cmd, "version") {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		}

		_ = cmd.Usage()
		return errNoCommand
	},
}

func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}

	return 0
}

func init() {
	var verbose bool
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})

	log.SetReportCaller(true)
	formatter := &log.TextFormatter{
		TimestampFormat:        "20060102150405",
		FullTimestamp:          true,
		DisableLevelTruncation: true,
		CallerPrettyfier: func(f *goruntime.Frame) (string, string) {
			return "", fmt.Sprintf(" %s:%d", path.Base(f.File), f.Line)
		},
	}
	log.SetFormatter(formatter)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose mode")
	rootCmd.Flags().Bool("version", false, "Print the version and exit")
}

func getBool(cmd *cobra.Command, key string) bool {
	ok, _ := cmd.Flags().GetBool(key)
	return ok
}

func dirFlags(cmd *cobra.Command, usage string) {
	cmd.Flags().StringP("dir", "C", "", usage)
}

// workDir returns the --dir flag as an absolute path, the working directory
// when it is unset.
func workDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if len(dir) == 0 {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}
