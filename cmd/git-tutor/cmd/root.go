/*
Copyright (c) 2025 Git Tutor Contributors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package cmd implements the git-tutor command-line interface: a
// "serve" subcommand that runs the HTTP/WebSocket API, and a "repl"
// subcommand that runs the lesson engine directly in the terminal.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/git-tutor/tutor/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "git-tutor",
	Short: "An interactive Git tutorial engine",
	Long: `git-tutor teaches Git by simulating a repository entirely in memory:
no real commits, no real .git directory, just the same commands and
the same behavior, wrapped in a guided curriculum of lessons,
checkpoints and achievement badges.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a config.toml (default: XDG config dir)")
}

// loadConfig resolves the runtime Config the way internal/config.Load
// does, consulting the same TOML/.env/environment chain every
// subcommand needs, honoring --config when the user overrides the
// default XDG location.
func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}
	return config.Load()
}
