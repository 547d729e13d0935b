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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/git-tutor/tutor/internal/api"
	"github.com/git-tutor/tutor/internal/config"
	"github.com/git-tutor/tutor/internal/logging"
	"github.com/git-tutor/tutor/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP/WebSocket API server",
	Long: `Start the git-tutor API server: one in-memory session per browser
tab, commands dispatched over POST, state changes mirrored to every
subscriber of a session's WebSocket.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default: from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	backing, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	manager := api.NewManager(backing, log)
	server := api.New(manager, cfg, log)

	addr := fmt.Sprintf(":%d", cfg.Port)
	return server.ListenAndServe(addr)
}

// openStore picks the persistence backend named by cfg.Backend.
func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.Backend {
	case "sqlite":
		return store.NewSQLStore(cfg.DatabaseDSN)
	default:
		return store.NewFileStore(cfg.PersistPath), nil
	}
}
