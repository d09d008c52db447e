package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hawkarabdulhaq/quakescope/internal/hub"
	"github.com/hawkarabdulhaq/quakescope/internal/server"
	"github.com/hawkarabdulhaq/quakescope/internal/watcher"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve [dataset]",
	Short: "Serve the overview report over HTTP with live reload",
	Long: `Serve the dataset overview as a JSON API with rendered chart images.
The dataset file is watched; whenever it changes the report is regenerated
and pushed to connected websocket clients.

Endpoints:
  GET /healthz      GET /api/report     GET /api/records
  GET /charts/...   GET /ws

Example:
  quakescope serve earthquakes.csv --port 8080`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "HTTP port (default: 8080)")
	rootCmd.AddCommand(serveCmd)
}

func portSetting() string {
	if servePort != "" {
		return servePort
	}
	if v := viper.GetString("port"); v != "" {
		return v
	}
	return "8080"
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nquakescope shutting down...")
		cancel()
	}()

	path := args[0]
	chartsDir := chartsDirSetting()

	// Initial report; a dataset that doesn't load is a startup error.
	rep, rs, err := generateOverview(path, chartsDir, "")
	if err != nil {
		return err
	}
	store := server.NewStore(rep, rs.Records)

	h := hub.New()
	defer h.Close()

	w, err := watcher.New([]string{path})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if len(w.Paths()) == 0 {
		return fmt.Errorf("dataset not found: %s", path)
	}

	go w.Start(ctx)
	go reloadLoop(w, path, chartsDir, store, h)

	fmt.Fprintf(os.Stderr, "quakescope serving %s on :%s\n", path, portSetting())

	srv := server.New(store, h, chartsDir, portSetting())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// reloadLoop regenerates the report on every dataset change. Reload
// failures keep the previous report live.
func reloadLoop(w *watcher.Watcher, path, chartsDir string, store *server.Store, h *hub.Hub) {
	for ev := range w.Events {
		if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
			// Editors often replace the file via rename; wait for it to
			// reappear and re-arm the watch.
			if !rearm(w, ev.Path) {
				continue
			}
		}

		rep, rs, err := generateOverview(path, chartsDir, "")
		if err != nil {
			log.Printf("reload failed, keeping previous report: %v", err)
			continue
		}

		store.Set(rep, rs.Records)
		h.Publish(rep)
		log.Printf("dataset reloaded: %d rows", rep.Rows)
	}
}

// rearm polls for a replaced file to reappear (up to 5 retries).
func rearm(w *watcher.Watcher, path string) bool {
	for i := 0; i < 5; i++ {
		time.Sleep(200 * time.Millisecond)
		if _, err := os.Stat(path); err == nil {
			if err := w.ReWatch(path); err != nil {
				log.Printf("cannot re-watch %s: %v", path, err)
				return false
			}
			return true
		}
	}
	log.Printf("gave up waiting for %s to reappear", path)
	return false
}
