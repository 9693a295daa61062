package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aa89227/skillcat/pkg/logger"
	"github.com/aa89227/skillcat/pkg/presenter"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the catalog root and re-validate on changes",
	Long: `Continuously monitor the catalog root for file changes and reload the
catalog whenever plugins or skills are added, edited, or removed. Each
reload prints the plugin count and any rejected entries.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			presenter.Warning("Cancellation requested, shutting down...")
			cancel()
		}()

		debounceMs, _ := cmd.Flags().GetInt("debounce")
		if debounceMs < 0 {
			return errors.Errorf("debounce time cannot be negative: %d", debounceMs)
		}

		root := viper.GetString("root")
		return runWatch(ctx, root, time.Duration(debounceMs)*time.Millisecond)
	},
}

func runWatch(ctx context.Context, root string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	if err := watchTree(watcher, root); err != nil {
		return err
	}

	reload := func() {
		c, err := loadCatalog(ctx)
		if err != nil {
			presenter.Error(err, "Failed to reload catalog")
			return
		}
		for _, r := range c.Rejections() {
			presenter.Warning(r.String())
		}
		presenter.Info(fmt.Sprintf("%s: %d plugins loaded, %d entries rejected",
			time.Now().Format(time.TimeOnly), c.Len(), len(c.Rejections())))
	}

	reload()
	presenter.Info(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", root))

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.G(ctx).WithField("path", event.Name).WithField("op", event.Op.String()).Debug("file event")
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.G(ctx).WithError(err).Warn("watcher error")

		case <-timer.C:
			reload()
		}
	}
}

// watchTree registers the root and every subdirectory with the watcher
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "failed to walk %q", path)
		}
		if !entry.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return errors.Wrapf(err, "failed to watch %q", path)
		}
		return nil
	})
}

func init() {
	watchCmd.Flags().IntP("debounce", "d", 500, "Debounce time in milliseconds for file change events")
	rootCmd.AddCommand(watchCmd)
}
