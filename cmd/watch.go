package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prooflab/stepcheck/check"
	"github.com/prooflab/stepcheck/formatter"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-check proof documents whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		checker, err := check.New(cfgFile, logger)
		if err != nil {
			logger.Fatal("Failed to initialize checker", zap.Error(err))
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		defer watcher.Close()

		for _, path := range args {
			if err := addWatchTargets(watcher, path); err != nil {
				logger.Fatal("Error adding path to watcher", zap.Error(err))
			}
		}

		fmt.Println("watching for changes... (ctrl-c to stop)")
		watchLoop(watcher, checker)
	},
}

func addWatchTargets(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		return watcher.Add(path)
	}
	return filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}

func watchLoop(watcher *fsnotify.Watcher, checker *check.Checker) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			handleFileEvent(event, checker)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func handleFileEvent(event fsnotify.Event, checker *check.Checker) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
		return
	}
	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)

	doc, err := check.LoadDocument(event.Name)
	if err != nil {
		logger.Error("Error loading proof document", zap.String("path", event.Name), zap.Error(err))
		return
	}
	results, err := checker.CheckDocument(doc)
	if err != nil {
		logger.Error("Error checking proof document", zap.String("path", event.Name), zap.Error(err))
		return
	}
	fmt.Print(formatter.Format([]check.FileResult{{Path: event.Name, Results: results}}))
}
