package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// FileResult bundles the per-line verdicts of one proof file.
type FileResult struct {
	Path    string
	Results []LineResult
}

// InvalidCount returns how many lines were rejected.
func (f FileResult) InvalidCount() int {
	n := 0
	for _, r := range f.Results {
		if !r.Report.IsValid() {
			n++
		}
	}
	return n
}

// ProcessFiles checks every proof file in the given paths. Directories
// are walked for proof documents; files are taken as-is.
func ProcessFiles(ctx context.Context, logger *zap.Logger, checker *Checker, paths []string) ([]FileResult, error) {
	var all []FileResult
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, checker, path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, results...)
	}
	return all, nil
}

// ProcessPath checks one file or every proof document under a directory,
// fanning out across CPUs with a progress bar for directory runs.
func ProcessPath(ctx context.Context, logger *zap.Logger, checker *Checker, path string) ([]FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, fmt.Errorf("%s is not a proof document", path)
		}
		result, err := processFile(checker, path)
		if err != nil {
			return nil, err
		}
		return []FileResult{result}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	bar := progressbar.Default(int64(len(files)), "checking proofs")

	resultChan := make(chan FileResult, len(files))
	errorChan := make(chan error, len(files))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	var wg sync.WaitGroup
	for _, file := range files {
		wg.Add(1)
		go func(file string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			select {
			case <-ctx.Done():
				errorChan <- ctx.Err()
				return
			default:
			}

			result, err := processFile(checker, file)
			if err != nil {
				errorChan <- err
				return
			}
			resultChan <- result
			_ = bar.Add(1)
		}(file)
	}

	wg.Wait()
	close(resultChan)
	close(errorChan)

	if err := <-errorChan; err != nil {
		return nil, err
	}

	results := make([]FileResult, 0, len(files))
	for result := range resultChan {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	return results, nil
}

func processFile(checker *Checker, path string) (FileResult, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return FileResult{}, err
	}
	results, err := checker.CheckDocument(doc)
	if err != nil {
		return FileResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return FileResult{Path: path, Results: results}, nil
}

func hasDesiredExtension(path string) bool {
	return filepath.Ext(path) == ".yaml" || filepath.Ext(path) == ".yml"
}
