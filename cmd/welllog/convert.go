package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// convertFunc converts one file's bytes, returning the output bytes.
type convertFunc func(name string, raw []byte) ([]byte, error)

// convertFiles runs fn over every input path, writing each result next to
// its input (or into outDir) with the extension swapped to outExt. Per-file
// status goes to w; the summary is returned.
func convertFiles(paths []string, outDir, outExt string, fn convertFunc, w io.Writer) BatchResult {
	var result BatchResult

	for _, path := range paths {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outName := base + outExt

		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", path, err)
			result.Failed++
			continue
		}

		out, err := fn(filepath.Base(path), raw)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", path, err)
			result.Failed++
			continue
		}

		dir := outDir
		if dir == "" {
			dir = filepath.Dir(path)
		} else if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", path, err)
			result.Failed++
			continue
		}

		outPath := filepath.Join(dir, outName)
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", path, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "converted: %s -> %s\n", path, outPath)
		result.Converted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}
