package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dosco/mongopipe"
)

// watchCmd creates the watch command
func watchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "watch <file> ...",
		Short: "Watch pipeline documents and rebuild on change",
		Long: `Compile the given pipeline documents, then keep watching them and
recompile whenever one changes. A file whose compiled output is unchanged
is not printed again.`,
		Args: cobra.MinimumNArgs(1),
		Run:  cmdWatch,
	}
	c.Flags().StringSliceVar(&buildParams, "params", nil, "values for $1..$N placeholders")
	c.Flags().StringVar(&buildFormat, "format", "", "output format: relaxed or canonical")
	c.Flags().BoolVar(&buildIndent, "indent", false, "indent the output")
	return c
}

// cmdWatch is the handler for the watch command
func cmdWatch(cmd *cobra.Command, args []string) {
	setup(cpath)

	if !validOutputFormat(outputFormat()) {
		log.Fatalf("Unknown output format '%s'", outputFormat())
	}

	params := parseParams(buildParams)

	compiler, err := mongopipe.NewCompiler(conf.CacheSize)
	if err != nil {
		log.Fatalf("Failed to create compiler: %s", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("Failed to start watcher: %s", err)
	}
	defer watcher.Close() //nolint:errcheck

	// Editors often save by replacing the file, which drops a file-level
	// watch. Watching the parent directories keeps the events coming.
	watched := make(map[string]bool, len(args))
	dirs := make(map[string]bool)
	files := make([]string, 0, len(args))
	for _, fname := range args {
		abs, err := filepath.Abs(fname)
		if err != nil {
			log.Fatalf("Failed to resolve %s: %s", fname, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
		files = append(files, abs)
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			log.Fatalf("Failed to watch %s: %s", dir, err)
		}
	}

	prints := make(map[string]uint64, len(files))
	for _, fname := range files {
		buildAndPrint(compiler, fname, params, prints)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	log.Infof("Watching %d pipeline files", len(files))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			buildAndPrint(compiler, abs, params, prints)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("Watcher error: %s", err)

		case <-quit:
			log.Infof("Shutting down")
			return
		}
	}
}

// buildAndPrint compiles one file and prints it when its fingerprint changed
// since the last compile. Errors are reported and watching continues.
func buildAndPrint(compiler *mongopipe.Compiler, fname string, params []any, prints map[string]uint64) {
	plan, err := compileFile(compiler, fname, params)
	if err != nil {
		log.Errorf("Failed to build %s: %s", fname, err)
		return
	}
	if prints[fname] == plan.Fingerprint {
		return
	}
	prints[fname] = plan.Fingerprint

	out, err := renderPlan(plan)
	if err != nil {
		log.Errorf("Failed to render %s: %s", fname, err)
		return
	}
	log.Infof("Built %s (collection %s)", fname, plan.Collection)
	fmt.Println(string(out))
}
