package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/nodeui/internal/debug"
	"github.com/grindlemire/nodeui/internal/scene"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path...]",
		Short: "Validate scene files without computing",
		Long: `Validate scene files and build their trees without running the layout pass.

Paths may be files, directories (non-recursive) or a "dir/..." pattern.
With no paths the current directory is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, a, args)
		},
	}
}

// runCheck implements the check subcommand.
// Every file is checked; failures are reported and counted.
func runCheck(cmd *cobra.Command, a *app, paths []string) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectSceneFiles(paths)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no scene files found")
	}

	a.logger.Debug("checking scene files", zap.Int("count", len(files)))

	var errorCount int
	for _, path := range files {
		if err := checkFile(path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			errorCount++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

// checkFile loads a scene and builds its tree.
func checkFile(path string) error {
	doc, err := scene.Load(path)
	if err != nil {
		return err
	}
	debug.Log("checking scene %q from %s: %d nodes", doc.Name, path, len(doc.Nodes))
	_, err = doc.Build()
	return err
}

func isSceneFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// collectSceneFiles expands check arguments into scene file paths, keeping
// argument order. An argument is a file (taken as is), a directory (its
// scene files, one level deep) or a tree pattern ending in "..." (every
// scene file below the prefix).
func collectSceneFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		var found []string
		var err error
		if root, ok := treeRoot(arg); ok {
			found, err = walkScenes(root)
		} else {
			found, err = statScenes(arg)
		}
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

// treeRoot reports whether arg is a "dir/..." pattern and returns dir.
func treeRoot(arg string) (string, bool) {
	if arg != "..." && !strings.HasSuffix(arg, "/...") {
		return "", false
	}
	root := strings.TrimSuffix(strings.TrimSuffix(arg, "..."), "/")
	if root == "" {
		root = "."
	}
	return root, true
}

func walkScenes(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && isSceneFile(p) {
			found = append(found, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return found, nil
}

func statScenes(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", arg, err)
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}

	entries, err := os.ReadDir(arg)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", arg, err)
	}
	var found []string
	for _, e := range entries {
		if e.Type().IsRegular() && isSceneFile(e.Name()) {
			found = append(found, filepath.Join(arg, e.Name()))
		}
	}
	return found, nil
}
