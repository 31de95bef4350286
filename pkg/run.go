package pkg

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	sourceExt   = ".ts"
	markdownExt = ".md"
)

var (
	ErrInvalidExtension = errors.New("source_filepath must have .ts extension")
	ErrSourceMissing    = errors.New("source_filepath is required")
)

// Settings tells Run what to read and how to render it.
type Settings struct {
	Source       string
	Prefix       string
	ExportedOnly bool
}

// OutputPath returns markdown filename for source file.
func OutputPath(source string) string {
	return strings.TrimSuffix(source, sourceExt) + markdownExt
}

func validate(settings Settings) error {
	if settings.Source == "" {
		return ErrSourceMissing
	}
	if filepath.Ext(settings.Source) != sourceExt {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, settings.Source)
	}
	return nil
}

// Generate reads source file and returns it as markdown.
func Generate(settings Settings) (string, error) {
	if err := validate(settings); err != nil {
		return "", err
	}
	contents, err := os.ReadFile(settings.Source)
	if err != nil {
		err = fmt.Errorf("reading source failed: %w", err)
		slog.Error(err.Error(), "source", settings.Source)
		return "", err
	}
	prefix := settings.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	interfaces := NewParser(settings.ExportedOnly).CollectInterfaceMap(string(contents))
	slog.Debug("source parsed", "source", settings.Source, "interfaces", len(interfaces))
	return Render(interfaces, prefix)
}

// Run reads .ts source and writes .md output next to it.
// Existing output file is removed before new one is written.
func Run(settings Settings) error {
	content, err := Generate(settings)
	if err != nil {
		return err
	}
	output := OutputPath(settings.Source)
	if err = removeStale(output); err != nil {
		return err
	}
	if err = os.WriteFile(output, []byte(content), 0o644); err != nil {
		err = fmt.Errorf("writing output failed: %w", err)
		slog.Error(err.Error(), "output", output)
		return err
	}
	slog.Info("markdown written", "output", output)
	return nil
}

func removeStale(fname string) error {
	if !fileExists(fname) {
		return nil
	}
	if err := os.Remove(fname); err != nil && !errors.Is(err, fs.ErrNotExist) {
		err = fmt.Errorf("removing old output failed: %w", err)
		slog.Error(err.Error(), "output", fname)
		return err
	}
	return nil
}

func fileExists(fname string) bool {
	_, err := os.Stat(fname)
	return err == nil || !os.IsNotExist(err)
}
