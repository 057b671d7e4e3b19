package console

import (
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/GofMan5/Antigravity-Manager/internal/config"
)

// systemClipboard writes through the OS clipboard
type systemClipboard struct{}

// NewSystemClipboard creates the production clipboard capability
func NewSystemClipboard() Clipboard {
	return &systemClipboard{}
}

func (systemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// dirFileWriter writes export files into a fixed directory
type dirFileWriter struct {
	dir string
}

// NewDirFileWriter creates the production file-write capability rooted at
// the configured export directory
func NewDirFileWriter(cfg *config.Config) FileWriter {
	return &dirFileWriter{dir: cfg.Export.Dir}
}

func (w *dirFileWriter) Write(name string, data []byte) error {
	return os.WriteFile(filepath.Join(w.dir, name), data, 0o644)
}
