package gtkcss

import (
	"fmt"

	"go.uber.org/zap"

	gtk "github.com/yacobolo/gtkcss/internal/gtkcss"
)

// Tree parses a stylesheet and renders its node tree. When inline is set
// the gtk inliner runs first, showing what build would emit for the file.
func Tree(path string, inline bool, log *zap.Logger) (string, error) {
	sheet, err := gtk.NewParser(log).ParseFile(path)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}
	if inline {
		gtk.NewProcessor(log, gtk.Inliner{}).Process(sheet)
	}
	return gtk.Dump(sheet), nil
}
