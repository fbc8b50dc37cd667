// Package scanner finds answer sheets on disk.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/bank"
	"github.com/abdidvp/polaxis/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	".polaxis":     true,
}

// FileScanner expands paths into answer files by walking directories.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Expand returns files as given and replaces each directory with the
// answer files beneath it, sorted by path. Files in a directory whose
// extension no loader supports are skipped.
func (s *FileScanner) Expand(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			// Missing files are reported by the loader, per file.
			out = append(out, p)
			continue
		}
		found, err := s.scanDir(p)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func (s *FileScanner) scanDir(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, err := bank.FormatFor(path); err != nil {
			if errors.Is(err, domain.ErrUnsupportedFile) {
				return nil
			}
			return err
		}
		found = append(found, path)
		return nil
	})
	sort.Strings(found)
	return found, err
}
