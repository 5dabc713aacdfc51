package artifact

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
)

// CollectContext concatenates every readable text file under the context root
// with a path header per file. Inclusion is best-effort: unreadable files are
// logged and skipped, and a missing root yields an empty string.
func (s *Store) CollectContext() string {
	root := filepath.Join(s.root, "context")
	if _, err := os.Stat(root); err != nil {
		return ""
	}

	var b strings.Builder
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			contract.LogWarn("Skipping context entry "+path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			contract.LogWarn("Skipping unreadable context file "+path, err)
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			rel = path
		}
		b.WriteString("## " + rel + "\n\n")
		b.Write(data)
		b.WriteString("\n\n")
		return nil
	})
	if err != nil {
		contract.LogWarn("Context collection incomplete", err)
	}
	return b.String()
}
