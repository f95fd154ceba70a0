package dedup

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-hh-publisher/internal/logger"
)

// Store persists the sent-set. Load always reads the full state; nothing is
// cached between runs.
type Store interface {
	Load(ctx context.Context) (SentSet, error)
	Append(ctx context.Context, links, ids []string) error
}

// FileStore keeps one link per line and one id per line in two text files.
// It assumes a single writer.
type FileStore struct {
	linksPath string
	idsPath   string
}

func NewFileStore(linksPath, idsPath string) *FileStore {
	return &FileStore{
		linksPath: linksPath,
		idsPath:   idsPath,
	}
}

func (fs *FileStore) Load(ctx context.Context) (SentSet, error) {
	set := NewSentSet()
	if err := readLines(fs.linksPath, set.Links); err != nil {
		return SentSet{}, err
	}
	if err := readLines(fs.idsPath, set.IDs); err != nil {
		return SentSet{}, err
	}
	logger.Ctx(ctx).Info().
		Int("links", len(set.Links)).
		Int("ids", len(set.IDs)).
		Msg("📋 Loaded previously sent vacancies")
	return set, nil
}

func (fs *FileStore) Append(ctx context.Context, links, ids []string) error {
	if err := appendLines(fs.linksPath, links); err != nil {
		return err
	}
	if err := appendLines(fs.idsPath, ids); err != nil {
		return err
	}
	logger.Ctx(ctx).Debug().
		Strs("links", links).
		Strs("ids", ids).
		Msg("💾 Appended sent vacancies")
	return nil
}

// readLines adds every non-blank line of path to dst. A missing file is an
// empty set.
func readLines(path string, dst map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		dst[line] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func appendLines(path string, values []string) error {
	var b strings.Builder
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		b.WriteString(v)
		b.WriteByte('\n')
	}
	if b.Len() == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("append %s: %w", path, err)
	}
	return f.Close()
}
