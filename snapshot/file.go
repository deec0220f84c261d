package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// FileStore keeps every snapshot as a json file in Dir.
type FileStore struct {
	Dir string
}

var _ Store = FileStore{}

func (s FileStore) path(name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}

	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", eris.Errorf("snapshot name %q must not contain a path", name)
	}

	return filepath.Join(s.Dir, name+".json"), nil
}

// Save replaces the snapshot atomically by writing a temporary file first.
func (s FileStore) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return eris.Wrapf(err, "save snapshot %q", name)
	}

	target, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return eris.Wrapf(err, "create snapshot directory %q", s.Dir)
	}

	tmp, err := os.CreateTemp(s.Dir, "."+name+".*.tmp")
	if err != nil {
		return eris.Wrap(err, "create temporary snapshot")
	}

	// no-op once the rename succeeded
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return eris.Wrap(err, "write snapshot")
	}

	if err := tmp.Close(); err != nil {
		return eris.Wrap(err, "close snapshot")
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return eris.Wrapf(err, "rename snapshot to %q", target)
	}

	return nil
}

func (s FileStore) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrapf(err, "load snapshot %q", name)
	}

	target, err := s.path(name)
	if err != nil {
		return nil, err
	}

	bz, err := os.ReadFile(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrapf(ErrNotFound, "file %q", target)
	}

	if err != nil {
		return nil, eris.Wrapf(err, "read snapshot %q", target)
	}

	return bz, nil
}
