// Package store reads and writes dataset files. Reads treat a missing file as
// an empty dataset; writes go through a temporary file in the destination
// directory and a rename, so the destination holds either the old or the new
// contents, never a partial write.
package store

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentstation/transitdata/pkg/constants"
	"github.com/agentstation/transitdata/pkg/dataset"
	"github.com/agentstation/transitdata/pkg/errors"
	"github.com/agentstation/transitdata/pkg/logging"
)

// Load reads the dataset at path. A missing file yields an empty dataset.
func Load(ctx context.Context, path string) (dataset.Dataset, error) {
	logger := logging.FromContext(ctx)

	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		logger.Debug().Str("file", path).Msg("Dataset file not found, starting empty")
		return dataset.Dataset{}, nil
	}
	if err != nil {
		return nil, errors.NewIOError("read", path, err)
	}

	ds, err := dataset.Decode(data)
	if err != nil {
		return nil, errors.WrapMalformed(path, err)
	}

	logger.Debug().Str("file", path).Int("records", len(ds)).Msg("Loaded dataset")
	return ds, nil
}

// LoadExisting is like Load but a missing file is an IOError.
func LoadExisting(ctx context.Context, path string) (dataset.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewIOError("read", path, err)
	}
	return Load(ctx, path)
}

// Save encodes ds with the given indentation and atomically replaces path.
// Encoding happens fully in memory first; nothing is written if it fails.
func Save(ctx context.Context, path string, ds dataset.Dataset, indent int) error {
	data, err := dataset.Marshal(ds, indent)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.NewIOError("write", path, err)
	}
	if err := WriteFile(path, data); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().
		Str("file", path).
		Int("records", len(ds)).
		Int("bytes", len(data)).
		Msg("Saved dataset")
	return nil
}

// ReadFile returns the raw contents of path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("read", path, err)
	}
	return data, nil
}

// WriteFile atomically replaces path with data. Permissions of an existing
// file are kept; new files get constants.FilePermissions.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	perm := os.FileMode(constants.FilePermissions)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.NewIOError("create", path, err)
	}
	tmpPath := tmp.Name()

	fail := func(op string, err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.NewIOError(op, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.NewIOError("write", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.NewIOError("rename", path, err)
	}

	// Best effort: persist the rename itself
	_ = syncDir(dir)
	return nil
}
