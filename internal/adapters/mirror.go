package adapters

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"dkp-bootstrap/internal/ports"
)

type AssetMirrorAdapter struct{}

func NewAssetMirrorAdapter() AssetMirrorAdapter {
	return AssetMirrorAdapter{}
}

func (a AssetMirrorAdapter) SourceExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func (a AssetMirrorAdapter) CreatePlaceholder(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create placeholder directory").
			WithCause(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".gitkeep"), nil, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create placeholder marker").
			WithCause(err)
	}
	return nil
}

// Mirror replaces dest with an exact copy of src. The destination is
// removed first so files deleted from the source disappear from the
// mirror as well.
func (a AssetMirrorAdapter) Mirror(ctx context.Context, src string, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.RemoveAll(dest); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to clear mirror destination").
			WithCause(err)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create mirror destination").
			WithCause(err)
	}
	err := filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dest, rel)
		info, err := entry.Info()
		if err != nil {
			return err
		}
		switch {
		case entry.IsDir():
			return os.MkdirAll(target, info.Mode().Perm())
		case info.Mode()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			return copyFile(path, target, info.Mode().Perm())
		}
	})
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to mirror assets").
			WithCause(err)
	}
	return nil
}

func copyFile(src string, dest string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

var _ ports.AssetPort = AssetMirrorAdapter{}
