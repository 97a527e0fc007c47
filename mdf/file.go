package mdf

import (
	"fmt"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to the original filename during the replace.
const BackupSuffix = ".BAK"

// FileResult extends Result with the paths a PatchFile run produced.
type FileResult struct {
	Result
	Path       string
	BackupPath string
}

// PatchFile rewrites the codeplug at path. The patched content is written to
// a temporary file in the same directory, then the original is renamed to
// path+".BAK" and the temporary file takes the original name. Keeping the
// temp file in the same directory keeps both renames on one filesystem, and
// backing up before publishing means the original content survives an
// interruption between the two steps. Nothing on disk is touched unless the
// in-memory result verified.
func PatchFile(path string, cfg Config) (FileResult, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return FileResult{}, err
	}
	res := FileResult{Path: path}

	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return res, fmt.Errorf("%w: %s", ErrorFileNotFound, path)
		}
		return res, err
	}

	fixed, pres, err := Patch(buf, cfg)
	res.Result = pres
	if err != nil {
		return res, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".mdfpatch-*")
	if err != nil {
		return res, err
	}
	if _, err := tmp.Write(fixed); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return res, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return res, err
	}

	backup := path + BackupSuffix
	cfg.log(0, "Renaming %s to %s", path, backup)
	if err := os.Rename(path, backup); err != nil {
		os.Remove(tmp.Name())
		return res, err
	}

	cfg.log(0, "Renaming temp file to %s", path)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return res, err
	}

	res.BackupPath = backup
	return res, nil
}

// RestoreFile undoes a patch by moving path+".BAK" back over the patched
// file. Returns the backup path that was restored.
func RestoreFile(path string) (string, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	backup := path + BackupSuffix
	if _, err := os.Stat(backup); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrorNoBackup, backup)
		}
		return "", err
	}

	return backup, os.Rename(backup, path)
}

// ChecksumFile returns the additive checksum and size of the file at path.
func ChecksumFile(path string) (uint16, int, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, fmt.Errorf("%w: %s", ErrorFileNotFound, path)
		}
		return 0, 0, err
	}

	return Checksum(buf), len(buf), nil
}
