package pathkit

import (
	"os"

	"github.com/google/uuid"

	"github.com/arthur-debert/pathkit/pkg/logging"
)

// Cwd returns the process working directory, or the empty path when it
// cannot be determined.
func Cwd() Path {
	wd, err := os.Getwd()
	if err != nil {
		return Path{}
	}
	return New(wd)
}

// SetCwd changes the process working directory. This is process-wide
// mutable state shared by every goroutine.
func SetCwd(p Path) error {
	return os.Chdir(p.raw)
}

// Chdir runs fn with the process working directory changed to the
// path, restoring the previous directory on every exit path, including
// errors and panics. Because the working directory is process-wide,
// Chdir must not be used from more than one goroutine at a time;
// callers needing that must serialize externally.
func (p Path) Chdir(fn func() error) error {
	previous, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := os.Chdir(p.raw); err != nil {
		return err
	}
	defer func() {
		if err := os.Chdir(previous); err != nil {
			logger := logging.GetLogger("pathkit.chdir")
			logger.Warn().
				Err(err).Str("path", previous).Msg("failed to restore working directory")
		}
	}()
	return fn()
}

// TempDir returns the system temporary directory as a Path.
func TempDir() Path {
	return New(os.TempDir())
}

// UniqueTemporary creates and returns a fresh, uniquely named directory
// under the system temporary directory.
func UniqueTemporary() (Path, error) {
	base := TempDir().JoinString("pathkit")
	if err := base.Mkpath(); err != nil {
		return Path{}, err
	}
	p := base.JoinString(uuid.NewString())
	if err := p.Mkdir(); err != nil {
		return Path{}, err
	}
	return p, nil
}
