package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

// MaxFileSize caps every manifest, allow-list and front-matter read.
const MaxFileSize int64 = 1 << 20

// ErrFileTooLarge marks reads rejected for exceeding the size cap.
var ErrFileTooLarge = errors.New("file too large")

// ReadFileWithLimit reads path, refusing files larger than MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	return ReadCapped(path, MaxFileSize)
}

// ReadCapped reads at most limit bytes from path. Files over the limit fail
// with an error matching ErrFileTooLarge; the size check runs on the bytes
// actually read, so files that grow after Stat are still caught.
func ReadCapped(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > limit {
		return nil, tooLarge(path, limit)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(path, limit)
	}
	return data, nil
}

func tooLarge(path string, limit int64) error {
	return errors.Mark(errors.Newf("%s exceeds %d bytes", path, limit), ErrFileTooLarge)
}
