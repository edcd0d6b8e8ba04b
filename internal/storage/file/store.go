// Package file stores state blobs as files in a directory, optionally
// compressed with zstd or lz4.
package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type Codec string

const (
	CodecNone Codec = "none"
	CodecZstd Codec = "zstd"
	CodecLZ4  Codec = "lz4"
)

var ErrInvalidKey = errors.New("invalid key")

var validKey = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

type FileStateStore struct {
	dir   string
	codec Codec
}

func NewFileStateStore(dir string, codec Codec) (*FileStateStore, error) {
	switch codec {
	case "":
		codec = CodecNone
	case CodecNone, CodecZstd, CodecLZ4:
	default:
		return nil, fmt.Errorf("unknown codec %q", codec)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStateStore{dir: dir, codec: codec}, nil
}

// Path returns the file holding key.
func (s *FileStateStore) Path(key string) string {
	name := key + ".json"
	switch s.codec {
	case CodecZstd:
		name += ".zst"
	case CodecLZ4:
		name += ".lz4"
	}
	return filepath.Join(s.dir, name)
}

func (s *FileStateStore) Get(ctx context.Context, key string) (string, bool, error) {
	if !validKey.MatchString(key) {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	plain, err := s.decode(data)
	if err != nil {
		return "", false, fmt.Errorf("decode %s: %w", key, err)
	}
	return string(plain), true, nil
}

// Set writes to a temporary file first and renames it over the old one.
func (s *FileStateStore) Set(ctx context.Context, key, value string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	data, err := s.encode([]byte(value))
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path(key))
}

func (s *FileStateStore) encode(plain []byte) ([]byte, error) {
	switch s.codec {
	case CodecZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(plain, nil), nil
	case CodecLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(plain); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return plain, nil
	}
}

func (s *FileStateStore) decode(data []byte) ([]byte, error) {
	switch s.codec {
	case CodecZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case CodecLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return data, nil
	}
}

var _ interfaces.StateStore = (*FileStateStore)(nil)
