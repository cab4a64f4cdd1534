package repository

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"resume-builder/internal/model"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// FileStore persists the collection as one JSON document on disk,
// optionally zstd-compressed. Writes go through a temp file and rename so a
// crash mid-save never leaves a truncated collection behind.
type FileStore struct {
	path     string
	compress bool
	encoder  *zstd.Encoder
	decoder  *zstd.Decoder
}

func NewFileStore(path string, compress bool) (*FileStore, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &FileStore{path: path, compress: compress, encoder: encoder, decoder: decoder}, nil
}

func (f *FileStore) Load(ctx context.Context) (RawCollection, error) {
	empty := RawCollection{Resumes: []map[string]interface{}{}}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, nil
		}
		return empty, err
	}

	// saved files may be compressed or plain regardless of the current
	// compress setting; the magic bytes decide
	if bytes.HasPrefix(data, zstdMagic) {
		data, err = f.decoder.DecodeAll(data, nil)
		if err != nil {
			return empty, fmt.Errorf("decompress collection: %w", err)
		}
	}

	var raw RawCollection
	if err := json.Unmarshal(data, &raw); err != nil {
		return empty, fmt.Errorf("parse collection: %w", err)
	}
	if raw.Resumes == nil {
		raw.Resumes = []map[string]interface{}{}
	}
	return raw, nil
}

func (f *FileStore) Save(ctx context.Context, c model.Collection) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if f.compress {
		data = f.encoder.EncodeAll(data, make([]byte, 0, len(data)/2))
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, f.path)
}
