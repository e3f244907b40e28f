package io

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

// checksumFile returns the hex-encoded BLAKE3 checksum of a file's content.
func (i *Handler) checksumFile(ctx context.Context, path string) (string, error) {
	f, err := i.osHandler.Open(path)
	if err != nil {
		return "", fmt.Errorf("(io-checksum) failed to open: %w", err)
	}
	defer f.Close()

	hasher := blake3.New()

	ctxReader := &contextReader{
		ctx:    ctx,
		reader: f,
	}

	if _, err := io.Copy(hasher, ctxReader); err != nil {
		if errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("(io-checksum) canceled: %w", err)
		}

		return "", fmt.Errorf("(io-checksum) failed to read: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
