// SPDX-License-Identifier: EPL-2.0

// Package storage stores exported clips on local disk or in S3.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
)

// ErrInvalidName is returned for names that are empty or contain a path.
var ErrInvalidName = errors.New("storage: invalid object name")

// Storage is a sink for encoded output.
type Storage interface {
	// Save stores the content of r under name and returns where it went
	// (a file path or URL).
	Save(ctx context.Context, name, contentType string, r io.Reader) (location string, err error)
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return ErrInvalidName
	}

	return nil
}
