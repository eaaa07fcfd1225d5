// internal/bundle/bundle.go

// Package bundle writes tar.xz support bundles. A bundle collects the raw
// pkg-config outputs, the directive trace and the resolved configuration of
// a doctor run so a failing environment can be reported in one file.
package bundle

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ulikunitz/xz"
)

// File is one entry of a support bundle.
type File struct {
	Name string
	Data []byte
}

// Write streams files as a tar archive inside an xz layer, in the order
// given.
func Write(w io.Writer, files []File) error {
	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating xz stream: %w", err)
	}
	tw := tar.NewWriter(xzw)

	now := time.Now()
	for _, f := range files {
		hdr := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     f.Name,
			Mode:     0o644,
			Size:     int64(len(f.Data)),
			ModTime:  now,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("writing bundle header for %s: %w", f.Name, err)
		}
		if _, err := tw.Write(f.Data); err != nil {
			return fmt.Errorf("writing bundle entry %s: %w", f.Name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("closing tar stream: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("closing xz stream: %w", err)
	}
	return nil
}

// Create writes a bundle to a new file at path.
func Create(path string, files []File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating bundle file: %w", err)
	}
	if err := Write(out, files); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing bundle file: %w", err)
	}
	return nil
}
