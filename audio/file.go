// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"os"
)

// fileSource closes the backing file together with the decoded stream.
type fileSource struct {
	Source
	f *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}

// Open decodes the file at path with the decoder registered for its
// extension. Closing the Source closes the file.
func (r *Registry) Open(path string) (Source, error) {
	dec, ok := r.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNoDecoder)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}
