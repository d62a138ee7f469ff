package corpus

import (
	"context"
	"io"
	"io/fs"

	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
	"golang.org/x/xerrors"
)

var _ pipeline.Processor = (*fileReader)(nil)

type fileReader struct {
	fsys fs.FS
}

func newFileReader(fsys fs.FS) *fileReader {
	return &fileReader{fsys: fsys}
}

func (fr *fileReader) Process(ctx context.Context, p pipeline.Payload) (pipeline.Payload, error) {
	payload := p.(*documentPayload)

	f, err := fr.fsys.Open(payload.Path)
	if err != nil {
		return nil, xerrors.Errorf("open %q: %w", payload.Name, err)
	}
	defer func() { _ = f.Close() }()

	if _, err = io.Copy(&payload.RawContent, f); err != nil {
		return nil, xerrors.Errorf("read %q: %w", payload.Name, err)
	}
	return payload, nil
}
