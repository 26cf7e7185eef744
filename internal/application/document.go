package application

import (
	"context"
	"errors"

	"hargakripto/internal/domain"
	"hargakripto/internal/render"
)

// Document rewrites the system-owned section of the target document.
type Document struct {
	storage  Storage
	name     string
	renderer SectionRenderer
}

func NewDocument(storage Storage, name string, renderer SectionRenderer) *Document {
	return &Document{storage: storage, name: name, renderer: renderer}
}

// Update re-renders the section and writes the whole document back. A missing
// document is created; the returned error is then a recoverable *Error.
func (d *Document) Update(ctx context.Context, snap domain.Snapshot, recent []domain.HistoryRow) error {
	var warn error
	data, err := d.storage.Read(ctx, d.name)
	switch {
	case errors.Is(err, ErrNotFound):
		warn = E(KindMissingFile, "document: "+d.name, err)
	case err != nil:
		return E(KindStorage, "document: read "+d.name, err)
	}

	inner, err := d.renderer.Render(snap, recent)
	if err != nil {
		return E(KindInternal, "document: render", err)
	}

	out := render.Splice(string(data), inner)
	if err := d.storage.Write(ctx, d.name, []byte(out)); err != nil {
		return E(KindStorage, "document: write "+d.name, err)
	}
	return warn
}
