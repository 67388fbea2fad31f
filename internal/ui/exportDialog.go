package ui

import (
	"bytes"
	"fmt"
	"log"

	"LocalSketch/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// SaveExport renders the committed shapes in format f and writes them to
// writer, closing it afterwards.
func (b *BoardWidget) SaveExport(writer fyne.URIWriteCloser, f export.Format) error {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[EXPORT] Error closing writer: %v", err)
		}
	}()

	shapes := b.session.Shapes()
	var buf bytes.Buffer
	if err := export.Write(&buf, f, b.canvas, shapes); err != nil {
		b.SetStatus("Error exporting drawing")
		return fmt.Errorf("export %s: %w", f, err)
	}
	if _, err := writer.Write(buf.Bytes()); err != nil {
		b.SetStatus("Error writing file")
		return fmt.Errorf("write %s: %w", writer.URI(), err)
	}

	log.Printf("[EXPORT] Wrote %d shapes as %s (%d bytes) to %s", len(shapes), f.MIMEType(), buf.Len(), writer.URI())
	b.SetStatus(fmt.Sprintf("Exported %d shapes to %s", len(shapes), writer.URI().Name()))
	return nil
}

// ShowExportDialog asks for a destination and exports the drawing there.
// dir, when set, is the folder the dialog opens in.
func ShowExportDialog(win fyne.Window, b *BoardWidget, f export.Format, dir string) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		if err := b.SaveExport(writer, f); err != nil {
			log.Printf("[EXPORT] %v", err)
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFileName(f.Filename())
	d.SetFilter(storage.NewExtensionFileFilter([]string{"." + f.String()}))
	if dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		} else {
			log.Printf("[EXPORT] Ignoring export dir %s: %v", dir, err)
		}
	}
	d.Show()
}
