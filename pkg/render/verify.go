package render

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/akeil/deckgen/internal/errors"
	"github.com/akeil/deckgen/internal/logging"
)

// VerifyPDF validates the PDF file at path and checks that it has the
// expected number of pages.
func VerifyPDF(path string, pages int) error {
	logging.Debug("Verify PDF %q", path)
	err := api.ValidateFile(path, pdfcpu.NewDefaultConfiguration())
	if err != nil {
		return errors.Wrap(err, "invalid PDF %q", path)
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read %q", path)
	}
	if ctx.PageCount != pages {
		return errors.NewValidationError("%v has %d pages, expected %d", path, ctx.PageCount, pages)
	}

	logging.Info("Verified %q with %d pages", path, ctx.PageCount)
	return nil
}
