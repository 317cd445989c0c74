package converter

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	pdfmodel "github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/render"
	xdraw "golang.org/x/image/draw"

	"github.com/SStephenB/pdf-highlight-oa/model"
)

// Rasterizer renders every page of a PDF into an encoded image.
type Rasterizer interface {
	RasterizePages(ctx context.Context, pdfData []byte, dpi int) ([]model.PageImage, error)
}

// ImageDeviceRasterizer renders pages with unipdf's image device and rescales
// the output to the requested resolution.
type ImageDeviceRasterizer struct{}

// NewImageDeviceRasterizer constructs the default rasterizer.
func NewImageDeviceRasterizer() *ImageDeviceRasterizer {
	return &ImageDeviceRasterizer{}
}

// RasterizePages renders each page at the given DPI and returns base64 PNG
// images in page order.
func (r *ImageDeviceRasterizer) RasterizePages(ctx context.Context, pdfData []byte, dpi int) ([]model.PageImage, error) {
	reader, err := pdfmodel.NewPdfReader(bytes.NewReader(pdfData))
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	numPages, err := reader.GetNumPages()
	if err != nil {
		return nil, fmt.Errorf("counting pages: %w", err)
	}

	device := render.NewImageDevice()
	out := make([]model.PageImage, 0, numPages)
	for pageNumber := 1; pageNumber <= numPages; pageNumber++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page, err := reader.GetPage(pageNumber)
		if err != nil {
			return nil, fmt.Errorf("loading page %d: %w", pageNumber, err)
		}
		img, err := device.Render(page)
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", pageNumber, err)
		}

		mbox, err := page.GetMediaBox()
		if err != nil {
			return nil, fmt.Errorf("media box of page %d: %w", pageNumber, err)
		}
		// Pages are laid out in points (1/72 inch); rescale the render to the
		// requested DPI.
		targetWidth := int(math.Round(mbox.Width() / 72 * float64(dpi)))
		img = scaleToWidth(img, targetWidth)

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding page %d: %w", pageNumber, err)
		}
		bounds := img.Bounds()
		out = append(out, model.PageImage{
			Page:   pageNumber,
			Image:  base64.StdEncoding.EncodeToString(buf.Bytes()),
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		})
	}
	return out, nil
}

func scaleToWidth(src image.Image, width int) image.Image {
	bounds := src.Bounds()
	if width <= 0 || bounds.Dx() == width || bounds.Dx() == 0 {
		return src
	}
	height := int(math.Round(float64(bounds.Dy()) * float64(width) / float64(bounds.Dx())))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}
