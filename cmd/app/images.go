package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lmercado/raster-service/internal/codec"
	"github.com/lmercado/raster-service/internal/processor"
	"github.com/lmercado/raster-service/internal/raster"
	"github.com/lmercado/raster-service/internal/store"
)

type RequestPayload struct {
	Transformations `json:"transformations"`
}

type Transformations struct {
	Resize    ResizeParams    `json:"resize"`
	Crop      CropParams      `json:"crop"`
	Watermark WatermarkParams `json:"watermark"`
	Mirror    bool            `json:"mirror"` //Mirror image about Y-axis
	Flip      bool            `json:"flip"`   //Mirror image about X-axis
	Rotate    int             `json:"rotate"`
	Quality   int             `json:"quality" validate:"gte=0,lte=100"`
	Format    string          `json:"format"`
	Filters   FilterParams    `json:"filters"`
}

type ResizeParams struct {
	Mode   string `json:"mode" validate:"omitempty,oneof=fit fill exact exact_width exact_height"`
	Width  int    `json:"width" validate:"gte=0"`
	Height int    `json:"height" validate:"gte=0"`
}

type CropParams struct {
	Width   int    `json:"width" validate:"gte=0"`
	Height  int    `json:"height" validate:"gte=0"`
	Anchor  string `json:"anchor"`
	OffsetX int    `json:"offset_x"`
	OffsetY int    `json:"offset_y"`
}

type WatermarkParams struct {
	ImageID int64    `json:"image_id"`
	Mode    string   `json:"mode" validate:"omitempty,oneof=normal difference multiply overlay screen"`
	Opacity *float64 `json:"opacity" validate:"omitempty,gte=0,lte=1"`
	Anchor  string   `json:"anchor"`
	OffsetX int      `json:"offset_x"`
	OffsetY int      `json:"offset_y"`
}

type FilterParams struct {
	Grayscale  bool    `json:"grayscale"`
	Sepia      bool    `json:"sepia"`
	Invert     bool    `json:"invert"`
	Gamma      float64 `json:"gamma" validate:"gte=0"`
	Brightness int     `json:"brightness"`
	Contrast   float64 `json:"contrast" validate:"gte=0"`
	Saturation float64 `json:"saturation" validate:"gte=0"`
	Hue        float64 `json:"hue"`
	Blur       string  `json:"blur" validate:"omitempty,oneof=box gaussian"`
	Sharpen    bool    `json:"sharpen"`
	EdgeDetect bool    `json:"edge_detect"`
	Emboss     bool    `json:"emboss"`
}

type ComparePayload struct {
	ImageID      int64 `json:"image_id" validate:"required"`
	OtherImageID int64 `json:"other_image_id" validate:"required"`
}

func (app *application) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	buf, filename, _, err := readImageData(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	decoded, format, err := codec.Decode(buf)
	if err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	bucketFilename, signedURL, err := app.bucket.Images.UploadImage(filename, buf)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	user := getUserFromContext(r)

	image := &store.Image{
		URL:      signedURL,
		Filename: bucketFilename,
		Format:   format,
		Width:    decoded.Width,
		Height:   decoded.Height,
		UserID:   user.ID,
	}

	if err := app.store.Images.Create(r.Context(), image); err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.logger.Infow("image uploaded", "id", image.ID, "user", user.Username, "format", format)

	if err := app.jsonResponse(w, http.StatusCreated, image); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) getImageHandler(w http.ResponseWriter, r *http.Request) {
	imageID, err := strconv.ParseInt(chi.URLParam(r, "imageID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	image, err := app.getImage(r.Context(), imageID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	user := getUserFromContext(r)
	if user.ID != image.UserID {
		app.forbiddenResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, image); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) getImagesHandler(w http.ResponseWriter, r *http.Request) {
	pp := store.PaginationParams{
		PageID: 1,
		Limit:  10,
	}
	pp, err := pp.Parse(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(pp); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	user := getUserFromContext(r)

	images, err := app.store.Images.GetUserImages(ctx, user.ID, pp)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, images); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) transformImageHandler(w http.ResponseWriter, r *http.Request) {
	imageID, err := strconv.ParseInt(chi.URLParam(r, "imageID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	image, err := app.getImage(r.Context(), imageID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	user := getUserFromContext(r)
	if image.UserID != user.ID {
		app.forbiddenResponse(w, r, err)
		return
	}

	var payload RequestPayload

	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	buf, err := app.bucket.Images.StreamImage(image.Filename)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	ip := processor.NewImageProcessor(buf, buildOptions(payload.Transformations))

	if payload.Watermark.ImageID != 0 {
		markBuf, err := app.streamUserImage(w, r, payload.Watermark.ImageID)
		if err != nil {
			return
		}
		ip.WithWatermark(markBuf)
	}

	app.logger.Infow("transforming image", "id", image.ID, "user", user.Username)

	newBuf, err := ip.Transformer.Process()
	if err != nil {
		switch {
		case errors.Is(err, raster.ErrInvalidParameter),
			errors.Is(err, raster.ErrInvalidDimension),
			errors.Is(err, processor.ErrInvalidParam),
			errors.Is(err, codec.ErrUnsupportedFormat):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.bucket.Images.UpdateImage(image.Filename, newBuf); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	decoded, format, err := codec.Decode(newBuf)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	image.Format = format
	image.Width = decoded.Width
	image.Height = decoded.Height

	if err := app.store.Images.Update(r.Context(), image); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// bust the stale cache entry
	app.cacheStorage.Images.Delete(r.Context(), image.ID)

	if err := app.jsonResponse(w, http.StatusOK, image); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) compareImagesHandler(w http.ResponseWriter, r *http.Request) {
	var payload ComparePayload

	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	bufA, err := app.streamUserImage(w, r, payload.ImageID)
	if err != nil {
		return
	}
	bufB, err := app.streamUserImage(w, r, payload.OtherImageID)
	if err != nil {
		return
	}

	imgA, _, err := codec.Decode(bufA)
	if err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}
	imgB, _, err := codec.Decode(bufB)
	if err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	type comparison struct {
		Equal      bool     `json:"equal"`
		Similarity *float64 `json:"similarity,omitempty"`
	}

	result := comparison{Equal: raster.Equal(imgA, imgB)}

	// similarity is only defined for images of the same dimensions
	if score, err := raster.Similarity(imgA, imgB); err == nil {
		result.Similarity = &score
	}

	if err := app.jsonResponse(w, http.StatusOK, result); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) imageMetadataHandler(w http.ResponseWriter, r *http.Request) {
	buf, filename, size, err := readImageData(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	img, format, err := codec.Decode(buf)
	if err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	type envelope struct {
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
		Format   string `json:"format"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
	}

	app.jsonResponse(w, http.StatusOK, &envelope{
		Filename: filename,
		Size:     size,
		Format:   format,
		Width:    img.Width,
		Height:   img.Height,
	})
}

// streamUserImage fetches an image record, checks that it belongs to the
// requesting user and downloads its bytes from the bucket. It writes the
// error response itself; a non-nil error just means "stop handling".
func (app *application) streamUserImage(w http.ResponseWriter, r *http.Request, imageID int64) ([]byte, error) {
	image, err := app.getImage(r.Context(), imageID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return nil, err
	}

	user := getUserFromContext(r)
	if image.UserID != user.ID {
		err := errors.New("image belongs to another user")
		app.forbiddenResponse(w, r, err)
		return nil, err
	}

	buf, err := app.bucket.Images.StreamImage(image.Filename)
	if err != nil {
		app.internalServerError(w, r, err)
		return nil, err
	}

	return buf, nil
}

func buildOptions(tr Transformations) processor.Transformer {
	var options processor.Transformer

	options.Resize.Mode = tr.Resize.Mode
	options.Resize.Width = tr.Resize.Width
	options.Resize.Height = tr.Resize.Height

	options.Crop.Width = tr.Crop.Width
	options.Crop.Height = tr.Crop.Height
	options.Crop.Anchor = tr.Crop.Anchor
	options.Crop.OffsetX = tr.Crop.OffsetX
	options.Crop.OffsetY = tr.Crop.OffsetY

	options.Watermark.Mode = tr.Watermark.Mode
	options.Watermark.Opacity = tr.Watermark.Opacity
	options.Watermark.Anchor = tr.Watermark.Anchor
	options.Watermark.OffsetX = tr.Watermark.OffsetX
	options.Watermark.OffsetY = tr.Watermark.OffsetY

	options.Mirror = tr.Mirror
	options.Flip = tr.Flip
	options.Rotate = tr.Rotate
	options.Quality = tr.Quality
	options.Format = tr.Format

	options.Filters.Grayscale = tr.Filters.Grayscale
	options.Filters.Sepia = tr.Filters.Sepia
	options.Filters.Invert = tr.Filters.Invert
	options.Filters.Gamma = tr.Filters.Gamma
	options.Filters.Brightness = tr.Filters.Brightness
	options.Filters.Contrast = tr.Filters.Contrast
	options.Filters.Saturation = tr.Filters.Saturation
	options.Filters.Hue = tr.Filters.Hue
	options.Filters.Blur = tr.Filters.Blur
	options.Filters.Sharpen = tr.Filters.Sharpen
	options.Filters.EdgeDetect = tr.Filters.EdgeDetect
	options.Filters.Emboss = tr.Filters.Emboss

	return options
}

func readImageData(r *http.Request) ([]byte, string, int64, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB
		return nil, "", 0, err
	}

	image, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", 0, err
	}

	defer image.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, image); err != nil {
		return nil, "", 0, err
	}

	return buf.Bytes(), header.Filename, header.Size, nil
}
