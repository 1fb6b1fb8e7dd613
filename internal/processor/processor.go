// Package processor runs a transformation pipeline over an encoded
// image: decode once, apply the requested raster operations in a fixed
// order, re-encode. The pixel work lives in internal/raster, the byte
// work in internal/codec.
package processor

type ImageProcessor struct {
	Transformer interface {
		Process() ([]byte, error)
		Resize(width, height int) ([]byte, error)
		Crop(width, height int) ([]byte, error)
		Convert(t string) ([]byte, error)
		Compress(value int) ([]byte, error)
		Rotate(degrees int) ([]byte, error)
		Mirror() ([]byte, error)
		Flip() ([]byte, error)
	}
}

func NewImageProcessor(buf []byte, options Transformer) *ImageProcessor {
	return &ImageProcessor{
		Transformer: &ImageTransformer{
			buf:     buf,
			options: options,
		},
	}
}

// WithWatermark supplies the encoded bytes of the watermark image used
// by the pipeline's blend step.
func (ip *ImageProcessor) WithWatermark(buf []byte) *ImageProcessor {
	if it, ok := ip.Transformer.(*ImageTransformer); ok {
		it.watermark = buf
	}

	return ip
}
