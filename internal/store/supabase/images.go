package supabase

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lmercado/raster-service/internal/codec"
	sc "github.com/supabase-community/storage-go"
)

const urlDuration = 6 * 3600 // seconds

type ImageBucket struct {
	bucketID string
	sc       *sc.Client
}

func fileOptions(filename string) (sc.FileOptions, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")

	format, err := codec.NormalizeFormat(ext)
	if err != nil {
		return sc.FileOptions{}, err
	}

	contentType := "image/" + format

	return sc.FileOptions{ContentType: &contentType}, nil
}

func (b ImageBucket) UploadImage(filename string, buf []byte) (string, string, error) {
	options, err := fileOptions(filename)
	if err != nil {
		return "", "", err
	}

	newFilename := fmt.Sprintf("uploaded_%s", filename)

	_, err = b.sc.UploadFile(b.bucketID, newFilename, bytes.NewReader(buf), options)
	if err != nil {
		return "", "", err
	}

	res, err := b.sc.CreateSignedUrl(b.bucketID, newFilename, urlDuration)
	if err != nil {
		return "", "", err
	}

	return newFilename, res.SignedURL, nil
}

func (b ImageBucket) GetNewSignedImageURL(filename string, duration int) (string, error) {
	res, err := b.sc.CreateSignedUrl(b.bucketID, filename, duration)
	if err != nil {
		return "", err
	}

	return res.SignedURL, nil
}

func (b ImageBucket) UpdateImage(filename string, buf []byte) error {
	options, err := fileOptions(filename)
	if err != nil {
		return err
	}

	_, err = b.sc.UpdateFile(b.bucketID, filename, bytes.NewReader(buf), options)

	return err
}

func (b ImageBucket) StreamImage(filename string) ([]byte, error) {
	return b.sc.DownloadFile(b.bucketID, filename)
}
