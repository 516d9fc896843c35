package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SaveImageWithThumb decodes an uploaded image, stores it under dir as
// <id>.jpg and a 300px-wide thumbnail under dir/thumb, returning the
// public filename.
func SaveImageWithThumb(file multipart.File, dir, id string) (string, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	fileName := id + ".jpg"
	originalPath := filepath.Join(dir, fileName)
	thumbDir := filepath.Join(dir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := EnsureDir(dir); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := EnsureDir(thumbDir); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, originalPath); err != nil {
		return "", fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return fileName, nil
}
