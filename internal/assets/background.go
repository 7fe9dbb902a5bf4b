package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
)

// LoadBackground читает и декодирует фоновое изображение (PNG или JPEG)
func LoadBackground(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open background: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode background %s: %w", path, err)
	}
	return img, nil
}

// BackgroundOrNil не прерывает запуск: при ошибке рендер зальёт фон сплошным цветом
func BackgroundOrNil(path string) image.Image {
	if path == "" {
		return nil
	}
	img, err := LoadBackground(path)
	if err != nil {
		log.Printf("WARNING: %v, using solid background", err)
		return nil
	}
	log.Printf("Successfully loaded background %s", path)
	return img
}
