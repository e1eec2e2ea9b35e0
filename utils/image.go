package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// MaxImageSize adalah ukuran maksimal berkas gambar yang diterima (2MB)
const MaxImageSize = 2 << 20

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ImageFilename menurunkan nama berkas gambar dari judul dan nama berkas asli:
// {unix}_{slug-judul}{ekstensi}
func ImageFilename(title, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), slug.Make(title), ext)
}

// ValidImage memeriksa ekstensi (jpg/jpeg/png) dan ukuran berkas gambar
func ValidImage(filename string, size int64) bool {
	if size <= 0 || size > MaxImageSize {
		return false
	}
	return imageExtensions[strings.ToLower(filepath.Ext(filename))]
}
