package services

import (
	"path"
	"strings"
)

// Extension allow-lists for media references. References with other
// extensions never reach the media store.
var (
	imageExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
	}
	videoExtensions = map[string]bool{
		".mp4": true,
		".mov": true,
		".avi": true,
		".mkv": true,
	}
)

// isAllowedImage reports whether the reference carries an accepted image extension
func isAllowedImage(ref string) bool {
	return imageExtensions[extensionOf(ref)]
}

// isAllowedVideo reports whether the reference carries an accepted video extension
func isAllowedVideo(ref string) bool {
	return videoExtensions[extensionOf(ref)]
}

func extensionOf(ref string) string {
	// Strip query parameters so presigned URLs validate on the object key
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		ref = ref[:i]
	}
	return strings.ToLower(path.Ext(ref))
}
