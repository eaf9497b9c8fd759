package handler

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"
)

// mime types mapped to the extension used in storage keys.
var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// decodeImage accepts a bare base64 string or a data URL
// ("data:image/jpeg;base64,..."). It returns the raw bytes and the declared
// or sniffed content type.
func decodeImage(payload string) ([]byte, string, error) {
	declared := ""
	if strings.HasPrefix(payload, "data:") {
		semi := strings.Index(payload, ";base64,")
		if semi < 0 {
			return nil, "", fmt.Errorf("malformed data URL")
		}
		declared = payload[len("data:"):semi]
		payload = payload[semi+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image payload")
	}

	contentType := declared
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

// imageExtension picks the storage-key extension from the client file name if
// it carries one, otherwise from the content type.
func imageExtension(fileName, contentType string) string {
	if dot := strings.LastIndex(fileName, "."); dot >= 0 && dot < len(fileName)-1 {
		ext := strings.ToLower(fileName[dot:])
		if len(ext) <= 6 && isAlnumExt(ext[1:]) {
			return ext
		}
	}
	if ext, ok := extByMIME[contentType]; ok {
		return ext
	}
	return ".bin"
}

func isAlnumExt(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// sanitizeName reduces an uploader name to a safe storage-key fragment:
// lowercase ASCII letters and digits with single hyphens between runs.
func sanitizeName(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "anonymous"
	}
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

// storageKey derives the object key for a new upload: sanitized uploader name,
// upload time, a random suffix, and the original extension.
func storageKey(uploaderName string, at time.Time, suffix, ext string) string {
	return fmt.Sprintf("photos/%s-%d-%s%s", sanitizeName(uploaderName), at.UnixMilli(), suffix, ext)
}
