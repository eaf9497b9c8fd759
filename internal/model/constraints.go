package model

import "time"

// Domain constants shared across handler, validation, and storage packages.
const (
	MaxImageSizeBytes = int64(10 * 1024 * 1024) // 10 MiB, decoded
	MaxCommentLength  = 1000
	MaxNameLength     = 100

	SignedURLTTL = time.Hour
	PhotoTTL     = 30 * 24 * time.Hour

	DefaultUploaderName = "Anonymous"
)
