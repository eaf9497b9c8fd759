package model

// Stable error codes returned in the error envelope. Clients match on these,
// never on messages.
const (
	ErrMissingImage         = "MISSING_IMAGE"
	ErrMissingCheckedItems  = "MISSING_CHECKED_ITEMS"
	ErrMissingRequiredItems = "MISSING_REQUIRED_ITEMS"
	ErrInvalidImageData     = "INVALID_IMAGE_DATA"
	ErrFileTooLarge         = "FILE_TOO_LARGE"
	ErrUnauthorized         = "UNAUTHORIZED"
	ErrPhotoNotFound        = "PHOTO_NOT_FOUND"
	ErrConfigNotFound       = "CONFIG_NOT_FOUND"
	ErrMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	ErrInvalidRequest       = "INVALID_REQUEST"
	ErrInternal             = "INTERNAL_ERROR"
)
