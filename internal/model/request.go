package model

import "encoding/json"

// UploadRequest is the JSON body sent by clients to POST /api/upload.
// Image carries the photo bytes as base64, with or without a data-URL prefix.
// CheckedItems must be present (possibly empty) and is re-validated against
// the stored checklist configuration; client-side gating is never trusted.
type UploadRequest struct {
	Image        string    `json:"image"`
	FileName     string    `json:"fileName"`
	UploaderName string    `json:"uploaderName"`
	Comment      string    `json:"comment"`
	CheckedItems *[]string `json:"checkedItems"`
}

// UpdatePhotoRequest is the JSON body sent to PATCH /api/admin/photos/{id}.
// Nil fields are left untouched; the update is applied field-by-field.
type UpdatePhotoRequest struct {
	UploaderName *string `json:"uploaderName"`
	Comment      *string `json:"comment"`
}

// IsEmpty reports whether no updatable field was supplied.
func (r UpdatePhotoRequest) IsEmpty() bool {
	return r.UploaderName == nil && r.Comment == nil
}

// DeleteRequest is the JSON body sent by clients to POST /api/delete-request.
// DeleteReason stays a RawMessage so a non-string value can be rejected
// explicitly instead of silently coerced.
type DeleteRequest struct {
	PhotoID      string          `json:"photoId"`
	DeleteReason json.RawMessage `json:"deleteReason"`
}
