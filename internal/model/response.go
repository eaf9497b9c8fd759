package model

// Envelope is the JSON shape of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody carries a stable machine-readable code plus a human message.
// Details is free-form and optional (e.g. the list of unmet checklist items).
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// UploadResponse is returned on a successful POST /api/upload request.
type UploadResponse struct {
	PhotoID      string `json:"photoId"`
	UploaderName string `json:"uploaderName"`
	Comment      string `json:"comment"`
	UploadedAt   string `json:"uploadedAt"`
}

// PhotoView is one gallery entry in the GET /api/photos response.
type PhotoView struct {
	PhotoID      string `json:"photoId"`
	UploaderName string `json:"uploaderName"`
	Comment      string `json:"comment"`
	UploadedAt   string `json:"uploadedAt"`
	UploadedAtMs int64  `json:"uploadedAtMs"`
	URL          string `json:"url"`
}

// ListPhotosResponse is returned by GET /api/photos.
type ListPhotosResponse struct {
	Photos []PhotoView `json:"photos"`
	Count  int         `json:"count"`
}

// ConfigResponse is returned by GET /api/config.
type ConfigResponse struct {
	Items     []ChecklistItem `json:"items"`
	UpdatedAt string          `json:"updatedAt"`
}

// DeleteRequestResponse acknowledges a delete request without exposing
// whether the operator notification went out.
type DeleteRequestResponse struct {
	Received bool `json:"received"`
}
