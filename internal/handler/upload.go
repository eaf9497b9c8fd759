package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/eventgram/photoshare/internal/apigw"
	"github.com/eventgram/photoshare/internal/model"
	"github.com/eventgram/photoshare/internal/storage"
)

// Upload handles POST /api/upload: validate the checklist server-side, decode
// and bound the image, write the object first and the metadata record last.
// A crash between the two writes leaves an orphaned object, never a metadata
// record pointing at nothing.
func (h *Handler) Upload(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod == http.MethodOptions {
		return apigw.Preflight()
	}
	if req.HTTPMethod != http.MethodPost {
		return apigw.MethodNotAllowed(req.HTTPMethod)
	}

	var in model.UploadRequest
	if err := json.Unmarshal([]byte(req.Body), &in); err != nil {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "request body is not valid JSON", nil)
	}

	if in.Image == "" {
		return apigw.Error(http.StatusBadRequest, model.ErrMissingImage, "image is required", nil)
	}
	if in.CheckedItems == nil {
		return apigw.Error(http.StatusBadRequest, model.ErrMissingCheckedItems, "checkedItems is required", nil)
	}

	// Server-side re-validation of required checklist items; client-side
	// gating is never trusted. An absent config means nothing is required.
	checklist, err := h.store.GetChecklist(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return h.internalError(ctx, "upload/get-checklist", err)
	}
	if checklist != nil {
		if missing := checklist.MissingRequiredItems(*in.CheckedItems); len(missing) > 0 {
			return apigw.Error(http.StatusBadRequest, model.ErrMissingRequiredItems,
				"required checklist items not confirmed", missing)
		}
	}

	data, contentType, err := decodeImage(in.Image)
	if err != nil {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidImageData, "image payload could not be decoded", nil)
	}
	if int64(len(data)) > model.MaxImageSizeBytes {
		return apigw.Error(http.StatusRequestEntityTooLarge, model.ErrFileTooLarge,
			"decoded image exceeds the 10 MiB limit", nil)
	}

	uploaderName := strings.TrimSpace(in.UploaderName)
	if uploaderName == "" {
		uploaderName = model.DefaultUploaderName
	}
	if len(uploaderName) > model.MaxNameLength {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "uploaderName too long", nil)
	}
	if len(in.Comment) > model.MaxCommentLength {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "comment too long", nil)
	}

	now := h.now()
	photoID := h.newID()
	suffix := strings.ReplaceAll(h.newID(), "-", "")[:8]
	key := storageKey(uploaderName, now, suffix, imageExtension(in.FileName, contentType))

	if err := h.objects.Put(ctx, key, data, contentType); err != nil {
		return h.internalError(ctx, "upload/put-object", err)
	}

	rec := &model.PhotoRecord{
		PK:           model.PhotoPK(photoID),
		SK:           model.MetadataSortKey,
		PhotoID:      photoID,
		S3Key:        key,
		UploaderName: uploaderName,
		Comment:      in.Comment,
		UploadedAt:   now.Format(time.RFC3339),
		UploadedAtMs: now.UnixMilli(),
		TTL:          now.Add(model.PhotoTTL).Unix(),
	}
	if err := h.store.PutPhoto(ctx, rec); err != nil {
		return h.internalError(ctx, "upload/put-record", err)
	}

	h.log.Info(ctx, "photo uploaded", "photoId", photoID, "s3Key", key, "size", len(data))

	return apigw.OK(http.StatusCreated, model.UploadResponse{
		PhotoID:      rec.PhotoID,
		UploaderName: rec.UploaderName,
		Comment:      rec.Comment,
		UploadedAt:   rec.UploadedAt,
	})
}
