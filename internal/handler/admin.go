package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/eventgram/photoshare/internal/apigw"
	"github.com/eventgram/photoshare/internal/model"
	"github.com/eventgram/photoshare/internal/storage"
)

// adminAuthorized checks the shared-secret "admin" query parameter in
// constant time.
func (h *Handler) adminAuthorized(req events.APIGatewayProxyRequest) bool {
	supplied := req.QueryStringParameters["admin"]
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(h.cfg.AdminPassword)) == 1
}

// pathPhotoID extracts the {id} path parameter, falling back to the last
// path segment for transports that do not populate PathParameters.
func pathPhotoID(req events.APIGatewayProxyRequest) string {
	if id := req.PathParameters["id"]; id != "" {
		return id
	}
	path := strings.TrimRight(req.Path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return ""
}

// UpdatePhoto handles PATCH /api/admin/photos/{id}: apply the supplied fields
// only, then return the merged record with a fresh signed URL.
func (h *Handler) UpdatePhoto(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod == http.MethodOptions {
		return apigw.Preflight()
	}
	if req.HTTPMethod != http.MethodPatch {
		return apigw.MethodNotAllowed(req.HTTPMethod)
	}
	if !h.adminAuthorized(req) {
		return apigw.Error(http.StatusUnauthorized, model.ErrUnauthorized, "invalid admin credentials", nil)
	}

	photoID := pathPhotoID(req)
	if photoID == "" {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "photo id is required", nil)
	}

	var in model.UpdatePhotoRequest
	if err := json.Unmarshal([]byte(req.Body), &in); err != nil {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "request body is not valid JSON", nil)
	}
	if in.UploaderName != nil && len(*in.UploaderName) > model.MaxNameLength {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "uploaderName too long", nil)
	}
	if in.Comment != nil && len(*in.Comment) > model.MaxCommentLength {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "comment too long", nil)
	}

	rec, err := h.store.UpdatePhoto(ctx, photoID, storage.PhotoUpdate{
		UploaderName: in.UploaderName,
		Comment:      in.Comment,
	})
	if errors.Is(err, storage.ErrNotFound) {
		return apigw.Error(http.StatusNotFound, model.ErrPhotoNotFound, "photo not found", nil)
	}
	if err != nil {
		return h.internalError(ctx, "admin-update/update", err)
	}

	// Presign failure here is a real failure: the admin view is unusable
	// without a URL for the (possibly unchanged) object.
	view, err := h.photoView(ctx, rec)
	if err != nil {
		return h.internalError(ctx, "admin-update/presign", err)
	}

	h.log.Info(ctx, "photo updated", "photoId", photoID)
	return apigw.OK(http.StatusOK, view)
}

// DeletePhoto handles DELETE /api/admin/photos/{id}. The object is deleted
// first; an object-store failure is logged and does not block metadata
// cleanup, so the record always goes away.
func (h *Handler) DeletePhoto(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod == http.MethodOptions {
		return apigw.Preflight()
	}
	if req.HTTPMethod != http.MethodDelete {
		return apigw.MethodNotAllowed(req.HTTPMethod)
	}
	if !h.adminAuthorized(req) {
		return apigw.Error(http.StatusUnauthorized, model.ErrUnauthorized, "invalid admin credentials", nil)
	}

	photoID := pathPhotoID(req)
	if photoID == "" {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "photo id is required", nil)
	}

	rec, err := h.store.GetPhoto(ctx, photoID)
	if errors.Is(err, storage.ErrNotFound) {
		return apigw.Error(http.StatusNotFound, model.ErrPhotoNotFound, "photo not found", nil)
	}
	if err != nil {
		return h.internalError(ctx, "admin-delete/get", err)
	}

	if err := h.objects.Delete(ctx, rec.S3Key); err != nil {
		h.log.Error(ctx, "object delete failed, continuing with metadata cleanup",
			"photoId", photoID, "s3Key", rec.S3Key, "err", err)
	}
	if err := h.store.DeletePhoto(ctx, photoID); err != nil {
		return h.internalError(ctx, "admin-delete/delete-record", err)
	}

	h.log.Info(ctx, "photo deleted", "photoId", photoID)
	return apigw.OK(http.StatusOK, map[string]interface{}{
		"photoId": photoID,
		"deleted": true,
	})
}
