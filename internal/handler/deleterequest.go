package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/eventgram/photoshare/internal/apigw"
	"github.com/eventgram/photoshare/internal/model"
	"github.com/eventgram/photoshare/internal/storage"
)

// DeleteRequest handles POST /api/delete-request: a public endpoint that asks
// the operators to remove a photo. The ack never reveals whether the
// notification went out beyond mapping a publish failure to a 500.
func (h *Handler) DeleteRequest(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod == http.MethodOptions {
		return apigw.Preflight()
	}
	if req.HTTPMethod != http.MethodPost {
		return apigw.MethodNotAllowed(req.HTTPMethod)
	}

	var in model.DeleteRequest
	if err := json.Unmarshal([]byte(req.Body), &in); err != nil {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "request body is not valid JSON", nil)
	}
	if in.PhotoID == "" {
		return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "photoId is required", nil)
	}

	reason := ""
	if len(in.DeleteReason) > 0 {
		if err := json.Unmarshal(in.DeleteReason, &reason); err != nil {
			return apigw.Error(http.StatusBadRequest, model.ErrInvalidRequest, "deleteReason must be a string", nil)
		}
	}

	rec, err := h.store.GetPhoto(ctx, in.PhotoID)
	if errors.Is(err, storage.ErrNotFound) {
		return apigw.Error(http.StatusNotFound, model.ErrPhotoNotFound, "photo not found", nil)
	}
	if err != nil {
		return h.internalError(ctx, "delete-request/get", err)
	}

	requestTime := h.now().Format(time.RFC3339)
	adminLink := fmt.Sprintf("%s/?admin=%s&photoId=%s",
		h.cfg.AdminBaseURL,
		url.QueryEscape(h.cfg.AdminPassword),
		url.QueryEscape(rec.PhotoID))

	message := fmt.Sprintf(
		"A photo delete request was submitted.\n\n"+
			"Photo:      %s\n"+
			"Uploader:   %s\n"+
			"Reason:     %s\n"+
			"Requested:  %s\n\n"+
			"Review and delete: %s\n",
		rec.PhotoID, rec.UploaderName, orNone(reason), requestTime, adminLink)

	if err := h.notifier.Publish(ctx, "Photo delete request", message); err != nil {
		return h.internalError(ctx, "delete-request/publish", err)
	}

	h.log.Info(ctx, "delete request forwarded", "photoId", rec.PhotoID)
	return apigw.OK(http.StatusOK, model.DeleteRequestResponse{Received: true})
}

func orNone(s string) string {
	if s == "" {
		return "(none given)"
	}
	return s
}
