package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/eventgram/photoshare/internal/apigw"
	"github.com/eventgram/photoshare/internal/model"
	"github.com/eventgram/photoshare/internal/storage"
)

// GetConfig handles GET /api/config: return the singleton checklist record.
func (h *Handler) GetConfig(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod == http.MethodOptions {
		return apigw.Preflight()
	}
	if req.HTTPMethod != http.MethodGet {
		return apigw.MethodNotAllowed(req.HTTPMethod)
	}

	cfg, err := h.store.GetChecklist(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return apigw.Error(http.StatusNotFound, model.ErrConfigNotFound, "checklist configuration not found", nil)
	}
	if err != nil {
		return h.internalError(ctx, "config/get", err)
	}

	return apigw.OK(http.StatusOK, model.ConfigResponse{
		Items:     cfg.Items,
		UpdatedAt: cfg.UpdatedAt,
	})
}
