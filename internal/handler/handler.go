// Package handler implements the six API endpoints. Handlers are
// transport-agnostic in the sense that every backend sits behind an
// interface: the Lambda mains wire DynamoDB, S3, and SNS, while tests and the
// local development server wire the in-memory implementations.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/eventgram/photoshare/internal/apigw"
	"github.com/eventgram/photoshare/internal/config"
	"github.com/eventgram/photoshare/internal/logging"
	"github.com/eventgram/photoshare/internal/model"
	"github.com/eventgram/photoshare/internal/notify"
	"github.com/eventgram/photoshare/internal/objectstore"
	"github.com/eventgram/photoshare/internal/storage"
)

// Handler carries the wired backends shared by all endpoints.
type Handler struct {
	store    storage.MetadataStore
	objects  objectstore.ObjectStore
	notifier notify.Notifier
	cfg      *config.Config
	log      logging.Logger

	// Overridable for deterministic tests.
	now   func() time.Time
	newID func() string
}

func New(store storage.MetadataStore, objects objectstore.ObjectStore, notifier notify.Notifier, cfg *config.Config, log logging.Logger) *Handler {
	return &Handler{
		store:    store,
		objects:  objects,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.NewString() },
	}
}

// internalError logs err and maps it to a generic 500 envelope. Internal
// detail is only exposed when the debug flag is set.
func (h *Handler) internalError(ctx context.Context, op string, err error) events.APIGatewayProxyResponse {
	h.log.Error(ctx, "internal error", "op", op, "err", err)
	var details interface{}
	if h.cfg.Debug {
		details = err.Error()
	}
	return apigw.Error(http.StatusInternalServerError, model.ErrInternal, "internal error", details)
}

// photoView projects a record into its API shape with a fresh signed URL.
func (h *Handler) photoView(ctx context.Context, rec *model.PhotoRecord) (model.PhotoView, error) {
	url, err := h.objects.SignedGetURL(ctx, rec.S3Key, model.SignedURLTTL)
	if err != nil {
		return model.PhotoView{}, err
	}
	return model.PhotoView{
		PhotoID:      rec.PhotoID,
		UploaderName: rec.UploaderName,
		Comment:      rec.Comment,
		UploadedAt:   rec.UploadedAt,
		UploadedAtMs: rec.UploadedAtMs,
		URL:          url,
	}, nil
}
