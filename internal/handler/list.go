package handler

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"github.com/aws/aws-lambda-go/events"

	"github.com/eventgram/photoshare/internal/apigw"
	"github.com/eventgram/photoshare/internal/model"
)

// ListPhotos handles GET /api/photos: scan every record, sort newest first,
// attach a 1-hour signed URL per record. URL generation runs concurrently and
// a failure drops that record instead of failing the whole response.
func (h *Handler) ListPhotos(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod == http.MethodOptions {
		return apigw.Preflight()
	}
	if req.HTTPMethod != http.MethodGet {
		return apigw.MethodNotAllowed(req.HTTPMethod)
	}

	records, err := h.store.ListPhotos(ctx)
	if err != nil {
		return h.internalError(ctx, "list/scan", err)
	}

	// Stable sort: records with equal timestamps keep scan order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UploadedAtMs > records[j].UploadedAtMs
	})

	views := make([]*model.PhotoView, len(records))
	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			view, err := h.photoView(ctx, &records[i])
			if err != nil {
				h.log.Warn(ctx, "dropping photo from listing, presign failed",
					"photoId", records[i].PhotoID, "err", err)
				return
			}
			views[i] = &view
		}(i)
	}
	wg.Wait()

	photos := make([]model.PhotoView, 0, len(views))
	for _, v := range views {
		if v != nil {
			photos = append(photos, *v)
		}
	}

	return apigw.OK(http.StatusOK, model.ListPhotosResponse{Photos: photos, Count: len(photos)})
}
