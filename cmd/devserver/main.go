// devserver runs the API locally against in-memory backends, plus the static
// frontend from ./web. It is a single-process stand-in for development only;
// nothing survives a restart.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/eventgram/photoshare/internal/config"
	"github.com/eventgram/photoshare/internal/handler"
	"github.com/eventgram/photoshare/internal/logging"
	"github.com/eventgram/photoshare/internal/model"
	"github.com/eventgram/photoshare/internal/objectstore"
	"github.com/eventgram/photoshare/internal/storage"
)

type apiFunc func(context.Context, events.APIGatewayProxyRequest) events.APIGatewayProxyResponse

// toProxyRequest translates a net/http request into the Lambda handler ABI so
// the local server exercises the exact same code path as production.
func toProxyRequest(r *http.Request) events.APIGatewayProxyRequest {
	body, _ := io.ReadAll(r.Body)
	query := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}
	req := events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		QueryStringParameters: query,
		Body:                  string(body),
	}
	if rest, ok := strings.CutPrefix(r.URL.Path, "/api/admin/photos/"); ok && rest != "" {
		req.PathParameters = map[string]string{"id": rest}
	}
	return req
}

func serve(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := fn(r.Context(), toProxyRequest(r))
		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	webDir := flag.String("web", "web", "static frontend directory")
	flag.Parse()

	cfg := &config.Config{
		PhotosTable:           "dev",
		PhotosBucket:          "dev",
		AdminPassword:         "devpassword",
		DeleteRequestTopicARN: "dev",
		AdminBaseURL:          "http://localhost:8080",
		Debug:                 true,
	}
	logger := logging.NewJSON(true)
	store := storage.NewMemoryStore()
	notifier := &logNotifier{logger}

	// seed a default checklist so the upload form works out of the box
	_ = store.PutChecklist(context.Background(), &model.ChecklistConfig{
		Items: []model.ChecklistItem{
			{ID: "consent", Text: "Everyone pictured is okay with sharing this photo", Required: true},
			{ID: "rights", Text: "I took this photo myself", Required: true},
			{ID: "newsletter", Text: "Email me about future events", Required: false},
		},
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})

	h := handler.New(store, objectstore.NewMemoryStore(), notifier, cfg, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/upload", serve(h.Upload))
	mux.HandleFunc("/api/photos", serve(h.ListPhotos))
	mux.HandleFunc("/api/config", serve(h.GetConfig))
	mux.HandleFunc("/api/delete-request", serve(h.DeleteRequest))
	mux.HandleFunc("/api/admin/photos/", serve(func(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
		if req.HTTPMethod == http.MethodDelete {
			return h.DeletePhoto(ctx, req)
		}
		return h.UpdatePhoto(ctx, req)
	}))
	mux.Handle("/", http.FileServer(http.Dir(*webDir)))

	log.Printf("devserver listening on %s (admin password %q)", *addr, cfg.AdminPassword)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

// logNotifier prints delete-request notifications instead of publishing them.
type logNotifier struct {
	log logging.Logger
}

func (n *logNotifier) Publish(ctx context.Context, subject, message string) error {
	n.log.Info(ctx, "notification", "subject", subject, "message", message)
	return nil
}
