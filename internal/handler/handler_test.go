package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"github.com/eventgram/photoshare/internal/config"
	"github.com/eventgram/photoshare/internal/logging"
	"github.com/eventgram/photoshare/internal/model"
	"github.com/eventgram/photoshare/internal/notify"
	"github.com/eventgram/photoshare/internal/objectstore"
	"github.com/eventgram/photoshare/internal/storage"
)

type testEnv struct {
	h        *Handler
	store    *storage.MemoryStore
	objects  *objectstore.MemoryStore
	notifier *notify.CaptureNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:    storage.NewMemoryStore(),
		objects:  objectstore.NewMemoryStore(),
		notifier: notify.NewCaptureNotifier(),
	}
	cfg := &config.Config{
		PhotosTable:           "event-photos",
		PhotosBucket:          "event-photos-originals",
		AdminPassword:         "hunter2",
		DeleteRequestTopicARN: "arn:aws:sns:eu-west-1:123456789012:delete-requests",
		AdminBaseURL:          "https://photos.example.com",
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	env.h = New(env.store, env.objects, env.notifier, cfg, log)

	// deterministic clock and ids
	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	var tick int64
	env.h.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	var n int
	env.h.newID = func() string {
		n++
		return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
	}
	return env
}

func jsonBody(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func decodeEnvelope(t *testing.T, resp events.APIGatewayProxyResponse) model.Envelope {
	t.Helper()
	var env model.Envelope
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &env))
	return env
}

func dataAs(t *testing.T, env model.Envelope, out interface{}) {
	t.Helper()
	b, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, out))
}

func errorCode(t *testing.T, resp events.APIGatewayProxyResponse) string {
	t.Helper()
	env := decodeEnvelope(t, resp)
	require.NotNil(t, env.Error, "expected error envelope, body: %s", resp.Body)
	return env.Error.Code
}

func postJSON(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{HTTPMethod: "POST", Body: body}
}

func (e *testEnv) upload(t *testing.T, req model.UploadRequest) model.UploadResponse {
	t.Helper()
	resp := e.h.Upload(context.Background(), postJSON(jsonBody(t, req)))
	require.Equal(t, 201, resp.StatusCode, "upload failed: %s", resp.Body)
	var out model.UploadResponse
	dataAs(t, decodeEnvelope(t, resp), &out)
	return out
}

func (e *testEnv) seedChecklist(t *testing.T, items ...model.ChecklistItem) {
	t.Helper()
	require.NoError(t, e.store.PutChecklist(context.Background(), &model.ChecklistConfig{
		Items:     items,
		UpdatedAt: "2026-08-27T00:00:00Z",
	}))
}

func checkedAll(ids ...string) *[]string {
	if ids == nil {
		ids = []string{}
	}
	return &ids
}

// failingDeleteStore wraps an ObjectStore so Delete always fails, to exercise
// the log-and-continue path in the admin delete handler.
type failingDeleteStore struct {
	objectstore.ObjectStore
}

func (failingDeleteStore) Delete(context.Context, string) error {
	return fmt.Errorf("bucket unavailable")
}
