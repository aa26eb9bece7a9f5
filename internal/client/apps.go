package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/cloudlift-io/cloudlift-client/internal/http"
	"github.com/cloudlift-io/cloudlift-client/pkg/cloudlift"
)

const defaultArchiveName = "app.zip"

// AppsClient implements cloudlift.AppsClient.
type AppsClient struct {
	httpClient *http.Client
}

// NewAppsClient creates a new apps client.
func NewAppsClient(httpClient *http.Client) *AppsClient {
	return &AppsClient{
		httpClient: httpClient,
	}
}

// List implements cloudlift.AppsClient.List.
func (c *AppsClient) List(ctx context.Context) ([]cloudlift.App, error) {
	resp, err := c.httpClient.Get(ctx, "/apps", nil)
	if err != nil {
		return nil, fmt.Errorf("listing apps: %w", err)
	}

	var apps []cloudlift.App
	if err := decodeBody(resp, "/apps", &apps); err != nil {
		return nil, fmt.Errorf("parsing apps list response: %w", err)
	}

	return apps, nil
}

// Get implements cloudlift.AppsClient.Get.
func (c *AppsClient) Get(ctx context.Context, appID string) (*cloudlift.App, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/apps/%s", url.PathEscape(appID))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting app: %w", err)
	}

	var app cloudlift.App
	if err := decodeBody(resp, path, &app); err != nil {
		return nil, fmt.Errorf("parsing app response: %w", err)
	}

	return &app, nil
}

// Logs implements cloudlift.AppsClient.Logs.
func (c *AppsClient) Logs(ctx context.Context, appID string) (*cloudlift.AppLogs, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/apps/%s/logs", url.PathEscape(appID))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting app logs: %w", err)
	}

	var logs cloudlift.AppLogs
	if err := decodeBody(resp, path, &logs); err != nil {
		return nil, fmt.Errorf("parsing logs response: %w", err)
	}

	return &logs, nil
}

// Stats implements cloudlift.AppsClient.Stats.
func (c *AppsClient) Stats(ctx context.Context, appID string) (*cloudlift.AppStats, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/apps/%s/stats", url.PathEscape(appID))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting app stats: %w", err)
	}

	var stats cloudlift.AppStats
	if err := decodeBody(resp, path, &stats); err != nil {
		return nil, fmt.Errorf("parsing stats response: %w", err)
	}

	return &stats, nil
}

// Upload implements cloudlift.AppsClient.Upload. The archive and optional
// fields are sent as one multipart form.
func (c *AppsClient) Upload(ctx context.Context, request *cloudlift.UploadRequest) (*cloudlift.App, error) {
	if request == nil || len(request.File) == 0 {
		return nil, cloudlift.NewValidationError("upload file is required")
	}

	body, contentType, err := buildUploadForm(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.PostRaw(ctx, "/apps/upload", body, contentType)
	if err != nil {
		return nil, fmt.Errorf("uploading app: %w", err)
	}

	var app cloudlift.App
	if err := decodeBody(resp, "/apps/upload", &app); err != nil {
		return nil, fmt.Errorf("parsing app response: %w", err)
	}

	return &app, nil
}

// Start implements cloudlift.AppsClient.Start.
func (c *AppsClient) Start(ctx context.Context, appID string) (*cloudlift.App, error) {
	return c.action(ctx, appID, "start", "starting app")
}

// Stop implements cloudlift.AppsClient.Stop.
func (c *AppsClient) Stop(ctx context.Context, appID string) (*cloudlift.App, error) {
	return c.action(ctx, appID, "stop", "stopping app")
}

// Restart implements cloudlift.AppsClient.Restart.
func (c *AppsClient) Restart(ctx context.Context, appID string) (*cloudlift.App, error) {
	return c.action(ctx, appID, "restart", "restarting app")
}

// Rebuild implements cloudlift.AppsClient.Rebuild.
func (c *AppsClient) Rebuild(ctx context.Context, appID string) (*cloudlift.App, error) {
	return c.action(ctx, appID, "rebuild", "rebuilding app")
}

// Delete implements cloudlift.AppsClient.Delete.
func (c *AppsClient) Delete(ctx context.Context, appID string) (*cloudlift.DeleteResult, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/apps/%s/delete", url.PathEscape(appID))

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting app: %w", err)
	}

	var result cloudlift.DeleteResult
	if err := decodeBody(resp, path, &result); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &result, nil
}

// action performs a no-body lifecycle action and decodes the updated app.
func (c *AppsClient) action(ctx context.Context, appID, action, doing string) (*cloudlift.App, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/apps/%s/%s", url.PathEscape(appID), action)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doing, err)
	}

	var app cloudlift.App
	if err := decodeBody(resp, path, &app); err != nil {
		return nil, fmt.Errorf("parsing app response: %w", err)
	}

	return &app, nil
}

// decodeBody parses a success body into out. A body that does not match the
// documented payload is classified as an api error so every failure the
// client returns carries a kind.
func decodeBody(resp *http.Response, path string, out interface{}) error {
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return cloudlift.NewDecodeError(resp.StatusCode, resp.Body, path, err)
	}

	return nil
}

// buildUploadForm encodes the archive and the optional scalar fields into a
// multipart body. The name field is omitted entirely when unset.
func buildUploadForm(request *cloudlift.UploadRequest) ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	fileName := request.FileName
	if fileName == "" {
		fileName = defaultArchiveName
	}

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, "", fmt.Errorf("creating form file: %w", err)
	}

	if _, err := part.Write(request.File); err != nil {
		return nil, "", fmt.Errorf("writing file to form: %w", err)
	}

	if request.Name != "" {
		if err := writer.WriteField("name", request.Name); err != nil {
			return nil, "", fmt.Errorf("writing name field: %w", err)
		}
	}

	for field, value := range request.Extra {
		if err := writer.WriteField(field, value); err != nil {
			return nil, "", fmt.Errorf("writing %s field: %w", field, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

// validateAppID rejects empty identifiers before any network activity.
func validateAppID(appID string) error {
	if strings.TrimSpace(appID) == "" {
		return cloudlift.NewValidationError("app id is required")
	}

	return nil
}
