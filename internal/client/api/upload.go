package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type avatarResponse struct {
	Envelope
	AvatarURL string `json:"avatar_url"`
}

// UploadAvatar sends the avatar image as multipart/form-data and returns the
// stored avatar URL. This is the one endpoint that bypasses Call: the content
// type must come from the multipart writer so the boundary matches, never
// from a hand-set header.
func (c *Client) UploadAvatar(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy avatar data: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/upload-avatar", &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-Id", newRequestID())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{Status: resp.StatusCode, Message: string(raw), Body: raw}
	}

	var out avatarResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Error(ctx, "invalid JSON from server", "endpoint", "user/upload-avatar", "raw", string(raw))
		return "", &ProtocolError{Raw: string(raw), Err: err}
	}
	if err := out.Err(); err != nil {
		return "", err
	}
	return out.AvatarURL, nil
}
