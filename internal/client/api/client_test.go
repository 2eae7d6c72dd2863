package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorypro/cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, testLogger())
	require.NoError(t, err)
	return c, srv
}

func TestCall_MalformedJSON_ProtocolError(t *testing.T) {
	bodies := []string{
		"<html>Fatal error</html>",
		"Warning: mysqli_connect(): in /api/db.php on line 3\n{\"success\":true}",
		"",
		"{truncated",
	}
	for _, raw := range bodies {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, raw)
		})

		err := c.Call(context.Background(), "products/get", http.MethodPost, nil, nil)

		var pe *ProtocolError
		require.ErrorAs(t, err, &pe, "body %q", raw)
		assert.Equal(t, raw, pe.Raw)
		assert.Equal(t, "server returned invalid JSON", pe.Error())
	}
}

func TestCall_HTTPFailure_APIError(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		wantMsg string
	}{
		{401, `{"success":false,"message":"Session expired"}`, "Session expired"},
		{500, `{"success":false}`, "HTTP error, status=500"},
		{404, `"not here"`, "HTTP error, status=404"},
		{503, `[1,2,3]`, "HTTP error, status=503"},
	}
	for _, tc := range tests {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = io.WriteString(w, tc.body)
		})

		err := c.Call(context.Background(), "products/get", http.MethodPost, nil, nil)

		var ae *APIError
		require.ErrorAs(t, err, &ae, "status %d body %q", tc.status, tc.body)
		assert.Equal(t, tc.status, ae.Status)
		assert.Equal(t, tc.wantMsg, ae.Error())
	}
}

func TestCall_TransportFailure_ErrUnavailable(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	err := c.Call(context.Background(), "products/get", http.MethodPost, nil, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCall_BodySerializationAndHeaders(t *testing.T) {
	var gotContentType, gotReqID, gotBody string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotReqID = r.Header.Get("X-Request-Id")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	err := c.Call(context.Background(), "auth/login", http.MethodPost,
		map[string]string{"email": "a@b.io"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotReqID)
	assert.JSONEq(t, `{"email":"a@b.io"}`, gotBody)
}

func TestCall_NoBody_NoContentType(t *testing.T) {
	var gotContentType string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	err := c.Call(context.Background(), "notifications/get", http.MethodPost, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotContentType)
}

func TestCall_DecodesIntoOut(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"message":"ok","data":[{"id":7,"name":"Beans"}]}`)
	})

	var out struct {
		Envelope
		Data []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	err := c.Call(context.Background(), "products/get", http.MethodPost, nil, &out)
	require.NoError(t, err)
	assert.True(t, out.Success)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Beans", out.Data[0].Name)
}

func TestCall_SessionCookiePersists(t *testing.T) {
	calls := 0
	var secondCookie string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.SetCookie(w, &http.Cookie{Name: "PHPSESSID", Value: "abc123", Path: "/"})
		} else {
			if ck, err := r.Cookie("PHPSESSID"); err == nil {
				secondCookie = ck.Value
			}
		}
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	ctx := context.Background()
	require.NoError(t, c.Call(ctx, "auth/login", http.MethodPost, nil, nil))
	require.NoError(t, c.Call(ctx, "user/get", http.MethodPost, nil, nil))

	assert.Equal(t, "abc123", secondCookie)
}

func TestEnvelope_Err(t *testing.T) {
	assert.NoError(t, Envelope{Success: true}.Err())

	err := Envelope{Success: false, Message: "Invalid code"}.Err()
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Invalid code", ae.Message)
	assert.Zero(t, ae.Status)

	err = Envelope{}.Err()
	assert.EqualError(t, err, "request failed")
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{Status: 401}))
	assert.True(t, IsUnauthorized(&APIError{Status: 403}))
	assert.False(t, IsUnauthorized(&APIError{Status: 500}))
	assert.False(t, IsUnauthorized(&APIError{}))
	assert.False(t, IsUnauthorized(errors.New("plain")))
	assert.False(t, IsUnauthorized(nil))
}
