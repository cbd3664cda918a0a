package asana

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDispatcher builds a dispatcher pointed at a mock server, with fast
// retries so failure tests stay quick.
func newTestDispatcher(t *testing.T, baseURL string) *Dispatcher {
	t.Helper()

	d, err := NewDispatcher(&Config{
		BaseURL:     baseURL,
		AccessToken: "test-token",
		Timeout:     5 * time.Second,
		MaxRetries:  2,
		RetryDelay:  1 * time.Millisecond,
		Logger:      hclog.NewNullLogger(),
	})
	require.NoError(t, err)
	return d
}

func TestDispatcher_Get(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/tasks/123", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"id": 123, "name": "Buy catnip"}}`))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)

	var task Task
	err := d.Get(context.Background(), "/tasks/123", nil, &task)
	require.NoError(t, err)

	assert.Equal(t, int64(123), task.ID)
	assert.Equal(t, "Buy catnip", task.Name)
}

func TestDispatcher_Get_Params(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "name,notes", r.URL.Query().Get("opt_fields"))
		w.Write([]byte(`{"data": {}}`))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)

	var task Task
	err := d.Get(context.Background(), "/tasks/123", map[string]string{"opt_fields": "name,notes"}, &task)
	require.NoError(t, err)
}

func TestDispatcher_Post_EnvelopesBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)

		// Request bodies are wrapped in the data envelope unchanged.
		assert.Equal(t, map[string]interface{}{
			"data": map[string]interface{}{"name": "x"},
		}, body)

		w.Write([]byte(`{"data": {"id": 1, "name": "x"}}`))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)

	var task Task
	err := d.Post(context.Background(), "/tasks", map[string]interface{}{"name": "x"}, &task)
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
}

func TestDispatcher_Delete_NoBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.Write([]byte(`{"data": {}}`))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)
	require.NoError(t, d.Delete(context.Background(), "/tasks/7"))
}

func TestDispatcher_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"errors": [{"message": "Server error"}]}`))
			return
		}
		w.Write([]byte(`{"data": {"id": 9}}`))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)

	var task Task
	err := d.Get(context.Background(), "/tasks/9", nil, &task)
	require.NoError(t, err)
	assert.Equal(t, int64(9), task.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDispatcher_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors": [{"message": "Missing input: name"}]}`))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)

	var task Task
	err := d.Post(context.Background(), "/tasks", map[string]interface{}{}, &task)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "client errors must not be retried")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "Missing input: name", apiErr.Errors[0].Message)
}

func TestDispatcher_RetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)

	err := d.Get(context.Background(), "/tasks/1", nil, nil)
	require.Error(t, err)
	// Initial attempt plus MaxRetries retries.
	assert.Equal(t, int32(3), calls.Load())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Recoverable())
}

func TestDispatcher_GetCollection_Paginates(t *testing.T) {
	var calls atomic.Int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("assignee"))

		switch calls.Add(1) {
		case 1:
			assert.Empty(t, r.URL.Query().Get("offset"))
			w.Write([]byte(`{
				"data": [{"id": 1, "name": "first"}, {"id": 2, "name": "second"}],
				"next_page": {"offset": "abc123", "path": "/tasks?offset=abc123"}
			}`))
		case 2:
			assert.Equal(t, "abc123", r.URL.Query().Get("offset"))
			w.Write([]byte(`{"data": [{"id": 3, "name": "third"}], "next_page": null}`))
		}
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)

	var tasks []Task
	err := d.GetCollection(context.Background(), "/tasks", map[string]string{"assignee": "42"}, &tasks)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, tasks, 3)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, "third", tasks[2].Name)
}

func TestDispatcher_GetCollection_SinglePage(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)

	var tasks []Task
	err := d.GetCollection(context.Background(), "/tasks", nil, &tasks)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDispatcher_ContextCancellation(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.Write([]byte(`{"data": {}}`))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := d.Get(ctx, "/tasks/1", nil, nil)
	require.Error(t, err)
}

func TestDispatcher_UnparseableErrorBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("access denied"))
	}))
	defer mockServer.Close()

	d := newTestDispatcher(t, mockServer.URL)

	err := d.Get(context.Background(), "/tasks/1", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Empty(t, apiErr.Errors)
	assert.Contains(t, apiErr.Error(), "access denied")
}
