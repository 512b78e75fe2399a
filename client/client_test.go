package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"finshorts/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchArticles(t *testing.T) {
	var gotRefresh string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/news", r.URL.Path)
		gotRefresh = r.URL.Query().Get("refresh")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "1", "title": "Markets rally", "snippet": "Stocks rose.", "source": "Wire"},
			{"id": "2", "image_url": "https://example.com/i.png"}
		]`))
	}))
	defer server.Close()

	api := client.New(server.URL)

	articles, err := api.FetchArticles(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Markets rally", articles[0].Title)
	assert.Equal(t, "", gotRefresh)

	_, err = api.FetchArticles(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "true", gotRefresh)
}

func TestFetchArticlesFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				var httpErr *client.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not": "an array"`))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, client.ErrDecode)
			},
		},
		{
			name: "object instead of array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data": []}`))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, client.ErrDecode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := client.New(server.URL).FetchArticles(context.Background(), false)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestFetchArticlesConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Nothing listens anymore

	_, err := client.New(server.URL).FetchArticles(context.Background(), false)
	assert.ErrorIs(t, err, client.ErrNetwork)
}

func TestForceUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/news/update", r.URL.Path)
	}))
	defer server.Close()

	assert.NoError(t, client.New(server.URL).ForceUpdate(context.Background()))
}

func TestForceUpdateFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := client.New(server.URL).ForceUpdate(context.Background())
	var httpErr *client.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Status)

	server.Close()
	assert.ErrorIs(t, client.New(server.URL).ForceUpdate(context.Background()), client.ErrNetwork)
}
