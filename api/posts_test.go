package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/mirsglobal/website/api"
	"github.com/mirsglobal/website/internal/models"
	"github.com/mirsglobal/website/pkg/repository/mock"
)

func postsRouter(h *api.PostsHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/posts", h.List).Methods("GET")
	r.HandleFunc("/v1/posts/{id}", h.Get).Methods("GET")
	r.HandleFunc("/v1/admin/posts", h.Create).Methods("POST")
	r.HandleFunc("/v1/admin/posts/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/v1/admin/posts/{id}", h.Delete).Methods("DELETE")
	return r
}

func seedPost(id, title string, createdAt int64) models.BlogPost {
	return models.BlogPost{
		ID:        id,
		Title:     title,
		Content:   "<p>some content</p>",
		Author:    "Admin",
		Category:  "News",
		ReadTime:  "1 min read",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestListPosts(t *testing.T) {
	mocks := mock.NewMocks()
	now := time.Now().UnixMilli()
	mocks.Posts.Stored = []models.BlogPost{
		seedPost("p2", "Newer", now),
		seedPost("p1", "Older", now-1000),
	}
	router := postsRouter(api.NewPostsHandler(mocks.Posts))

	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var body struct {
		Total int               `json:"total"`
		Items []models.BlogPost `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Total != 2 || len(body.Items) != 2 {
		t.Fatalf("expected 2 posts got total=%d items=%d", body.Total, len(body.Items))
	}
}

func TestListPostsEmpty(t *testing.T) {
	mocks := mock.NewMocks()
	router := postsRouter(api.NewPostsHandler(mocks.Posts))

	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	data, _ := io.ReadAll(w.Result().Body)
	if !bytes.Contains(data, []byte(`"items":[]`)) {
		t.Fatalf("expected empty items array, got %s", string(data))
	}
}

func TestGetPost(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.Posts.Stored = []models.BlogPost{seedPost("p1", "Hello", time.Now().UnixMilli())}
	router := postsRouter(api.NewPostsHandler(mocks.Posts))

	t.Run("Found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/posts/p1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		res := w.Result()
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 got %d", res.StatusCode)
		}
		var post models.BlogPost
		if err := json.NewDecoder(res.Body).Decode(&post); err != nil {
			t.Fatalf("decode post: %v", err)
		}
		if post.Title != "Hello" {
			t.Fatalf("unexpected post %+v", post)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/posts/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", w.Result().StatusCode)
		}
	})
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		prepare    func(m *mock.Mocks)
		wantStatus int
	}{
		{
			name:       "InvalidRequest",
			body:       "nope",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingTitle",
			body:       map[string]string{"content": "body text"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingContent",
			body:       map[string]string{"title": "A Title"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "StoreError",
			body: map[string]string{"title": "A Title", "content": "body text"},
			prepare: func(m *mock.Mocks) {
				m.Posts.CreateErr = errors.New("disk full")
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "Success",
			body: map[string]string{
				"title":       "A Title",
				"content":     "<p>" + strings.Repeat("word ", 450) + "</p>",
				"description": "A short summary",
				"author":      "Admin",
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			if tt.prepare != nil {
				tt.prepare(mocks)
			}
			router := postsRouter(api.NewPostsHandler(mocks.Posts))

			b, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/v1/admin/posts", bytes.NewReader(b))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()
			data, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d got %d body=%s", tt.wantStatus, res.StatusCode, string(data))
			}
			if tt.wantStatus != http.StatusCreated {
				return
			}

			var post models.BlogPost
			if err := json.Unmarshal(data, &post); err != nil {
				t.Fatalf("decode post: %v", err)
			}
			if post.ID == "" || post.CreatedAt == 0 || post.UpdatedAt == 0 {
				t.Fatalf("missing generated fields: %+v", post)
			}
			if post.Description != "A short summary" {
				t.Fatalf("description not round-tripped: %+v", post)
			}
			// 450 words at 200 wpm rounds up to 3 minutes
			if post.ReadTime != "3 min read" {
				t.Fatalf("expected derived read time, got %q", post.ReadTime)
			}
			if len(mocks.Posts.Stored) != 1 {
				t.Fatalf("post not persisted")
			}
			if mocks.Posts.Stored[0].Description != "A short summary" {
				t.Fatalf("description not stored: %+v", mocks.Posts.Stored[0])
			}
		})
	}
}

func TestUpdatePost(t *testing.T) {
	createdAt := time.Now().UnixMilli() - 60_000
	mocks := mock.NewMocks()
	mocks.Posts.Stored = []models.BlogPost{seedPost("p1", "Before", createdAt)}
	router := postsRouter(api.NewPostsHandler(mocks.Posts))

	t.Run("NotFound", func(t *testing.T) {
		b, _ := json.Marshal(map[string]string{"title": "After", "content": "new body"})
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/posts/missing", bytes.NewReader(b))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", w.Result().StatusCode)
		}
	})

	t.Run("Success", func(t *testing.T) {
		b, _ := json.Marshal(map[string]string{
			"title":       "After",
			"content":     "new body text here",
			"description": "Refreshed summary",
		})
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/posts/p1", bytes.NewReader(b))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		res := w.Result()
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			data, _ := io.ReadAll(res.Body)
			t.Fatalf("expected 200 got %d body=%s", res.StatusCode, string(data))
		}

		updated := mocks.Posts.Stored[0]
		if updated.Title != "After" {
			t.Fatalf("title not updated: %+v", updated)
		}
		if updated.Description != "Refreshed summary" {
			t.Fatalf("description not updated: %+v", updated)
		}
		if updated.CreatedAt != createdAt {
			t.Fatalf("created_at changed on update")
		}
		if updated.UpdatedAt <= createdAt {
			t.Fatalf("updated_at not stamped")
		}
	})
}

func TestDeletePost(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.Posts.Stored = []models.BlogPost{seedPost("p1", "Doomed", time.Now().UnixMilli())}
	router := postsRouter(api.NewPostsHandler(mocks.Posts))

	t.Run("NotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/posts/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", w.Result().StatusCode)
		}
	})

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/posts/p1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		res := w.Result()
		data, _ := io.ReadAll(res.Body)
		res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 got %d", res.StatusCode)
		}
		if !bytes.Contains(data, []byte(`"success":true`)) {
			t.Fatalf("unexpected body: %s", string(data))
		}
		if len(mocks.Posts.Stored) != 0 {
			t.Fatalf("post not removed")
		}
	})
}
