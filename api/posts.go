package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mirsglobal/website/internal/content"
	"github.com/mirsglobal/website/internal/models"
	"github.com/mirsglobal/website/pkg/repository"
)

type PostsHandler struct {
	repo repository.PostRepo
}

func NewPostsHandler(repo repository.PostRepo) *PostsHandler {
	return &PostsHandler{repo: repo}
}

type postRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

type postListResponse struct {
	Total int               `json:"total"`
	Items []models.BlogPost `json:"items"`
}

// List returns all posts, newest first.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.repo.ListPosts(r.Context())
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	writeJSON(w, postListResponse{Total: len(posts), Items: posts}, http.StatusOK)
}

func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	post, err := h.repo.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if post == nil {
		writeError(w, "post not found", http.StatusNotFound)
		return
	}
	writeJSON(w, post, http.StatusOK)
}

// Create stores a new post. The read time is derived from the content on
// every write, never accepted from the client.
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		writeError(w, "Missing fields", http.StatusBadRequest)
		return
	}

	now := time.Now().UTC().UnixMilli()
	post := &models.BlogPost{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
		Author:      req.Author,
		Category:    req.Category,
		Image:       req.Image,
		ReadTime:    content.ReadTime(req.Content),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.CreatePost(r.Context(), post); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, post, http.StatusCreated)
}

// Update replaces the editable fields of an existing post and recomputes
// the read time. CreatedAt is preserved, UpdatedAt is stamped.
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		writeError(w, "Missing fields", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if existing == nil {
		writeError(w, "post not found", http.StatusNotFound)
		return
	}

	post := &models.BlogPost{
		ID:          id,
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
		Author:      req.Author,
		Category:    req.Category,
		Image:       req.Image,
		ReadTime:    content.ReadTime(req.Content),
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC().UnixMilli(),
	}

	if err := h.repo.UpdatePost(r.Context(), post); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, post, http.StatusOK)
}

func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.repo.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if existing == nil {
		writeError(w, "post not found", http.StatusNotFound)
		return
	}

	if err := h.repo.DeletePost(r.Context(), id); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"success": true}, http.StatusOK)
}
