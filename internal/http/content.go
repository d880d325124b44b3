package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/pruthviraj0106/adultplatform/internal/auth"
	"github.com/pruthviraj0106/adultplatform/internal/model"
	"github.com/pruthviraj0106/adultplatform/internal/tier"
)

// materializeCollection fills ThumbnailURL. A failed write degrades that one
// item to a null URL instead of failing the whole response.
func (s *Server) materializeCollection(col *model.Collection) {
	url, err := s.media.Materialize(fmt.Sprintf("collection-thumb-%d", col.ID), col.Thumbnail, "jpg")
	if err != nil {
		s.log.Warn().Err(err).Int("collection", col.ID).Msg("thumbnail materialize failed")
		return
	}
	if url != "" {
		col.ThumbnailURL = &url
	}
}

func (s *Server) materializePost(post *model.Post) {
	url, err := s.media.Materialize(fmt.Sprintf("post-thumb-%d", post.ID), post.Thumbnail, "jpg")
	if err != nil {
		s.log.Warn().Err(err).Int("post", post.ID).Msg("thumbnail materialize failed")
	} else if url != "" {
		post.ThumbnailURL = &url
	}

	url, err = s.media.Materialize(fmt.Sprintf("post-video-%d", post.ID), post.Video, "mp4")
	if err != nil {
		s.log.Warn().Err(err).Int("post", post.ID).Msg("video materialize failed")
	} else if url != "" {
		post.VideoURL = &url
	}
}

// viewerOrdinal resolves the requester's access level: admins see everything,
// users get their plan's ordinal, everyone else is pinned to Basic-only.
func (s *Server) viewerOrdinal(r *http.Request) int {
	session, err := s.authenticate(r)
	if err != nil {
		return tier.AnonymousOrdinal()
	}
	if session.Role == auth.RoleAdmin {
		return tier.Hardcore
	}
	user, err := s.store.GetUserByUsername(r.Context(), session.Username)
	if err != nil {
		return tier.AnonymousOrdinal()
	}
	return tier.PlanOrdinal(user.SubscriptionStatus)
}

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := s.store.ListCollections(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching collections")
		return
	}
	for i := range collections {
		s.materializeCollection(&collections[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"collection": collections,
		"success":    true,
	})
}

func (s *Server) handleCollectionPosts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Collection not found")
		return
	}

	collection, err := s.store.GetCollection(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Collection not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error fetching collection posts")
		return
	}

	if !tier.CanAccess(s.viewerOrdinal(r), tier.ContentOrdinal(collection.Tier)) {
		writeError(w, http.StatusForbidden, "Subscription tier does not allow access to this collection")
		return
	}

	posts, err := s.store.ListPostsByCollection(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching collection posts")
		return
	}

	for i := range posts {
		s.materializePost(&posts[i])
	}
	s.materializeCollection(&collection)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"posts":      posts,
		"collection": collection,
	})
}

func (s *Server) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Collection not found")
		return
	}
	if err := s.store.DeleteCollection(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Collection not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting collection")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Collection deleted successfully", "success": true})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.ListPosts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching posts")
		return
	}
	for i := range posts {
		s.materializePost(&posts[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"posts": posts, "success": true})
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	post, err := s.store.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error fetching post")
		return
	}
	s.materializePost(&post)
	writeJSON(w, http.StatusOK, map[string]interface{}{"post": post, "success": true})
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err := s.store.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Post deleted successfully", "success": true})
}

func (s *Server) handlePostImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}
	post, err := s.store.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Image not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error fetching image")
		return
	}
	url, err := s.media.Materialize(fmt.Sprintf("image-%d", post.ID), post.Thumbnail, "jpg")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching image")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"url": nullableURL(url)})
}

func (s *Server) handlePostVideo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Video not found")
		return
	}
	post, err := s.store.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Video not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error fetching video")
		return
	}
	url, err := s.media.Materialize(fmt.Sprintf("video-%d", post.ID), post.Video, "mp4")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching video")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"url": nullableURL(url)})
}

func (s *Server) handleSubscriptionPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.store.ListSubscriptionPlans(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching subscription plans")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"plans": plans})
}

func nullableURL(url string) interface{} {
	if url == "" {
		return nil
	}
	return url
}
