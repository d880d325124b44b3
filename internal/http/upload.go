package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/pruthviraj0106/adultplatform/internal/media"
)

const multipartMemoryLimit = 32 << 20

// parseUpload bounds the request body and parses the multipart form. The
// cleanup func removes multipart temp files and must run whether or not the
// database insert succeeds.
func (s *Server) parseUpload(w http.ResponseWriter, r *http.Request) (cleanup func(), ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.UploadLimitBytes)
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Upload exceeds size limit")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, false
	}
	return func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}, true
}

func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	cleanup, ok := s.parseUpload(w, r)
	if !ok {
		return
	}
	defer cleanup()

	title := r.FormValue("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	colTier := r.FormValue("tier")
	if colTier == "" {
		colTier = "BASIC"
	}
	price := 0.0
	if raw := r.FormValue("price"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid price")
			return
		}
		price = parsed
	}

	thumbnail, err := media.FormFileBytes(r, "thumbnail")
	if err != nil {
		if errors.Is(err, media.ErrMissingFile) {
			writeError(w, http.StatusBadRequest, "Thumbnail image is required")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error processing thumbnail file")
		return
	}

	collection, err := s.store.CreateCollection(r.Context(), title, r.FormValue("description"), thumbnail, colTier, r.FormValue("type"), price)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating collection")
		return
	}
	s.materializeCollection(&collection)
	writeJSON(w, http.StatusOK, map[string]interface{}{"collection": collection})
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	cleanup, ok := s.parseUpload(w, r)
	if !ok {
		return
	}
	defer cleanup()

	title := r.FormValue("title")
	collectionRaw := r.FormValue("collection_id")
	if title == "" || collectionRaw == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	collectionID, err := strconv.Atoi(collectionRaw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if _, err := s.store.GetCollection(r.Context(), collectionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Collection not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error creating post")
		return
	}

	postType := r.FormValue("type")
	if postType == "" {
		postType = "Video"
	}

	thumbnail, err := media.FormFileBytes(r, "image")
	if err != nil {
		if errors.Is(err, media.ErrMissingFile) {
			writeError(w, http.StatusBadRequest, "Thumbnail image is required")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error processing image file")
		return
	}

	video, err := media.FormFileBytes(r, "video")
	if err != nil && !errors.Is(err, media.ErrMissingFile) {
		writeError(w, http.StatusInternalServerError, "Error processing video file")
		return
	}
	if postType == "Video" && len(video) == 0 {
		writeError(w, http.StatusBadRequest, "Video file is required for video type")
		return
	}

	var duration *string
	if postType == "Video" {
		zero := "00:00"
		duration = &zero
	}

	post, err := s.store.CreatePost(r.Context(), collectionID, title, r.FormValue("description"), thumbnail, video, postType, duration)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating post")
		return
	}
	s.materializePost(&post)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Post created successfully",
		"success": true,
		"post":    post,
	})
}

func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	s.handleRawUpload(w, r, "image", "jpg", "No image file uploaded", "Image uploaded successfully")
}

func (s *Server) handleUploadVideo(w http.ResponseWriter, r *http.Request) {
	s.handleRawUpload(w, r, "video", "mp4", "No video file uploaded", "Video uploaded successfully")
}

func (s *Server) handleRawUpload(w http.ResponseWriter, r *http.Request, field, ext, missingMsg, okMsg string) {
	cleanup, ok := s.parseUpload(w, r)
	if !ok {
		return
	}
	defer cleanup()

	data, err := media.FormFileBytes(r, field)
	if err != nil {
		if errors.Is(err, media.ErrMissingFile) {
			writeError(w, http.StatusBadRequest, missingMsg)
			return
		}
		writeError(w, http.StatusInternalServerError, "Error processing upload")
		return
	}

	url, err := s.media.Materialize("upload-"+field, data, ext)
	if err != nil || url == "" {
		writeError(w, http.StatusInternalServerError, "Error processing upload")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  okMsg,
		"success":  true,
		"filePath": url,
	})
}
