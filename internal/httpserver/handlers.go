package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/pkg/errors"
)

type curateRequest struct {
	Hashtags string `json:"hashtags"`
}

type queueRequest struct {
	Post           domain.Post `json:"post"`
	StoreMediaCopy bool        `json:"storeMediaCopy"`
}

type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func handleHealthz(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte("ok")); err != nil {
			deps.Logger.Error("Failed to write response", "Error", err)
		}
	}
}

func handleCurate(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

		var req curateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}

		result := deps.Curator.FetchAndScore(r.Context(), req.Hashtags)
		status := http.StatusOK
		if !result.Success {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, result)
	}
}

func handleQueuePost(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

		var req queueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}

		result := deps.Curator.QueuePost(r.Context(), req.Post, req.StoreMediaCopy)
		writeJSON(w, queueStatus(result), result)
	}
}

func queueStatus(result domain.ActionResult) int {
	if result.Success {
		return http.StatusOK
	}
	switch result.Code {
	case errors.CodeAlreadyQueued:
		return http.StatusConflict
	case errors.CodeInvalidPost:
		return http.StatusBadRequest
	case errors.CodeMediaFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func handleListQueue(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := deps.Dashboard.QueuedPosts(r.Context())
		if err != nil {
			deps.Logger.Error("Failed to load queue view", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load queued posts.")
			return
		}
		writeJSON(w, http.StatusOK, posts)
	}
}

func handleListLogs(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			limit = n
		}

		entries, err := deps.Dashboard.RepostLogs(r.Context(), limit)
		if err != nil {
			deps.Logger.Error("Failed to load log view", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load repost logs.")
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func handleRepostLog(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

		var outcome domain.RepostOutcome
		if err := json.NewDecoder(r.Body).Decode(&outcome); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}
		if outcome.QueuedPostID == "" || outcome.Status == "" {
			writeError(w, http.StatusBadRequest, "Missing queuedPostId or status")
			return
		}

		if _, err := deps.Repost.RecordOutcome(r.Context(), outcome); err != nil {
			switch {
			case errors.Is(err, errors.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.IsNotFound(err):
				writeError(w, http.StatusNotFound, "Queued post not found.")
			default:
				deps.Logger.Error("Failed to record repost outcome", "queued_post_id", outcome.QueuedPostID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal Server Error: "+err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, webhookResponse{Success: true, Message: "Log updated successfully."})
	}
}
