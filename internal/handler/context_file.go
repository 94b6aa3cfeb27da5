package handler

import (
	"log/slog"
	"net/http"

	"github.com/planloop/planloop/internal/ctxkeys"
	"github.com/planloop/planloop/internal/service"
	"github.com/planloop/planloop/internal/validation"
)

type ContextFileHandler struct {
	contextFileService *service.ContextFileService
	maxUploadSize      int64
}

func NewContextFileHandler(contextFileService *service.ContextFileService, maxUploadSize int64) *ContextFileHandler {
	return &ContextFileHandler{
		contextFileService: contextFileService,
		maxUploadSize:      maxUploadSize,
	}
}

func (h *ContextFileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+1<<20)

	err := r.ParseMultipartForm(h.maxUploadSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() { _ = file.Close() }()

	err = validation.ValidateUpload(header, h.maxUploadSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	contextFile, err := h.contextFileService.Upload(user.ID, file, header)
	if err != nil {
		slog.Error("failed to upload context file", "error", err, "user_id", user.ID, "filename", header.Filename)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, contextFile)
}

func (h *ContextFileHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	contextFiles, err := h.contextFileService.ContextFiles(user.ID)
	if err != nil {
		slog.Error("failed to list context files", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, contextFiles)
}
