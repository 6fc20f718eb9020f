package server

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-intake/internal/db"
	"github.com/jonathan/resume-intake/internal/server/middleware"
)

// uploadFieldName is the multipart form field carrying the resume file.
const uploadFieldName = "file"

// resumeResponse is the API representation of a stored resume.
type resumeResponse struct {
	ID       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	FileSize int64     `json:"file_size"`
	Record   any       `json:"record"`
}

// handleUploadResume accepts a multipart resume upload, parses it into a
// structured record, and stores the result.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	maxBytes := int64(s.uploadPolicy.MaxFileSize)
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "upload too large or malformed")
		return
	}

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	if err := s.uploadPolicy.ValidateUpload(header.Filename, content); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, err := s.parser.Parse(r.Context(), content, header.Filename)
	if err != nil {
		s.log.Warn("resume parse failed",
			zap.String("filename", header.Filename),
			zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.db.SaveResume(r.Context(), userID, header.Filename, int64(len(content)), record)
	if err != nil {
		s.log.Error("saving resume", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to save resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, resumeResponse{
		ID:       id,
		Filename: header.Filename,
		FileSize: int64(len(content)),
		Record:   record,
	})
}

// handleListResumes returns resume summaries for the authenticated user.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID, 0)
	if err != nil {
		s.log.Error("listing resumes", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}
	if resumes == nil {
		resumes = []db.ResumeSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetResume returns a stored resume with its parsed record.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return
	}

	stored, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		s.log.Error("getting resume", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to get resume")
		return
	}
	if stored == nil || stored.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleDeleteResume deletes a resume owned by the authenticated user.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return
	}

	if err := s.db.DeleteResume(r.Context(), resumeID, userID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
