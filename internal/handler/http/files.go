package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/service"
	"github.com/MKhiriev/go-secure-store/internal/utils"
	"github.com/MKhiriev/go-secure-store/models"
	"github.com/go-chi/chi/v5"
)

// maxUploadMemory bounds how much of a multipart body is held in memory
// before spilling to disk. Individual file size limits are enforced per
// bucket by the upload pipeline.
const maxUploadMemory = 64 << 20

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Str("func", "*Handler.uploadFile").Msg("invalid multipart form")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid multipart form"}, http.StatusBadRequest)
		return
	}

	formFile, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadFile").Msg("missing file field")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "No file provided"}, http.StatusBadRequest)
		return
	}
	defer func() { _ = formFile.Close() }()

	data, err := io.ReadAll(formFile)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadFile").Msg("error reading uploaded file")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Upload failed: " + err.Error()}, http.StatusInternalServerError)
		return
	}

	opts := models.OptionsForBucket(r.FormValue("bucket"))

	// form flags can only tighten the bucket policy, never relax it
	if r.FormValue("encrypt") == "true" {
		opts.EncryptFile = true
	}
	if r.FormValue("virusScan") == "true" {
		opts.VirusScan = true
	}
	if r.FormValue("adminOnly") == "true" {
		opts.AdminOnly = true
	}

	file := models.UploadedFile{
		Name: header.Filename,
		Size: header.Size,
		Type: header.Header.Get("Content-Type"),
		Data: data,
	}

	isAdmin := utils.GetAdminFromContext(r.Context())

	outcome, err := h.services.FileService.Upload(r.Context(), file, opts, isAdmin)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadFile").Str("bucket", opts.Bucket).Msg("upload pipeline failed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{
			Error:      outcome.Error,
			ScanResult: outcome.ScanResult,
		}, statusFromError(err))
		return
	}

	if !outcome.Success {
		log.Warn().Str("func", "*Handler.uploadFile").Str("bucket", opts.Bucket).Str("reason", outcome.Error).Msg("upload rejected")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{
			Error:      outcome.Error,
			ScanResult: outcome.ScanResult,
		}, http.StatusBadRequest)
		return
	}

	_, _ = utils.WriteJSON(w, models.UploadResponse{
		Success:           true,
		URL:               outcome.URL,
		FileName:          outcome.FileName,
		EncryptedFileName: outcome.EncryptedFileName,
		Size:              outcome.Size,
		Type:              outcome.Type,
		ScanResult:        outcome.ScanResult,
		Security: models.UploadSecurity{
			Encrypted:    opts.EncryptFile,
			VirusScanned: opts.VirusScan,
			IsClean:      outcome.ScanResult == nil || outcome.ScanResult.IsClean,
		},
	}, http.StatusOK)
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bucket := chi.URLParam(r, "bucket")
	name := chi.URLParam(r, "name")
	encrypted := r.URL.Query().Get("encrypted") == "true"

	body, err := h.services.FileService.Download(r.Context(), bucket, name, encrypted)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadFile").Str("bucket", bucket).Str("object", name).Msg("error downloading file")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(body)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !utils.GetAdminFromContext(r.Context()) {
		log.Warn().Str("func", "*Handler.deleteFile").Msg("file deletion rejected: admin required")
		http.Error(w, service.ErrAdminRequired.Error(), http.StatusForbidden)
		return
	}

	bucket := chi.URLParam(r, "bucket")
	name := chi.URLParam(r, "name")

	if err := h.services.FileService.Delete(r.Context(), bucket, name); err != nil {
		log.Err(err).Str("func", "*Handler.deleteFile").Str("bucket", bucket).Str("object", name).Msg("error deleting file")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
