package http

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/service/pdf"
	"github.com/argus-lab/argus/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// multipartMemoryLimit bounds the in-memory portion of multipart parsing
const multipartMemoryLimit = 4 << 20

// ReviewHandler handles upload and report download endpoints
type ReviewHandler struct {
	reviewUC usecase.ReviewUseCase
	renderer *pdf.Renderer
}

// NewReviewHandler creates a review handler. renderer may be nil when PDF
// export is disabled.
func NewReviewHandler(reviewUC usecase.ReviewUseCase, renderer *pdf.Renderer) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: reviewUC,
		renderer: renderer,
	}
}

// HandleUpload reviews a single uploaded file
func (h *ReviewHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		writeError(w, goerr.Wrap(err, "failed to parse multipart form"), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, goerr.Wrap(err, "file field is required"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	upload, err := readUpload(file, header)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	result, err := h.reviewUC.ReviewFile(r.Context(), upload, exportPDFRequested(r))
	if err != nil {
		writeError(w, err, statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleUploadMultiple reviews a batch of uploaded files
func (h *ReviewHandler) HandleUploadMultiple(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		writeError(w, goerr.Wrap(err, "failed to parse multipart form"), http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, goerr.New("files field is required"), http.StatusBadRequest)
		return
	}

	uploads := make([]model.FileUpload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			writeError(w, goerr.Wrap(err, "failed to open uploaded file",
				goerr.V("filename", header.Filename)), http.StatusBadRequest)
			return
		}

		upload, err := readUpload(file, header)
		_ = file.Close()
		if err != nil {
			writeError(w, err, http.StatusBadRequest)
			return
		}
		uploads = append(uploads, upload)
	}

	results, err := h.reviewUC.ReviewFiles(r.Context(), uploads, exportPDFRequested(r))
	if err != nil {
		writeError(w, err, statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// HandleDownloadPDF serves a generated PDF report
func (h *ReviewHandler) HandleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	if h.renderer == nil {
		writeError(w, goerr.New("PDF export is disabled"), http.StatusServiceUnavailable)
		return
	}

	name := chi.URLParam(r, "filename")
	path := h.renderer.Path(name)
	if _, err := os.Stat(path); err != nil {
		writeError(w, goerr.Wrap(model.ErrReportNotFound, "no such report",
			goerr.V("filename", name)), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, path)
}

// HandleSupportedFormats lists the upload constraints
func (h *ReviewHandler) HandleSupportedFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reviewUC.SupportedFormats())
}

func readUpload(file multipart.File, header *multipart.FileHeader) (model.FileUpload, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return model.FileUpload{}, goerr.Wrap(err, "failed to read uploaded file",
			goerr.V("filename", header.Filename))
	}
	return model.FileUpload{
		Filename: header.Filename,
		Content:  content,
	}, nil
}

func exportPDFRequested(r *http.Request) bool {
	raw := r.URL.Query().Get("export_pdf")
	if raw == "" {
		return false
	}
	requested, err := strconv.ParseBool(raw)
	if err != nil {
		ctxlog.From(r.Context()).Debug("Ignoring invalid export_pdf parameter", "value", raw)
		return false
	}
	return requested
}
