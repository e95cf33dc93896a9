package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kelompok10/surveydash/internal/middleware"
	"github.com/kelompok10/surveydash/internal/services"
	"github.com/kelompok10/surveydash/internal/survey"
	"github.com/kelompok10/surveydash/internal/tabular"
	"github.com/kelompok10/surveydash/internal/utils"
)

const defaultMaxUpload = 20 << 20

// Build identifies the running binary on /health and /version.
type Build struct {
	Commit    string
	BuildTime string
}

type Router struct {
	svc       *services.AnalysisService
	logger    *zap.Logger
	maxUpload int64
	build     Build
}

func NewRouter(svc *services.AnalysisService, logger *zap.Logger, maxUpload int64, build Build) *Router {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{svc: svc, logger: logger, maxUpload: maxUpload, build: build}
}

func (rt *Router) Register(r chi.Router) {
	r.Get("/health", rt.handleHealth)
	r.Get("/version", rt.handleVersion)
	r.Route("/api", func(r chi.Router) {
		r.Get("/labels", rt.handleLabels)
		r.Post("/datasets/preview", rt.handlePreview)
		r.Post("/datasets/analyze", rt.handleAnalyze)
	})
}

// GET /health
func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"name":       "surveydash",
		"locale":     locale,
		"msg":        utils.T(locale, "health.ok"),
		"commit":     rt.build.Commit,
		"build_time": rt.build.BuildTime,
	})
}

// GET /version
func (rt *Router) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"commit":     rt.build.Commit,
		"build_time": rt.build.BuildTime,
	})
}

// GET /api/labels?lang=xx
func (rt *Router) handleLabels(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"locale": locale,
		"labels": utils.Labels(locale),
	})
}

// POST /api/datasets/preview (multipart: file)
func (rt *Router) handlePreview(w http.ResponseWriter, r *http.Request) {
	ds, err := rt.loadUpload(w, r)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rt.svc.Overview(ds, middleware.LocaleFromContext(r.Context())))
}

// POST /api/datasets/analyze (multipart: file, var..., charts)
func (rt *Router) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ds, err := rt.loadUpload(w, r)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	withCharts, _ := strconv.ParseBool(r.FormValue("charts"))
	rep, err := rt.svc.Analyze(ds, r.MultipartForm.Value["var"], middleware.LocaleFromContext(r.Context()), withCharts)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

var errUnreadable = errors.New("could not read the uploaded file")

func (rt *Router) loadUpload(w http.ResponseWriter, r *http.Request) (*services.Dataset, error) {
	r.Body = http.MaxBytesReader(w, r.Body, rt.maxUpload)
	if err := r.ParseMultipartForm(rt.maxUpload); err != nil {
		return nil, fmt.Errorf("%w: %w", errUnreadable, err)
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return nil, services.NewInvalidError("multipart field \"file\" is required")
	}
	defer f.Close()
	ds, err := rt.svc.Load(hdr.Filename, f)
	if err != nil {
		var se *survey.SchemaError
		if errors.As(err, &se) || errors.Is(err, tabular.ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errUnreadable, err)
	}
	return ds, nil
}

type errorBody struct {
	Error   string   `json:"error"`
	Detail  string   `json:"detail,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

func (rt *Router) writeError(w http.ResponseWriter, r *http.Request, err error) {
	locale := middleware.LocaleFromContext(r.Context())
	var (
		se  *survey.SchemaError
		ie  *services.InvalidError
		mbe *http.MaxBytesError
	)
	switch {
	case errors.As(err, &se):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: utils.T(locale, "error.schema"), Missing: se.Missing})
	case errors.Is(err, tabular.ErrUnsupportedFormat):
		writeJSON(w, http.StatusUnsupportedMediaType, errorBody{Error: utils.T(locale, "error.format"), Detail: err.Error()})
	case errors.As(err, &ie):
		msg := ie.Msg
		if ie.Key != "" {
			msg = utils.T(locale, ie.Key)
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
	case errors.As(err, &mbe):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: err.Error()})
	case errors.Is(err, errUnreadable):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		rt.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
