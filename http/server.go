package http

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/linkcheck"
)

// maxRequestBytes caps the size of a crawl request body.
const maxRequestBytes = 1 << 20

// CrawlRequest is the body of POST /api/crawl.
type CrawlRequest struct {
	URL   string `json:"url"`
	Depth *int   `json:"depth,omitempty"`
}

// CrawlResponse is the body returned by POST /api/crawl.
// Links is always present, empty when the crawl could not run.
type CrawlResponse struct {
	Links    []*linkcheck.LinkResult `json:"links"`
	ReportID string                  `json:"reportId,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

// Server exposes crawling and saved reports over a JSON API.
type Server struct {
	crawler   linkcheck.Crawler
	reports   linkcheck.ReportService
	limiter   linkcheck.RequestLimiter
	logger    *slog.Logger
	staticDir string
	mux       *http.ServeMux
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithReports saves successful crawls and enables the report endpoints.
func WithReports(reports linkcheck.ReportService) ServerOption {
	return func(s *Server) {
		s.reports = reports
	}
}

// WithLimiter rejects crawl requests the limiter does not allow.
func WithLimiter(limiter linkcheck.RequestLimiter) ServerOption {
	return func(s *Server) {
		s.limiter = limiter
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithStaticDir serves files from dir at /.
func WithStaticDir(dir string) ServerOption {
	return func(s *Server) {
		s.staticDir = dir
	}
}

// NewServer wires handlers onto an HTTP mux.
func NewServer(crawler linkcheck.Crawler, opts ...ServerOption) *Server {
	s := &Server{
		crawler: crawler,
		mux:     http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.routes()
	return s
}

// ServeHTTP satisfies the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /api/crawl", s.handleCrawl)
	if s.reports != nil {
		s.mux.HandleFunc("GET /api/reports", s.handleReports)
		s.mux.HandleFunc("GET /api/reports/{id}", s.handleReport)
	}
	if s.staticDir != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleCrawl(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow(clientKey(r)) {
		writeJSON(w, http.StatusTooManyRequests, CrawlResponse{
			Links: []*linkcheck.LinkResult{},
			Error: "too many requests",
		})
		return
	}

	var req CrawlRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CrawlResponse{
			Links: []*linkcheck.LinkResult{},
			Error: "invalid request body",
		})
		return
	}

	depth := linkcheck.DefaultDepth
	if req.Depth != nil {
		depth = *req.Depth
	}

	ctx := r.Context()
	s.logger.Info("crawling", "url", req.URL, "depth", depth)

	links, err := s.crawler.Crawl(ctx, req.URL, depth)
	if err != nil {
		s.logger.Error("crawl failed", "url", req.URL, "error", err)
		writeJSON(w, errorStatus(err), CrawlResponse{
			Links: []*linkcheck.LinkResult{},
			Error: linkcheck.ErrorMessage(err),
		})
		return
	}
	s.logger.Info("crawl complete", "url", req.URL, "links", len(links))

	resp := CrawlResponse{Links: links}
	if s.reports != nil {
		report := &linkcheck.Report{SeedURL: req.URL, MaxDepth: depth, Links: links}
		if err := s.reports.CreateReport(ctx, report); err != nil {
			s.logger.Warn("save report failed", "url", req.URL, "error", err)
		} else {
			resp.ReportID = report.ID
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := linkcheck.ReportFilter{Limit: 20}
	if id := query.Get("id"); id != "" {
		filter.ID = &id
	}
	if seed := query.Get("seed"); seed != "" {
		filter.SeedURL = &seed
	}
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, linkcheck.Errorf(linkcheck.EINVALID, "invalid limit %q", v))
			return
		}
		filter.Limit = n
	}
	if v := query.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, linkcheck.Errorf(linkcheck.EINVALID, "invalid offset %q", v))
			return
		}
		filter.Offset = n
	}

	reports, err := s.reports.FindReports(r.Context(), filter)
	if err != nil {
		s.logger.Error("list reports failed", "error", err)
		writeError(w, err)
		return
	}
	if reports == nil {
		reports = []*linkcheck.Report{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.reports.FindReportByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// clientKey identifies the caller for rate limiting.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// errorStatus maps application error codes to HTTP status codes.
func errorStatus(err error) int {
	switch linkcheck.ErrorCode(err) {
	case linkcheck.EINVALID:
		return http.StatusBadRequest
	case linkcheck.ENOTFOUND:
		return http.StatusNotFound
	case linkcheck.ECONFLICT:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), map[string]string{"error": linkcheck.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
