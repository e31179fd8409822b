// Package httpapi exposes the user service over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/zoobzio/tidy"
	tidybson "github.com/zoobzio/tidy/bson"
	"github.com/zoobzio/tidy/internal/users"
	tidyjson "github.com/zoobzio/tidy/json"
	tidymsgpack "github.com/zoobzio/tidy/msgpack"
	tidyxml "github.com/zoobzio/tidy/xml"
	tidyyaml "github.com/zoobzio/tidy/yaml"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes = 1 << 20

// Config configures the HTTP handler.
type Config struct {
	Users        *users.Service
	Logger       zerolog.Logger
	MaxBodyBytes int64
}

// Server routes requests to the user service.
type Server struct {
	router       chi.Router
	users        *users.Service
	log          zerolog.Logger
	codecs       map[string]tidy.Codec
	maxBodyBytes int64
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// New creates a Server with its routes mounted.
func New(cfg Config) *Server {
	s := &Server{
		users:        cfg.Users,
		log:          cfg.Logger.With().Str("component", "httpapi").Logger(),
		codecs:       codecs(),
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = DefaultMaxBodyBytes
	}

	s.router = chi.NewRouter()
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.loggingMiddleware)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/users", func(r chi.Router) {
		r.Post("/get-processed-dto", s.handleGetProcessedDTO)
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// codecs returns the supported codecs keyed by media type.
func codecs() map[string]tidy.Codec {
	out := make(map[string]tidy.Codec)
	for _, c := range []tidy.Codec{
		tidyjson.New(),
		tidyyaml.New(),
		tidyxml.New(),
		tidymsgpack.New(),
		tidybson.New(),
	} {
		out[c.ContentType()] = c
	}
	out["application/x-yaml"] = out[tidyyaml.ContentType]
	out["text/xml"] = out[tidyxml.ContentType]
	out["application/x-msgpack"] = out[tidymsgpack.ContentType]
	return out
}

// codecFor picks the codec for a Content-Type header. An empty header means JSON.
func (s *Server) codecFor(header string) (tidy.Codec, bool) {
	if header == "" {
		return s.codecs[tidyjson.ContentType], true
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return nil, false
	}
	c, ok := s.codecs[mediaType]
	return c, ok
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleGetProcessedDTO(w http.ResponseWriter, r *http.Request) {
	codec, ok := s.codecFor(r.Header.Get("Content-Type"))
	if !ok {
		s.writeError(w, r, http.StatusUnsupportedMediaType, errors.New("unsupported content type"))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	var dto users.UserDTO
	if err := codec.Unmarshal(body, &dto); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	out, err := s.users.GetProcessedDTO(r.Context(), &dto)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	data, err := codec.Marshal(out)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", codec.ContentType())
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.log.Warn().
		Err(err).
		Int("status", status).
		Str("request_id", middleware.GetReqID(r.Context())).
		Msg("request failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

// loggingMiddleware logs one line per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
