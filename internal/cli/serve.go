package cli

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bracket/pkg/cache"
	"github.com/matzehuels/bracket/pkg/definition"
	"github.com/matzehuels/bracket/pkg/errors"
	"github.com/matzehuels/bracket/pkg/render/nodelink"
)

const (
	defaultAddr     = "localhost:8080"
	maxRequestBytes = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	formatDOT: "text/vnd.graphviz",
	formatSVG: "image/svg+xml",
	formatPDF: "application/pdf",
	formatPNG: "image/png",
}

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	noCache bool
}

// serveCommand creates the serve command, an HTTP front end that solves and
// renders posted definitions.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Solve and render tournament definitions over HTTP",
		Long: `Serve accepts TOML tournament definitions over HTTP.

  POST /brackets          solve and return the JSON report
  POST /brackets/render   solve and return a diagram (?format=svg|dot|pdf|png)

Both endpoints take ?solve=false to skip solving.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runServe listens on opts.addr until ctx is cancelled, then drains open
// requests.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	c, keyer, err := newCache(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newRouter(logger, c, keyer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Infof("Listening on http://%s", opts.addr)

	select {
	case err := <-errc:
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", opts.addr)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// =============================================================================
// Routes
// =============================================================================

// server holds the dependencies of the HTTP handlers.
type server struct {
	logger *log.Logger
	cache  cache.Cache
	keyer  cache.Keyer
}

// newRouter builds the HTTP routes.
func newRouter(logger *log.Logger, c cache.Cache, keyer cache.Keyer) chi.Router {
	s := &server{logger: logger, cache: c, keyer: keyer}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.healthz)
	r.Route("/brackets", func(r chi.Router) {
		r.Post("/", s.solve)
		r.Post("/render", s.render)
	})
	return r
}

// logRequests attaches the logger to the request context and logs each
// request at debug level.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(withLogger(r.Context(), s.logger)))
		s.logger.Debug("Request", "method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "id", middleware.GetReqID(r.Context()),
			"took", time.Since(start).Round(time.Microsecond))
	})
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = io.WriteString(w, "ok\n")
}

// solve handles POST /brackets.
func (s *server) solve(w http.ResponseWriter, r *http.Request) {
	b, err := s.bracket(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := b.WriteJSON(w); err != nil {
		s.logger.Warn("Write response", "err", err)
	}
}

// render handles POST /brackets/render.
func (s *server) render(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := &renderOpts{format: formatSVG, scale: defaultScale}
	if f := q.Get("format"); f != "" {
		opts.format = f
	}
	if err := validateFormat(opts.format); err != nil {
		s.fail(w, r, err)
		return
	}
	if sc := q.Get("scale"); sc != "" {
		v, err := strconv.ParseFloat(sc, 64)
		if err != nil || v <= 0 {
			s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", sc))
			return
		}
		opts.scale = v
	}
	opts.detailed = q.Get("detailed") == "true"

	b, err := s.bracket(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	dot := b.DOT(nodelink.Options{Detailed: opts.detailed})

	ctx := r.Context()
	data, cached, err := cachedArtifact(ctx, s.cache, s.keyer, dot, opts, func() ([]byte, error) {
		return convert(ctx, dot, opts)
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[opts.format])
	if cached {
		w.Header().Set("X-Cache", "hit")
	}
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("Write response", "err", err)
	}
}

// bracket parses the request body as a definition, builds its tournament and
// solves it unless ?solve=false.
func (s *server) bracket(w http.ResponseWriter, r *http.Request) (bracket, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	def, err := definition.Parse(data)
	if err != nil {
		return nil, err
	}
	if def.Title == "" {
		def.Title = appName
	}
	b, err := newBracket(def)
	if err != nil {
		return nil, err
	}
	if r.URL.Query().Get("solve") != "false" {
		if err := b.Solve(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// fail writes err as a plain-text response with a status matching its code.
func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "path", r.URL.Path, "err", err)
	}
	http.Error(w, err.Error(), status)
}

// httpStatus maps error codes to HTTP status codes.
func httpStatus(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidSystem,
		errors.ErrCodeNeedsEntrant:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
