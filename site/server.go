// Package site serves the static web pages that the browser test suites run
// against, so a test run needs no external site. It also records incoming page
// requests so tests can verify that the browser actually fetched a page.
package site

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/pkg/errors"

	"github.com/webharness/webdriver-acceptance-tests/framework"
)

const (
	httpListenerTimeout    = time.Second * 10
	requestChannelCapacity = 100
)

// RequestInfo describes one request the browser made to the site.
type RequestInfo struct {
	Method string
	Path   string
}

// Server hosts registered HTML pages on a local port.
type Server struct {
	port     int
	hostname string
	logger   framework.Logger
	pages    map[string]http.Handler
	requests chan RequestInfo
	server   *http.Server
	lock     sync.Mutex
}

func NewServer(hostname string, port int, logger framework.Logger) *Server {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Server{
		port:     port,
		hostname: hostname,
		logger:   logger,
		pages:    make(map[string]http.Handler),
		requests: make(chan RequestInfo, requestChannelCapacity),
	}
}

// RegisterPage serves the given HTML at the given path.
func (s *Server) RegisterPage(path string, html string) {
	headers := make(http.Header)
	headers.Set("Content-Type", "text/html; charset=utf-8")
	s.lock.Lock()
	s.pages[path] = httphelpers.HandlerWithResponse(200, headers, []byte(html))
	s.lock.Unlock()
}

// BaseURL returns the URL the browser should use to reach the site.
func (s *Server) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", s.hostname, s.port)
}

// PageURL returns the full URL of a registered page path.
func (s *Server) PageURL(path string) string {
	return s.BaseURL() + path
}

// Start begins listening and blocks until the listener is verifiably accepting
// requests, so tests never race against server startup.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: http.HandlerFunc(s.serveHTTP),
	}
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Printf("Test site listener stopped: %s", err)
		}
	}()

	// Wait till the server is definitely listening for requests before we run any tests
	deadline := time.NewTimer(httpListenerTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(time.Millisecond * 10)
	defer ticker.Stop()
	for {
		select {
		case <-deadline.C:
			return errors.Errorf("could not detect own listener at %s", s.server.Addr)
		case <-ticker.C:
			resp, err := http.DefaultClient.Head(fmt.Sprintf("http://localhost:%d", s.port))
			if err == nil && resp.StatusCode == 200 {
				return nil
			}
		}
	}
}

// Close shuts the listener down.
func (s *Server) Close() {
	if s.server != nil {
		_ = s.server.Close()
	}
}

// AwaitRequest waits for the next request the browser makes to the site.
func (s *Server) AwaitRequest(timeout time.Duration) (RequestInfo, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	select {
	case info := <-s.requests:
		return info, nil
	case <-deadline.C:
		return RequestInfo{}, errors.New("timed out waiting for a request to the test site")
	}
}

func (s *Server) serveHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method == "HEAD" {
		w.WriteHeader(200) // we use this to test whether our own listener is active yet
		return
	}

	s.lock.Lock()
	handler := s.pages[req.URL.Path]
	s.lock.Unlock()
	if handler == nil {
		s.logger.Printf("Received request for unrecognized URL path %s", req.URL.Path)
		w.WriteHeader(404)
		return
	}

	info := RequestInfo{Method: req.Method, Path: req.URL.Path}
	select { // non-blocking push
	case s.requests <- info:
	default:
		s.logger.Printf("Request record channel was full for %s", req.URL.Path)
	}

	s.logger.Printf("Serving %s %s", req.Method, req.URL.Path)
	handler.ServeHTTP(w, req)
}
