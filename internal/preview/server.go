package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Publisher makes a document reachable at a URL until it is revoked.
type Publisher interface {
	Publish(ctx context.Context, doc Document) (string, error)
	// RevokeAfter withdraws url once d has elapsed.
	RevokeAfter(url string, d time.Duration)
}

// BlobServer serves published documents from memory on a loopback
// listener. It is safe for concurrent use.
type BlobServer struct {
	// Addr is the listen address; the default picks a free loopback port.
	Addr   string
	Logger *slog.Logger

	mu     sync.Mutex
	blobs  map[string][]byte
	timers map[string]*time.Timer
	engine *gin.Engine
	srv    *http.Server
	base   string
}

// NewBlobServer returns an unstarted server. Publish starts it.
func NewBlobServer(logger *slog.Logger) *BlobServer {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)
	s := &BlobServer{
		Addr:   "127.0.0.1:0",
		Logger: logger,
		blobs:  map[string][]byte{},
		timers: map[string]*time.Timer{},
	}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.engine.GET("/preview/:id", s.serve)
	return s
}

// Handler exposes the routes without a listener.
func (s *BlobServer) Handler() http.Handler { return s.engine }

func (s *BlobServer) serve(c *gin.Context) {
	s.mu.Lock()
	body, ok := s.blobs[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		c.String(http.StatusNotFound, "preview expired")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// Start listens and serves in the background. It is a no-op once started.
func (s *BlobServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}
	s.srv = &http.Server{Handler: s.engine, ReadHeaderTimeout: 5 * time.Second}
	s.base = "http://" + ln.Addr().String()
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("preview server stopped", "error", err)
		}
	}()
	s.Logger.Debug("preview server listening", "url", s.base)
	return nil
}

// Publish stores doc under a fresh id and returns its URL.
func (s *BlobServer) Publish(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.Start(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.blobs[id] = []byte(doc.HTML)
	base := s.base
	s.mu.Unlock()
	return base + "/preview/" + id, nil
}

func idOf(url string) string {
	return url[strings.LastIndexByte(url, '/')+1:]
}

// Revoke withdraws url immediately.
func (s *BlobServer) Revoke(url string) {
	id := idOf(url)
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	if _, ok := s.blobs[id]; ok {
		delete(s.blobs, id)
		s.Logger.Debug("preview revoked", "id", id)
	}
}

// RevokeAfter schedules Revoke. A later call for the same url replaces
// the earlier schedule.
func (s *BlobServer) RevokeAfter(url string, d time.Duration) {
	id := idOf(url)
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
	}
	s.timers[id] = time.AfterFunc(d, func() { s.Revoke(url) })
}

// Published reports whether url is still being served.
func (s *BlobServer) Published(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[idOf(url)]
	return ok
}

// Close revokes everything and shuts the listener down.
func (s *BlobServer) Close(ctx context.Context) error {
	s.mu.Lock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.blobs = map[string][]byte{}
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

var _ Publisher = (*BlobServer)(nil)
