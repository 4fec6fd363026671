// Package apitest provides an in-memory fake of the asset REST service, for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/etnz/assetbook"
	"github.com/gin-gonic/gin"
)

// Request is a request received by the Server.
type Request struct {
	Method      string
	Path        string
	ContentType string
	RequestID   string
	Body        string
}

type failure struct {
	status  int
	message string
}

// Server fakes the asset service under /api. Like the real one it lists the
// most recently created assets first.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	assets   []assetbook.Asset
	nextID   int
	requests []Request
	failures map[string]failure
}

// NewServer starts a fake service holding seed, in that order. It is closed
// when the test ends.
func NewServer(t testing.TB, seed ...assetbook.Asset) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		assets:   slices.Clone(seed),
		nextID:   1,
		failures: make(map[string]failure),
	}
	for _, a := range seed {
		if n, err := strconv.Atoi(a.ID.String()); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}

	router := gin.New()
	router.Use(s.record, s.inject)
	api := router.Group("/api")
	api.GET("/assets", s.list)
	api.POST("/assets", s.create)
	api.GET("/assets/summary", s.summary)
	api.PUT("/assets/:id", s.update)
	api.DELETE("/assets/:id", s.delete)

	s.srv = httptest.NewServer(router)
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the API base url, to be given to assetbook.NewClient.
func (s *Server) URL() string { return s.srv.URL + "/api" }

// Fail makes every following method request on path answer status with
// message as the error body. An empty message sends a body without error.
func (s *Server) Fail(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, message: message}
}

// Heal removes a failure installed by Fail.
func (s *Server) Heal(method, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, method+" "+path)
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Reset forgets the recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// Assets returns the stored assets, in list order.
func (s *Server) Assets() []assetbook.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.assets)
}

func (s *Server) record(c *gin.Context) {
	body, _ := c.GetRawData()
	// the body can only be read once, handlers get it from the context.
	c.Set(bodyKey, body)
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		ContentType: c.GetHeader("Content-Type"),
		RequestID:   c.GetHeader(assetbook.RequestIDHeader),
		Body:        string(body),
	})
	s.mu.Unlock()
	c.Next()
}

func (s *Server) inject(c *gin.Context) {
	s.mu.Lock()
	f, ok := s.failures[c.Request.Method+" "+c.Request.URL.Path]
	s.mu.Unlock()
	if !ok {
		c.Next()
		return
	}
	if f.message == "" {
		c.AbortWithStatusJSON(f.status, gin.H{})
		return
	}
	c.AbortWithStatusJSON(f.status, gin.H{"error": f.message})
}

const bodyKey = "apitest.body"

func body(c *gin.Context) []byte {
	b, _ := c.Get(bodyKey)
	raw, _ := b.([]byte)
	return raw
}

func (s *Server) list(c *gin.Context) {
	assets := s.Assets()
	if assets == nil {
		assets = []assetbook.Asset{}
	}
	c.JSON(http.StatusOK, assets)
}

func (s *Server) summary(c *gin.Context) {
	c.JSON(http.StatusOK, assetbook.Summarize(s.Assets()))
}

func (s *Server) create(c *gin.Context) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body(c), &fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if !present(fields, "name") || !present(fields, "amount") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}
	var a assetbook.Asset
	if err := json.Unmarshal(body(c), &a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = assetbook.ID(strconv.Itoa(s.nextID))
	s.nextID++
	s.assets = append([]assetbook.Asset{a}, s.assets...)
	c.JSON(http.StatusCreated, a)
}

func (s *Server) update(c *gin.Context) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body(c), &fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(c.Param("id"))
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}

	// only the fields present in the body are changed.
	current, err := json.Marshal(s.assets[i])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(current, &merged); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for k, v := range fields {
		if k != "id" {
			merged[k] = v
		}
	}
	raw, _ := json.Marshal(merged)
	var a assetbook.Asset
	if err := json.Unmarshal(raw, &a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.assets[i] = a
	c.JSON(http.StatusOK, a)
}

func (s *Server) delete(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(c.Param("id"))
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}
	s.assets = slices.Delete(s.assets, i, i+1)
	c.JSON(http.StatusOK, gin.H{"message": "asset deleted"})
}

// index must be called with s.mu held.
func (s *Server) index(id string) int {
	return slices.IndexFunc(s.assets, func(a assetbook.Asset) bool { return a.ID.String() == id })
}

func present(fields map[string]json.RawMessage, key string) bool {
	v, ok := fields[key]
	return ok && string(v) != "null" && string(v) != `""`
}
