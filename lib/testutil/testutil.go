// Package testutil provides a fake stats site for tests that need an
// upstream without touching the network.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
}

type response struct {
	status int
	body   []byte
}

// Upstream serves canned responses by path and records every request it sees.
type Upstream struct {
	server *httptest.Server

	mutex     sync.Mutex
	responses map[string]response
	requests  []Request
}

func NewUpstream(t testing.TB) *Upstream {
	u := &Upstream{responses: map[string]response{}}

	router := chi.NewRouter()
	router.HandleFunc("/*", u.serve)
	u.server = httptest.NewServer(router)
	t.Cleanup(u.server.Close)

	return u
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u.mutex.Lock()
	u.requests = append(u.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Form:   r.PostForm,
	})
	res, ok := u.responses[r.URL.Path]
	u.mutex.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.WriteHeader(res.status)
	w.Write(res.body)
}

// Handle makes path respond with status and body.
func (u *Upstream) Handle(path string, status int, body []byte) {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	u.responses[path] = response{status: status, body: body}
}

func (u *Upstream) URL(path string) string {
	return u.server.URL + path
}

func (u *Upstream) Requests() []Request {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	out := make([]Request, len(u.requests))
	copy(out, u.requests)
	return out
}
