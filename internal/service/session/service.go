// Package session issues the anonymous identifier a browser session carries
// across requests. The id is a display label only; it has no security
// meaning and is never validated against a secret.
package session

import (
	"strings"
	"sync"
	"time"

	"gpupos/internal/ident"
)

const prefix = "anon"

type Service struct {
	mu     sync.Mutex
	issued map[string]time.Time
}

func New() *Service {
	return &Service{issued: make(map[string]time.Time)}
}

// Issue generates and remembers a fresh anonymous id.
func (s *Service) Issue() string {
	id := ident.New(prefix)
	s.mu.Lock()
	s.issued[id] = time.Now().UTC()
	s.mu.Unlock()
	return id
}

// Ensure returns the given id when it is usable as a session label, issuing
// a fresh one otherwise. Ids generated by another instance are accepted as
// long as they carry the expected prefix.
func (s *Service) Ensure(id string) string {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, prefix+"_") {
		return id
	}
	return s.Issue()
}
