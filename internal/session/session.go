// Package session keeps uploaded documents open for reading. A session
// owns a parsed document and the reading position within it; sessions
// expire after a period without use.
package session

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/docvox/internal/navigator"
)

// Session is one open document.
type Session struct {
	ID          string
	Filename    string
	Title       string
	ContentHash string
	CreatedAt   time.Time

	mu        sync.Mutex
	updatedAt time.Time

	nav *navigator.Navigator
}

// Navigator returns the reading position holder of the session.
func (s *Session) Navigator() *navigator.Navigator { return s.nav }

// Touch marks the session as used now.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updatedAt = time.Now()
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Snapshot is a read-only, JSON-safe copy of session state.
type Snapshot struct {
	ID          string             `json:"session_id"`
	Filename    string             `json:"filename"`
	Title       string             `json:"title"`
	ContentHash string             `json:"content_hash"`
	Nodes       int                `json:"nodes"`
	Position    navigator.Position `json:"position"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:          s.ID,
		Filename:    s.Filename,
		Title:       s.Title,
		ContentHash: s.ContentHash,
		Nodes:       s.nav.Document().Len(),
		Position:    s.nav.Position(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt(),
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
