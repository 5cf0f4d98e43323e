// Package liked owns the set of liked tracks: an ordered, ID-keyed list
// persisted locally on every mutation and mirrored to the cloud when a
// session is active.
package liked

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"

	"iretro/cloud"
	"iretro/core"
	"iretro/store"
)

const syncTimeout = 15 * time.Second

// Manager owns the liked-songs list. The TUI event loop is single-threaded
// but cloud pushes run on their own goroutines, so the list is mutex-guarded.
type Manager struct {
	mu    sync.Mutex
	songs []core.Track

	store *store.Store
	cloud cloud.Service

	// session returns the active session, or nil when signed out. The TUI
	// owns session state; the manager only needs to read it at push time.
	session func() *cloud.Session
}

// NewManager builds a manager seeded from the given list (typically the
// store's persisted copy).
func NewManager(seed []core.Track, st *store.Store, svc cloud.Service, session func() *cloud.Session) *Manager {
	m := &Manager{
		songs:   make([]core.Track, len(seed)),
		store:   st,
		cloud:   svc,
		session: session,
	}
	copy(m.songs, seed)
	return m
}

// All returns a copy of the liked list in display order.
func (m *Manager) All() []core.Track {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Track, len(m.songs))
	copy(out, m.songs)
	return out
}

// Count returns the number of liked songs.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.songs)
}

// IsLiked reports whether a track ID is in the set.
func (m *Manager) IsLiked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lo.ContainsBy(m.songs, func(t core.Track) bool { return t.ID == id })
}

// Toggle removes the track if liked, appends a copy otherwise, then
// persists and (with an active session) pushes to the cloud. The push is
// fire-and-forget: a failure is logged and never rolls back the toggle.
// Returns whether the track is liked after the call.
func (m *Manager) Toggle(t core.Track) bool {
	m.mu.Lock()
	var nowLiked bool
	if lo.ContainsBy(m.songs, func(s core.Track) bool { return s.ID == t.ID }) {
		m.songs = lo.Reject(m.songs, func(s core.Track, _ int) bool { return s.ID == t.ID })
		nowLiked = false
	} else {
		m.songs = append(m.songs, t)
		nowLiked = true
	}
	snapshot := make([]core.Track, len(m.songs))
	copy(snapshot, m.songs)
	m.mu.Unlock()

	m.persist(snapshot)
	m.pushToCloud(snapshot)
	return nowLiked
}

// MergeCloud folds the cloud copy into the local list: local order first
// with cloud versions winning on shared IDs, then cloud-only entries
// appended. The result replaces local state and is persisted locally only;
// re-pushing here would start a sync loop.
func (m *Manager) MergeCloud(cloudSongs []core.Track) {
	if len(cloudSongs) == 0 {
		return
	}

	byID := lo.KeyBy(cloudSongs, func(t core.Track) string { return t.ID })

	m.mu.Lock()
	merged := make([]core.Track, 0, len(m.songs)+len(cloudSongs))
	seen := make(map[string]bool, len(m.songs))
	for _, local := range m.songs {
		if c, ok := byID[local.ID]; ok {
			merged = append(merged, c)
		} else {
			merged = append(merged, local)
		}
		seen[local.ID] = true
	}
	for _, c := range cloudSongs {
		if !seen[c.ID] {
			merged = append(merged, c)
		}
	}
	m.songs = merged

	snapshot := make([]core.Track, len(m.songs))
	copy(snapshot, m.songs)
	m.mu.Unlock()

	m.persist(snapshot)
}

func (m *Manager) persist(songs []core.Track) {
	if m.store == nil {
		return
	}
	p := m.store.Load()
	p.LikedSongs = songs
	if err := m.store.Save(p); err != nil {
		slog.Error("persisting liked songs", "error", err)
	}
}

func (m *Manager) pushToCloud(songs []core.Track) {
	if m.cloud == nil || !m.cloud.Configured() || m.session == nil {
		return
	}
	sess := m.session()
	if sess == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		if err := m.cloud.SyncLikedSongs(ctx, sess, songs); err != nil {
			slog.Warn("cloud sync push failed", "error", err)
		}
	}()
}
