package tui

import (
	"path/filepath"
	"testing"

	"iretro/api"
	"iretro/cloud"
	"iretro/core"
	"iretro/liked"
	"iretro/player"
	"iretro/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	st := store.NewStore(filepath.Join(t.TempDir(), "prefs.json"))
	sessions := &cloud.SessionRef{}
	return NewModel(Config{
		API:    api.NewClient(nil, "http://localhost:0"),
		Cloud:  cloud.Disabled{},
		Store:  st,
		Liked:  liked.NewManager(nil, st, cloud.Disabled{}, sessions.Get),
		Engine: player.New(),
	}, sessions)
}

func TestPlaybackEndedAdvancesQueue(t *testing.T) {
	m := newTestModel(t)
	tracks := []core.Track{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	m.queue.Commit(tracks, 0)

	updated, cmd := m.Update(playbackEndedMsg{})
	m = updated.(Model)

	if got := m.queue.Position(); got != 1 {
		t.Fatalf("position = %d, want 1", got)
	}
	if cmd == nil {
		t.Fatal("expected a load command for the next track")
	}
}

func TestPlaybackEndedAtQueueTailStops(t *testing.T) {
	m := newTestModel(t)
	m.queue.Commit([]core.Track{{ID: "a"}}, 0)

	updated, _ := m.Update(playbackEndedMsg{})
	m = updated.(Model)

	if got := m.queue.Position(); got != 0 {
		t.Fatalf("position = %d, want 0", got)
	}
	if m.loading {
		t.Fatal("nothing should be loading past the end of the queue")
	}
}

func TestAccountWithoutCloudShowsLocalNotice(t *testing.T) {
	m := newTestModel(t)
	m.menuCursor = core.Cursor(menuAccount)

	cmd := m.commitSelection()
	if cmd != nil {
		t.Fatal("no command expected")
	}
	if m.auth.open {
		t.Fatal("auth modal should stay closed without cloud config")
	}
	if m.nav.Current() != core.ViewSettings {
		t.Fatalf("view = %v, want settings", m.nav.Current())
	}
	if m.notice == "" {
		t.Fatal("expected a local-only notice")
	}
}

func TestStaleTrackLoadDropped(t *testing.T) {
	m := newTestModel(t)
	_ = m.loadTrack(core.Track{ID: "a"})
	stale := m.loadToken
	_ = m.loadTrack(core.Track{ID: "b"})

	updated, _ := m.Update(trackLoadedMsg{token: stale, track: core.Track{ID: "a"}})
	m = updated.(Model)

	if !m.loading {
		t.Fatal("stale load result should not clear the loading state")
	}
	if got := m.engine.Current(); got != nil {
		t.Fatalf("engine should have no track, got %v", got)
	}
}
