package core

import "testing"

func threeTracks() []Track {
	return []Track{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
		{ID: "c", Title: "Third"},
	}
}

func TestQueue_Commit(t *testing.T) {
	tests := []struct {
		name       string
		list       []Track
		startIndex int
		wantID     string
		wantPos    int
	}{
		{
			name:       "commit at index 1",
			list:       threeTracks(),
			startIndex: 1,
			wantID:     "b",
			wantPos:    1,
		},
		{
			name:       "negative index clamps to 0",
			list:       threeTracks(),
			startIndex: -5,
			wantID:     "a",
			wantPos:    0,
		},
		{
			name:       "index past end clamps to last",
			list:       threeTracks(),
			startIndex: 99,
			wantID:     "c",
			wantPos:    2,
		},
		{
			name:       "empty list deactivates queue",
			list:       nil,
			startIndex: 0,
			wantID:     "",
			wantPos:    -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue()
			got := q.Commit(tt.list, tt.startIndex)
			if tt.wantID == "" {
				if got != nil {
					t.Errorf("Commit() = %v, want nil", got)
				}
			} else if got == nil || got.ID != tt.wantID {
				t.Errorf("Commit() = %v, want track %q", got, tt.wantID)
			}
			if q.Position() != tt.wantPos {
				t.Errorf("Position() = %d, want %d", q.Position(), tt.wantPos)
			}
		})
	}
}

func TestQueue_IsSnapshot(t *testing.T) {
	list := threeTracks()
	q := NewQueue()
	q.Commit(list, 0)

	list[1].Title = "Mutated"

	q.Advance()
	if got := q.Current(); got == nil || got.Title != "Second" {
		t.Errorf("queue saw source mutation: got %v", got)
	}
}

func TestQueue_BoundaryNoOps(t *testing.T) {
	q := NewQueue()
	q.Commit(threeTracks(), 2)

	if got := q.Advance(); got != nil {
		t.Errorf("Advance() at last index = %v, want nil", got)
	}
	if q.Position() != 2 {
		t.Errorf("Advance() at last index moved position to %d", q.Position())
	}

	q.Commit(threeTracks(), 0)
	if got := q.Retreat(); got != nil {
		t.Errorf("Retreat() at index 0 = %v, want nil", got)
	}
	if q.Position() != 0 {
		t.Errorf("Retreat() at index 0 moved position to %d", q.Position())
	}
}

func TestQueue_EmptyNoOps(t *testing.T) {
	q := NewQueue()

	if got := q.Advance(); got != nil {
		t.Errorf("Advance() on empty queue = %v, want nil", got)
	}
	if got := q.Retreat(); got != nil {
		t.Errorf("Retreat() on empty queue = %v, want nil", got)
	}
	if got := q.Current(); got != nil {
		t.Errorf("Current() on empty queue = %v, want nil", got)
	}
	if q.Position() != -1 {
		t.Errorf("Position() on empty queue = %d, want -1", q.Position())
	}
}

func TestQueue_AdvanceThenRetreat(t *testing.T) {
	q := NewQueue()
	start := q.Commit(threeTracks(), 1)

	next := q.Advance()
	if next == nil || next.ID != "c" {
		t.Fatalf("Advance() = %v, want track c", next)
	}

	back := q.Retreat()
	if back == nil || back.ID != start.ID {
		t.Errorf("Retreat() = %v, want original track %q", back, start.ID)
	}
	if q.Position() != 1 {
		t.Errorf("Position() = %d, want 1", q.Position())
	}
}
