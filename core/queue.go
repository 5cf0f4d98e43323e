package core

// Queue is the ordered play queue plus the position of the active track.
// Committing a selection snapshots the source list: the queue is a copy,
// never a live view of search results or liked songs. Position -1 means
// no queue is active.
type Queue struct {
	tracks   []Track
	position int
}

// NewQueue returns an empty, inactive queue.
func NewQueue() *Queue {
	return &Queue{position: -1}
}

// Commit replaces the queue with a copy of list, positioned at startIndex
// (clamped into range), and returns the track to play. Committing an empty
// list deactivates the queue and returns nil.
func (q *Queue) Commit(list []Track, startIndex int) *Track {
	q.tracks = make([]Track, len(list))
	copy(q.tracks, list)

	if len(q.tracks) == 0 {
		q.position = -1
		return nil
	}

	if startIndex < 0 {
		startIndex = 0
	}
	if startIndex >= len(q.tracks) {
		startIndex = len(q.tracks) - 1
	}
	q.position = startIndex
	return q.Current()
}

// Current returns the active track, or nil when the queue is inactive.
func (q *Queue) Current() *Track {
	if q == nil || q.position < 0 || q.position >= len(q.tracks) {
		return nil
	}
	t := q.tracks[q.position]
	return &t
}

// Advance moves to the next track and returns it. At the last track (or
// with no active queue) it is a no-op returning nil; the caller must not
// change the play state in that case.
func (q *Queue) Advance() *Track {
	if q.position < 0 || q.position >= len(q.tracks)-1 {
		return nil
	}
	q.position++
	return q.Current()
}

// Retreat moves to the previous track and returns it. At the first track
// (or with no active queue) it is a no-op returning nil.
func (q *Queue) Retreat() *Track {
	if q.position <= 0 {
		return nil
	}
	q.position--
	return q.Current()
}

// Position returns the current queue index, -1 when inactive.
func (q *Queue) Position() int {
	return q.position
}

// Len returns the number of queued tracks.
func (q *Queue) Len() int {
	return len(q.tracks)
}
