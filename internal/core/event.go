package core

// EventKind identifies something observable that happened during a tick.
type EventKind int

const (
	EventBrickHit  EventKind = iota // A brick was destroyed
	EventMilestone                  // Score milestone reached, all bricks revealed
	EventMiss                       // Ball passed the bottom edge, score reset
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBrickHit:
		return "brick_hit"
	case EventMilestone:
		return "milestone"
	case EventMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Event describes a single simulation event.
//
// For EventBrickHit, Row and Col locate the brick and Score is the score after
// the hit. For EventMilestone, Score is the milestone score. For EventMiss,
// Score is the score that was lost and Bricks is the number of bricks
// destroyed during the run that just ended.
type Event struct {
	Kind   EventKind
	Tick   int
	Score  int
	Row    int
	Col    int
	Bricks int
}
