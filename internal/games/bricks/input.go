package bricks

import "github.com/vovakirdan/bricks/internal/core"

func isRight(k core.Key) bool {
	return k == core.KeyRight || k == core.KeyArrowRight
}

func isLeft(k core.Key) bool {
	return k == core.KeyLeft || k == core.KeyArrowLeft
}

// HandleKey applies a key event to the paddle intent and reports whether the
// key was recognised.
//
// The last press wins and any directional release stops the paddle, even if
// the other direction is still held.
func (s *State) HandleKey(ev core.KeyEvent) bool {
	switch {
	case ev.Type == core.KeyPress && isRight(ev.Key):
		s.Paddle.DX = s.Paddle.Speed
	case ev.Type == core.KeyPress && isLeft(ev.Key):
		s.Paddle.DX = -s.Paddle.Speed
	case ev.Type == core.KeyRelease && (isRight(ev.Key) || isLeft(ev.Key)):
		s.Paddle.DX = 0
	default:
		return false
	}
	return true
}
