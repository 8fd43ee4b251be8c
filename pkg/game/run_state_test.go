package game

import "testing"

func TestRunState(t *testing.T) {
	s := NewRunState(3)

	s.AddPoints(4)
	s.AddPoints(10)
	if s.Score() != 14 || s.Collected() != 2 {
		t.Errorf("score=%d collected=%d, want 14 and 2", s.Score(), s.Collected())
	}

	if got := s.TakeDamage(1); got != 2 {
		t.Errorf("TakeDamage(1) = %d, want 2", got)
	}
	if got := s.TakeDamage(0); got != 2 {
		t.Errorf("TakeDamage(0) = %d, want 2", got)
	}
	if s.IsGameOver() {
		t.Fatal("should not be game over yet")
	}

	s.TakeDamage(5)
	if !s.IsGameOver() || s.Health() != 0 {
		t.Errorf("expected game over with 0 health, got health=%d over=%v", s.Health(), s.IsGameOver())
	}

	// 结束后不再计分
	s.AddPoints(4)
	if s.Score() != 14 {
		t.Errorf("score changed after game over: %d", s.Score())
	}
	if s.Hits() != 2 {
		t.Errorf("Hits() = %d, want 2", s.Hits())
	}

	s.Reset()
	if s.IsGameOver() || s.Health() != 3 || s.Score() != 0 {
		t.Errorf("Reset() left state %+v", s)
	}
}
