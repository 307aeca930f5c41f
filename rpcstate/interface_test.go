package rpcstate

import "testing"

func TestNextRequestIDIsUniquePerCall(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		id := s.NextRequestID()
		if seen[id] {
			t.Errorf("request id repeated: %d", id)
		}
		seen[id] = true
	}
}

func TestNextLehmerRecurrence(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	prev := int64(lehmerMultiplier)
	for i := 0; i < 5; i++ {
		got := s.NextLehmer()
		want := (prev * lehmerMultiplier) % lehmerModulus
		if got != want {
			t.Errorf("NextLehmer() = %d, want %d", got, want)
		}
		prev = got
	}
}

func TestStartTimeMsStableAfterFirstCall(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := s.StartTimeMs()
	second := s.StartTimeMs()
	if first != second {
		t.Errorf("StartTimeMs changed between calls: %d vs %d", first, second)
	}
}

func TestMagneticRangeZMaxQuirk(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, y, z := s.MagneticRanges()
	const eps = 1e-9
	if diff := (y.Min + 15) - z.Max; diff > eps || diff < -eps {
		t.Errorf("mag_z_max = %v, want mag_y_min+15 = %v", z.Max, y.Min+15)
	}
}

func TestCourseStaysInBounds(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 200; i++ {
		c := s.Course()
		if c < 0.0 || c >= 359.99 {
			t.Errorf("Course() = %v, want in [0, 359.99)", c)
		}
	}
}

func TestMessage8CachesFirstValueOnly(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Message8() != nil {
		t.Fatal("expected nil Message8 before first set")
	}
	s.SetMessage8([]byte("first"))
	s.SetMessage8([]byte("second"))
	if string(s.Message8()) != "first" {
		t.Errorf("Message8() = %q, want first", s.Message8())
	}
}

func TestSessionHashIsSixteenBytesAndStable(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	h1 := s.SessionHash()
	h2 := s.SessionHash()
	if len(h1) != 16 {
		t.Errorf("len(SessionHash()) = %d, want 16", len(h1))
	}
	if string(h1) != string(h2) {
		t.Error("SessionHash changed between calls")
	}
}
