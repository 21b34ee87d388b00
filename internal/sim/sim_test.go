package sim

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState(DefaultConfig())
	if s.RedOffset != -1.75 || s.GreenOffset != -1.75 || s.WalkOffset != -1.95 {
		t.Errorf("offsets = (%f, %f, %f)", s.RedOffset, s.GreenOffset, s.WalkOffset)
	}
	if s.RedSpeed != 0.04 || s.GreenSpeed != 0.06 || s.WalkSpeed != 0.02 {
		t.Errorf("speeds = (%f, %f, %f)", s.RedSpeed, s.GreenSpeed, s.WalkSpeed)
	}
	if s.ActiveLight != LightRed {
		t.Errorf("ActiveLight = %s, want red", s.ActiveLight)
	}
	if s.LeftDoorOpen || s.RightDoorOpen {
		t.Error("doors should start closed")
	}
}

func TestVehicleSawtooth(t *testing.T) {
	s := NewState(Config{RedSpeed: 0.5, GreenSpeed: 0.04, WalkSpeed: 0.02})
	rng := rand.New(rand.NewSource(1))
	// -1.75 + 7*0.5 = 1.75 exactly: still in range, no wrap yet.
	for i := 0; i < 7; i++ {
		s.Advance(0.016, rng)
		if s.RedOffset == -1.75 {
			t.Fatalf("wrapped early at step %d", i+1)
		}
	}
	if s.RedOffset != 1.75 {
		t.Fatalf("RedOffset after 7 steps = %f, want 1.75", s.RedOffset)
	}
	s.Advance(0.016, rng)
	if s.RedOffset != -1.75 {
		t.Errorf("RedOffset after exceeding bound = %f, want -1.75", s.RedOffset)
	}
}

func TestVehicleOffsetStaysInRange(t *testing.T) {
	s := NewState(DefaultConfig())
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		s.Advance(0.016, rng)
		for _, v := range []struct {
			off, speed float32
		}{{s.RedOffset, s.RedSpeed}, {s.GreenOffset, s.GreenSpeed}} {
			if v.off < -RoadHalfLength-v.speed || v.off > RoadHalfLength {
				t.Fatalf("step %d: offset %f out of range", i, v.off)
			}
		}
		if s.WalkOffset < -WalkHalfLength || s.WalkOffset > WalkHalfLength {
			t.Fatalf("step %d: walk offset %f out of range", i, s.WalkOffset)
		}
	}
}

func TestWheelRotationIndependentOfSpeed(t *testing.T) {
	slow := NewState(Config{RedSpeed: 0.01, GreenSpeed: 0.01, WalkSpeed: 0.01})
	fast := NewState(Config{RedSpeed: 0.5, GreenSpeed: 0.5, WalkSpeed: 0.01})
	rng := rand.New(rand.NewSource(3))
	slow.Advance(0.5, rng)
	fast.Advance(0.5, rng)
	if slow.WheelRotation != fast.WheelRotation {
		t.Errorf("wheel rotation differs: %f vs %f", slow.WheelRotation, fast.WheelRotation)
	}
	if slow.WheelRotation >= 0 {
		t.Errorf("WheelRotation = %f, want negative", slow.WheelRotation)
	}
}

func TestSwingReversesAtHalfPeriod(t *testing.T) {
	s := NewState(DefaultConfig())
	rng := rand.New(rand.NewSource(1))
	// 0.2 rad of elapsed time is about 11.46 degrees of phase.
	s.Advance(0.2, rng)
	if s.SwingAngle <= 0 || s.SwingAngle >= SwingHalfPeriod {
		t.Fatalf("SwingAngle = %f, want in (0, %f)", s.SwingAngle, SwingHalfPeriod)
	}
	s.Advance(0.2, rng)
	if s.SwingAngle >= 0 {
		t.Errorf("SwingAngle after crossing = %f, want negative", s.SwingAngle)
	}
	if s.WalkPhase < 0 || s.WalkPhase >= SwingHalfPeriod {
		t.Errorf("WalkPhase = %f, want in [0, %f)", s.WalkPhase, SwingHalfPeriod)
	}
	if s.SwingAngle < -2*SwingHalfPeriod {
		t.Errorf("SwingAngle = %f below bound", s.SwingAngle)
	}
}

func TestTrafficLightNeverRepeats(t *testing.T) {
	s := NewState(DefaultConfig())
	rng := rand.New(rand.NewSource(42))
	changes := 0
	prev := s.ActiveLight
	for i := 0; i < 5000; i++ {
		s.Advance(0.5, rng)
		if s.ActiveLight < LightRed || s.ActiveLight > LightGreen {
			t.Fatalf("ActiveLight = %d, want 1..3", s.ActiveLight)
		}
		if s.ActiveLight != prev {
			changes++
		}
		prev = s.ActiveLight
	}
	// 2500 seconds at one change per 3 seconds.
	if changes < 800 || changes > 850 {
		t.Errorf("changes = %d, want about 833", changes)
	}
}

func TestTrafficTimerSubtractsPeriod(t *testing.T) {
	s := NewState(DefaultConfig())
	rng := rand.New(rand.NewSource(1))
	s.Advance(3.5, rng)
	if s.ActiveLight == LightRed {
		t.Error("light should have changed after 3.5s")
	}
	if s.TrafficTimer < 0.49 || s.TrafficTimer > 0.51 {
		t.Errorf("TrafficTimer = %f, want 0.5", s.TrafficTimer)
	}
	before := s.ActiveLight
	s.Advance(2.4, rng)
	if s.ActiveLight != before {
		t.Error("light changed before the next threshold")
	}
}

func TestNextLight(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	seen := map[Light]int{}
	for i := 0; i < 600; i++ {
		next := NextLight(LightYellow, rng)
		if next == LightYellow {
			t.Fatal("NextLight returned the current light")
		}
		seen[next]++
	}
	if seen[LightRed] == 0 || seen[LightGreen] == 0 {
		t.Errorf("distribution = %v, want both other lights", seen)
	}
}

func TestAdjustSpeeds(t *testing.T) {
	tests := []struct {
		name    string
		adjust  func(*State, bool) error
		get     func(State) float32
		start   float32
		message string
	}{
		{"red", (*State).AdjustRedSpeed, func(s State) float32 { return s.RedSpeed }, 0.04, "Cannot set the red car speed to non-positive"},
		{"green", (*State).AdjustGreenSpeed, func(s State) float32 { return s.GreenSpeed }, 0.06, "Cannot set the green car speed to non-positive"},
		{"walk", (*State).AdjustWalkSpeed, func(s State) float32 { return s.WalkSpeed }, 0.02, "Cannot set the walking speed to non-positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(DefaultConfig())
			var err error
			for i := 0; i < 10 && err == nil; i++ {
				err = tt.adjust(&s, false)
			}
			if !errors.Is(err, ErrSpeedFloor) {
				t.Fatalf("error = %v, want ErrSpeedFloor", err)
			}
			if err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
			floor := tt.get(s)
			if floor <= 0 {
				t.Errorf("speed went non-positive: %f", floor)
			}
			if err := tt.adjust(&s, false); err == nil || tt.get(s) != floor {
				t.Error("rejected decrement should keep the value")
			}
			if err := tt.adjust(&s, true); err != nil {
				t.Fatalf("increment error: %v", err)
			}
			if tt.get(s) <= floor {
				t.Errorf("increment did not raise speed: %f", tt.get(s))
			}
		})
	}
}

func TestToggleDoors(t *testing.T) {
	s := NewState(DefaultConfig())
	s.ToggleLeftDoor()
	if !s.LeftDoorOpen || s.RightDoorOpen {
		t.Error("left toggle should only open the left door")
	}
	s.ToggleRightDoor()
	s.ToggleLeftDoor()
	if s.LeftDoorOpen || !s.RightDoorOpen {
		t.Error("doors toggled incorrectly")
	}
}

func TestSetSpeedsIgnoresNonPositive(t *testing.T) {
	s := NewState(DefaultConfig())
	s.SetSpeeds(Config{RedSpeed: 0.1, GreenSpeed: 0, WalkSpeed: -1})
	if s.RedSpeed != 0.1 || s.GreenSpeed != 0.06 || s.WalkSpeed != 0.02 {
		t.Errorf("speeds = (%f, %f, %f)", s.RedSpeed, s.GreenSpeed, s.WalkSpeed)
	}
}
