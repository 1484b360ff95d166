package carousel

import (
	"context"
	"testing"
	"time"
)

var banners = []string{"/images/banner-1.jpg", "/images/banner-2.jpg", "/images/banner-3.jpg"}

func TestCarousel_StartsAtFirstImage(t *testing.T) {
	c := New(banners)

	s := c.Current()
	if s.Index != 0 || s.Offset != 0 || s.Image != banners[0] || s.Total != 3 {
		t.Fatalf("slide=%+v", s)
	}
}

func TestCarousel_AdvanceWraps(t *testing.T) {
	c := New(banners)

	wantOffsets := []int{-100, -200, 0, -100}
	for i, want := range wantOffsets {
		s := c.Advance()
		if s.Offset != want {
			t.Fatalf("advance #%d: offset=%d want=%d", i+1, s.Offset, want)
		}
		if s.Image != banners[s.Index] {
			t.Fatalf("advance #%d: image=%q index=%d", i+1, s.Image, s.Index)
		}
	}
}

func TestCarousel_EmptyNeverAdvances(t *testing.T) {
	c := New(nil)
	s := c.Advance()
	if s.Index != 0 || s.Image != "" || s.Total != 0 {
		t.Fatalf("slide=%+v", s)
	}
}

func TestCarousel_RunStopsOnCancel(t *testing.T) {
	c := New(banners)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		c.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for c.Current().Index == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("carousel did not advance")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}

	stopped := c.Current()
	time.Sleep(30 * time.Millisecond)
	if c.Current() != stopped {
		t.Fatalf("carousel advanced after cancel")
	}
}
