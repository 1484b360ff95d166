package carousel

import (
	"context"
	"sync"
	"time"
)

const DefaultInterval = 3 * time.Second

type Slide struct {
	Index  int    `json:"index"`
	Image  string `json:"image"`
	Offset int    `json:"offset_percent"`
	Total  int    `json:"total"`
}

// Carousel cycles through banner images.
type Carousel struct {
	mu     sync.RWMutex
	images []string
	index  int
}

func New(images []string) *Carousel {
	return &Carousel{images: append([]string(nil), images...)}
}

// Advance moves to the next image, wrapping after the last one.
func (c *Carousel) Advance() Slide {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.images) > 0 {
		c.index = (c.index + 1) % len(c.images)
	}
	return c.slideLocked()
}

func (c *Carousel) Current() Slide {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slideLocked()
}

func (c *Carousel) slideLocked() Slide {
	s := Slide{Index: c.index, Offset: -100 * c.index, Total: len(c.images)}
	if len(c.images) > 0 {
		s.Image = c.images[c.index]
	}
	return s
}

// Run advances the carousel every interval until ctx is done.
func (c *Carousel) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.Advance()
		}
	}
}
