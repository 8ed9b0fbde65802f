package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/cancelreader"
)

const readBufferSize = 64

type subscriber struct {
	id      uint64
	handler func([]byte)
}

// Source reads raw chunks from an input stream and hands each one to every
// subscriber, in subscription order, on the goroutine that called Run.
type Source struct {
	r      io.Reader
	mu     sync.Mutex
	subs   []subscriber
	nextID uint64
	logger *log.Logger
}

// NewSource creates a source over r
func NewSource(r io.Reader) *Source {
	return &Source{
		r:      r,
		logger: log.With("component", "terminal"),
	}
}

// Subscribe registers handler and returns a function that removes it
func (s *Source) Subscribe(handler func(chunk []byte)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Run reads until ctx is cancelled or the input ends. A chunk is delivered to
// all subscribers before the next one is taken, and no chunk is delivered once
// ctx is done.
func (s *Source) Run(ctx context.Context) error {
	cr, err := cancelreader.NewReader(s.r)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer cr.Close()

	chunks := make(chan []byte)
	errc := make(chan error, 1)
	go func() {
		buf := make([]byte, readBufferSize)
		for {
			n, err := cr.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				select {
				case chunks <- chunk:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				errc <- err
				return
			}
		}
	}()

	for {
		if ctx.Err() != nil {
			cr.Cancel()
			return nil
		}

		select {
		case <-ctx.Done():
			cr.Cancel()
			return nil
		case chunk := <-chunks:
			if ctx.Err() != nil {
				continue
			}
			s.dispatch(chunk)
		case err := <-errc:
			if errors.Is(err, io.EOF) || errors.Is(err, cancelreader.ErrCanceled) {
				s.logger.Debug("input closed")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}

func (s *Source) dispatch(chunk []byte) {
	s.mu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.handler(chunk)
	}
}
