package capture

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultPlaybackTimeout bounds the wait for confirmed playback
	// after a successful acquisition.
	DefaultPlaybackTimeout = 5 * time.Second

	// Fallback dimensions for captures when the surface does not report
	// native frame dimensions.
	defaultCaptureWidth  = 640
	defaultCaptureHeight = 480

	// Captures are encoded lossy at a fixed quality.
	jpegQuality = 85
)

// Options configure a Session beyond its collaborators.
type Options struct {
	// PlaybackTimeout bounds the wait for confirmed playback. Zero
	// means DefaultPlaybackTimeout.
	PlaybackTimeout time.Duration

	// Logger overrides the global logger.
	Logger *zerolog.Logger
}

// Session owns the acquisition of one live camera stream and produces
// still-image captures from it.
//
// All state is session-scoped. Multiple independent sessions are safe as
// long as they do not share a Device that hands out the same hardware.
type Session struct {
	device  Device
	surface Surface
	timeout time.Duration
	log     zerolog.Logger

	mu          sync.Mutex
	state       State
	failure     Failure
	stream      Stream
	lastCapture []byte

	// generation tags each acquisition attempt. Stop bumps it, so a
	// late acquisition result can detect that it is stale and must be
	// discarded instead of resurrecting a stream.
	generation uint64
}

// NewSession returns an idle session using the given device and surface.
func NewSession(device Device, surface Surface, opts Options) *Session {
	timeout := opts.PlaybackTimeout
	if timeout <= 0 {
		timeout = DefaultPlaybackTimeout
	}

	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Session{
		device:  device,
		surface: surface,
		timeout: timeout,
		log:     logger.With().Str("component", "capture").Logger(),
		state:   StateIdle,
	}
}

// State returns the observable state of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Failure returns the classification of the last failure. FailureNone
// unless the session is in StateError.
func (s *Session) Failure() Failure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// LastCapture returns the most recent capture, or nil.
func (s *Session) LastCapture() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCapture
}

// Start acquires a stream with the preferred facing mode and waits for
// confirmed playback.
//
// At most one acquisition is in flight at a time; a Start while another
// one is outstanding fails with ErrAcquisitionInFlight. A stream that is
// still held from an earlier Start is fully released before the new
// acquisition. An overconstrained acquisition is retried once with
// relaxed constraints. All other failures are terminal for the attempt
// and leave the session in StateError with their classification.
func (s *Session) Start(ctx context.Context, facing FacingMode) error {
	s.mu.Lock()
	if s.state == StateRequesting {
		s.mu.Unlock()
		return ErrAcquisitionInFlight
	}

	// Stop before start: never acquire while a stream is still held
	held := s.stream
	s.stream = nil
	s.state = StateRequesting
	s.failure = FailureNone
	s.lastCapture = nil
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	if held != nil {
		s.surface.Unbind()
		held.Release()
		s.log.Debug().Msg("released previous stream before acquisition")
	}

	stream, err := s.acquire(ctx, facing)
	if err != nil {
		return s.fail(generation, err)
	}

	// The stream is not owned by the session until the attempt is
	// confirmed current, so stale attempts release it themselves.
	if !s.current(generation) {
		stream.Release()
		return ErrStopped
	}

	s.surface.Bind(stream)

	if err := s.awaitPlayback(ctx, stream); err != nil {
		s.surface.Unbind()
		stream.Release()
		if ctx.Err() != nil {
			s.toIdle(generation)
			return err
		}
		return s.fail(generation, err)
	}

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		s.surface.Unbind()
		stream.Release()
		return ErrStopped
	}
	s.stream = stream
	s.state = StateStreaming
	s.mu.Unlock()

	s.log.Info().Str("facing", string(facing)).Msg("stream confirmed playing")
	return nil
}

// acquire requests the stream, retrying once with relaxed constraints
// when the preferred ones can not be satisfied.
func (s *Session) acquire(ctx context.Context, facing FacingMode) (Stream, error) {
	constraints := Constraints{Facing: facing}

	stream, err := s.device.Acquire(ctx, constraints)
	if err == nil {
		return stream, nil
	}

	if classify(err) != FailureOverconstrained {
		return nil, err
	}

	s.log.Warn().Str("facing", string(facing)).Msg("constraints not satisfiable, retrying relaxed")
	return s.device.Acquire(ctx, constraints.Relaxed())
}

// awaitPlayback waits for the platform to confirm that frames are
// flowing, bounded by the playback timeout.
func (s *Session) awaitPlayback(ctx context.Context, stream Stream) error {
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case <-stream.Playing():
		return nil
	case <-timer.C:
		return ErrPlaybackTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Capture reads the current frame and encodes it as a JPEG still image.
//
// Only valid while streaming. A failed capture reports an error but does
// not tear down the stream, so the caller can retry immediately.
func (s *Session) Capture() ([]byte, error) {
	s.mu.Lock()
	if s.state != StateStreaming {
		s.mu.Unlock()
		return nil, ErrNotStreaming
	}
	generation := s.generation
	s.mu.Unlock()

	frame, err := s.surface.Frame()
	if err != nil {
		s.log.Error().Err(err).Msg("reading frame failed")
		return nil, fmt.Errorf("reading frame: %w", err)
	}

	if frame == nil || frame.Bounds().Empty() {
		// No native dimensions reported, capture at the fixed fallback
		// resolution
		frame = imaging.New(defaultCaptureWidth, defaultCaptureHeight, color.Black)
	}

	var buf bytes.Buffer
	err = imaging.Encode(&buf, frame, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	if err != nil {
		s.log.Error().Err(err).Msg("encoding frame failed")
		return nil, fmt.Errorf("encoding frame: %w", err)
	}

	encoded := buf.Bytes()

	s.mu.Lock()
	if generation == s.generation && s.state == StateStreaming {
		s.lastCapture = encoded
	}
	s.mu.Unlock()

	return encoded, nil
}

// Reset discards the last capture so a new one can be taken without
// stopping and re-acquiring the stream. Only valid while streaming.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStreaming {
		return ErrNotStreaming
	}

	s.lastCapture = nil
	return nil
}

// Stop releases all hardware resources and returns the session to
// StateIdle. Safe to call from any state, any number of times. An
// outstanding acquisition is invalidated: its eventual result is
// discarded.
func (s *Session) Stop() {
	s.mu.Lock()
	held := s.stream
	s.stream = nil
	s.state = StateIdle
	s.failure = FailureNone
	s.lastCapture = nil
	s.generation++
	s.mu.Unlock()

	s.surface.Unbind()
	if held != nil {
		held.Release()
		s.log.Debug().Msg("stream released")
	}
}

// fail records the failure for the attempt if it is still the current
// one and returns the causing error.
func (s *Session) fail(generation uint64, err error) error {
	s.mu.Lock()
	if generation == s.generation {
		s.state = StateError
		s.failure = classify(err)
	}
	s.mu.Unlock()

	s.log.Error().Err(err).Str("failure", string(classify(err))).Msg("capture session failed")
	return err
}

// toIdle returns the session to StateIdle if the attempt is still the
// current one. Used for caller-initiated cancellation, which is not an
// error state.
func (s *Session) toIdle(generation uint64) {
	s.mu.Lock()
	if generation == s.generation {
		s.state = StateIdle
		s.failure = FailureNone
	}
	s.mu.Unlock()
}

// current reports whether the attempt with the given generation is still
// the active one.
func (s *Session) current(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return generation == s.generation
}
