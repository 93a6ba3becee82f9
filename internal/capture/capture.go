// Package capture implements the lifecycle of a camera photo-taking
// session.
//
// Camera stacks are inconsistent about when a stream actually produces
// visible frames: a successful acquisition only means that access was
// granted, not that frames are flowing. Conflating the two yields black
// or stale captures. The session therefore treats confirmed playback as
// its own transition with its own timeout, and only allows capturing
// once both signals are in.
//
// The second classic failure mode is requesting a new stream while a
// previous one is still held, which on many platforms fails silently.
// Start always releases the currently held stream before acquiring a
// new one.
package capture

import (
	"context"
	"errors"
	"image"
)

// FacingMode is the preferred direction of the camera to acquire.
type FacingMode string

const (
	// FacingAny lets the device pick any camera.
	FacingAny FacingMode = ""
	// FacingUser prefers the camera pointing at the user.
	FacingUser FacingMode = "user"
	// FacingEnvironment prefers the outward-facing camera.
	FacingEnvironment FacingMode = "environment"
)

// Constraints describe the stream to acquire.
type Constraints struct {
	Facing FacingMode
}

// Relaxed returns the constraints with everything optional removed. Used
// for the single automatic retry after an overconstrained acquisition.
func (c Constraints) Relaxed() Constraints {
	return Constraints{}
}

// State is the observable state of a session.
type State string

const (
	// StateIdle means no stream is held.
	StateIdle State = "idle"
	// StateRequesting means an acquisition is in flight.
	StateRequesting State = "requesting"
	// StateStreaming means frames are confirmed to be flowing and the
	// session is ready to capture.
	StateStreaming State = "streaming"
	// StateError means acquisition or playback failed. The failure
	// classification tells why. Recoverable by calling Start again.
	StateError State = "error"
)

// Failure classifies why a session is in StateError. The classification
// drives user-facing messaging, which differs per cause.
type Failure string

const (
	FailureNone            Failure = ""
	FailurePermission      Failure = "permission-denied"
	FailureNoDevice        Failure = "no-device"
	FailureOverconstrained Failure = "overconstrained"
	FailureUnsupported     Failure = "unsupported"
	FailurePlayback        Failure = "playback-timeout"
	FailureGeneric         Failure = "generic"
)

// Sentinel errors a Device implementation reports acquisition failures
// with. Anything else is classified as a generic failure.
var (
	ErrPermissionDenied = errors.New("camera permission denied")
	ErrDeviceNotFound   = errors.New("no camera device found")
	ErrOverconstrained  = errors.New("camera constraints can not be satisfied")
	ErrUnsupported      = errors.New("camera capture is not supported on this platform")
)

// Errors the session itself reports.
var (
	ErrAcquisitionInFlight = errors.New("an acquisition is already in flight")
	ErrPlaybackTimeout     = errors.New("stream acquired, but playback was not confirmed in time")
	ErrNotStreaming        = errors.New("the session is not streaming")
	ErrStopped             = errors.New("the session was stopped while acquiring")
)

// classify maps an acquisition error to its failure classification.
func classify(err error) Failure {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return FailurePermission
	case errors.Is(err, ErrDeviceNotFound):
		return FailureNoDevice
	case errors.Is(err, ErrOverconstrained):
		return FailureOverconstrained
	case errors.Is(err, ErrUnsupported):
		return FailureUnsupported
	case errors.Is(err, ErrPlaybackTimeout):
		return FailurePlayback
	default:
		return FailureGeneric
	}
}

// Device is the platform media API the session acquires streams from.
type Device interface {
	// Acquire requests a stream matching the constraints. Failures are
	// reported with the sentinel errors of this package.
	Acquire(ctx context.Context, constraints Constraints) (Stream, error)
}

// Stream is one live camera stream.
type Stream interface {
	// Playing returns a channel that is closed once the stream is
	// confirmed to produce frames. Acquisition success alone is not
	// that confirmation.
	Playing() <-chan struct{}

	// Release frees the underlying hardware. Must be safe to call more
	// than once.
	Release()
}

// Surface is the render sink a stream is bound to and frames are read
// from. Supplied by the caller.
type Surface interface {
	Bind(Stream)
	Unbind()

	// Frame returns the currently rendered frame. The bounds may be
	// empty when the platform does not report native dimensions.
	Frame() (image.Image, error)
}
