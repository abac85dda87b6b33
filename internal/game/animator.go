package game

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/scheduler"
	"github.com/osse101/WheelOfFortune_Go/internal/worker"
)

// Completer finishes an in-flight spin
type Completer interface {
	CompleteSpin(ctx context.Context, spinID uuid.UUID) (domain.SpinOutcome, error)
}

// Animator plays a spin and eventually reports completion through done.
// Animate is called without any session lock held.
type Animator interface {
	Animate(ctx context.Context, spin domain.Spin, done Completer)
}

// ManualAnimator never completes on its own; a client calls CompleteSpin when its animation ends
type ManualAnimator struct{}

func (ManualAnimator) Animate(context.Context, domain.Spin, Completer) {}

// InstantAnimator completes the spin before Animate returns
type InstantAnimator struct{}

func (InstantAnimator) Animate(ctx context.Context, spin domain.Spin, done Completer) {
	// errors are already logged by the session
	_, _ = done.CompleteSpin(ctx, spin.ID)
}

// TimedAnimator completes the spin on the scheduler once its duration has elapsed
type TimedAnimator struct {
	sched *scheduler.Scheduler
}

// NewTimedAnimator creates an animator backed by sched
func NewTimedAnimator(sched *scheduler.Scheduler) *TimedAnimator {
	return &TimedAnimator{sched: sched}
}

func (a *TimedAnimator) Animate(_ context.Context, spin domain.Spin, done Completer) {
	a.sched.After(spin.Duration, TaskSpinComplete, completeSpinJob(done, spin.ID))
}

// completeSpinJob finishes spinID when the timer fires. A spin the client
// already completed is not an error.
func completeSpinJob(done Completer, spinID uuid.UUID) worker.Job {
	return worker.JobFunc(func(ctx context.Context) error {
		_, err := done.CompleteSpin(ctx, spinID)
		if errors.Is(err, domain.ErrSpinNotFound) {
			return nil
		}
		return err
	})
}
