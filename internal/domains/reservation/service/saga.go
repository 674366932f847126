package service

import (
	"context"

	"github.com/rs/zerolog/log"
)

const (
	stepReserveRoom      = "reserve-room"
	stepWriteReservation = "write-reservation"
	stepReleaseRoom      = "release-room"
)

// sagaStep is one forward action of a multi-store write. compensate undoes
// execute and may be nil.
type sagaStep struct {
	name           string
	execute        func(ctx context.Context) error
	compensate     func(ctx context.Context) error
	compensateName string
}

// runSaga executes steps in order. When a step fails the completed steps are
// compensated in reverse order and the step error is returned. A failed
// compensation is logged and does not stop the remaining ones.
func runSaga(ctx context.Context, steps ...sagaStep) error {
	completed := make([]sagaStep, 0, len(steps))

	for _, step := range steps {
		log.Debug().Str("step", step.name).Msg("executing saga step")

		if err := step.execute(ctx); err != nil {
			log.Warn().Err(err).Str("step", step.name).Msg("saga step failed")

			compensate(context.WithoutCancel(ctx), completed)

			return err
		}

		completed = append(completed, step)
	}

	return nil
}

func compensate(ctx context.Context, completed []sagaStep) {
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.compensate == nil {
			continue
		}

		if err := step.compensate(ctx); err != nil {
			log.Error().
				Err(err).
				Str("step", step.name).
				Str("compensation", step.compensateName).
				Msgf("compensation failed, effect of %s is left in place", step.name)

			continue
		}

		log.Info().Str("step", step.name).Str("compensation", step.compensateName).Msg("saga step compensated")
	}
}
