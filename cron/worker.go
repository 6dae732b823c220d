package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"quickwash/config"
	reservationRepo "quickwash/database/repository/reservation"
)

const TypeReservationFinalize = "reservation:finalize"

// InitFinalizerWorker runs the background finalizer: a periodic task that
// flips active reservations whose end instant has passed to finalized, so
// the admin listing and availability snapshots stay truthful without
// relying on query-time filters alone.
func InitFinalizerWorker(repo reservationRepo.ReservationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisJobsDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReservationFinalize, handleFinalizeTask(repo))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register("@every 1m", asynq.NewTask(TypeReservationFinalize, nil)); err != nil {
		log.Printf("[ReservationFinalizer] failed to register periodic task: %v", err)
		return
	}

	go func() {
		log.Println("[ReservationFinalizer] starting scheduler...")
		if err := scheduler.Run(); err != nil {
			log.Printf("[ReservationFinalizer] scheduler stopped: %v", err)
		}
	}()

	go func() {
		log.Println("[ReservationFinalizer] starting worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReservationFinalizer] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[ReservationFinalizer] max retry attempts reached, giving up")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleFinalizeTask(repo reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := repo.FinalizeExpired(time.Now().UTC())
		if err != nil {
			log.Printf("[ReservationFinalizer] finalize pass failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[ReservationFinalizer] finalized %d expired reservations", n)
		}
		return nil
	}
}
