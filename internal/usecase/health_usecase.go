package usecase

import "context"

// Pinger is any dependency that can report its own liveness
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	deps map[string]Pinger
}

func NewHealthUsecase(deps map[string]Pinger) HealthUsecase {
	return &healthUsecase{deps: deps}
}

// Check pings every dependency; ok is false when any of them failed
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"status": "ok"}
	ok := true
	for name, dep := range u.deps {
		if dep == nil {
			continue
		}
		if err := dep.Ping(ctx); err != nil {
			status[name] = "down"
			ok = false
			continue
		}
		status[name] = "up"
	}
	if !ok {
		status["status"] = "degraded"
	}
	return status, ok
}
