package whoop

import "context"

type UserService interface {
	GetProfile(ctx context.Context) (*UserProfile, error)
}

type SleepService interface {
	List(ctx context.Context, params *RangeParams) ([]Sleep, error)
}

type RecoveryService interface {
	List(ctx context.Context, params *RangeParams) ([]Recovery, error)
}

type WorkoutService interface {
	List(ctx context.Context, params *RangeParams) ([]Workout, error)
}

type CycleService interface {
	List(ctx context.Context, params *RangeParams) ([]Cycle, error)
	Metrics(ctx context.Context, params *RangeParams) (MetricsSummary, error)
}
