package rangelog

import (
	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-lazy-ranges/ranges"
)

// Trace returns a stage that passes every element through unchanged and
// logs it to logger. cfg is defaulted and validated first.
func Trace[T any](logger zerolog.Logger, cfg Config) (ranges.Stage[T, T], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return ranges.Stage[T, T]{}, err
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return ranges.Stage[T, T]{}, err
	}
	zc := logger.With().Str(FieldComponent, cfg.Component)
	if cfg.Stage != "" {
		zc = zc.Str(FieldStage, cfg.Stage)
	}
	t := &tracer[T]{
		logger: zc.Logger(),
		level:  level,
		every:  uint64(cfg.SampleEvery),
	}
	return ranges.Transform(ranges.Object[T, T](t)).Named(cfg.Stage), nil
}

// MustTrace is like [Trace] but panics on an invalid configuration.
func MustTrace[T any](logger zerolog.Logger, cfg Config) ranges.Stage[T, T] {
	s, err := Trace[T](logger, cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// tracer is the function object behind a trace stage. It is shared by every
// position of the view, so seq numbers dereferences across all of them.
type tracer[T any] struct {
	logger zerolog.Logger
	level  zerolog.Level
	every  uint64
	seq    uint64
}

func (t *tracer[T]) Call(v T) T {
	t.seq++
	if (t.seq-1)%t.every == 0 {
		t.logger.WithLevel(t.level).
			Uint64(FieldSeq, t.seq).
			Interface(FieldValue, v).
			Msg("element")
	}
	return v
}
