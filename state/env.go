// Package state defines shared program state.
package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sylgen/config"
	"sylgen/syllable"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	gen           *syllable.Generator
	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Generator returns name generator prepared from active configuration. It is
// built on first call, so subcommands could adjust configuration before that.
func (e *LocalEnv) Generator() (*syllable.Generator, error) {
	if e.gen != nil {
		return e.gen, nil
	}
	if e.Cfg == nil {
		return nil, errors.New("configuration is not loaded")
	}

	gen := e.Cfg.Generator.Builder().Build()
	if err := gen.Validate(); err != nil {
		return nil, fmt.Errorf("unable to prepare generator: %w", err)
	}
	e.gen = gen
	return gen, nil
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
