package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

type closer struct {
	mu     sync.Mutex
	funcs  []namedFunc
	logger Logger
	done   bool
}

var global = &closer{logger: noop{}}

func SetLogger(l Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logger = l
}

func AddNamed(name string, fn func(context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.funcs = append(global.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll runs the registered hooks once, newest first.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	if global.done {
		global.mu.Unlock()
		return nil
	}
	global.done = true
	funcs := global.funcs
	global.funcs = nil
	log := global.logger
	global.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		f := funcs[i]
		if err := f.fn(ctx); err != nil {
			log.Error(ctx, "failed to close", zap.String("name", f.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		log.Info(ctx, "closed", zap.String("name", f.name))
	}

	return errors.Join(errs...)
}

type noop struct{}

func (noop) Info(context.Context, string, ...zap.Field)  {}
func (noop) Error(context.Context, string, ...zap.Field) {}
