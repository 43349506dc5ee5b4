package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/config"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	financesvc "github.com/Hughesneal88/dcit318-assignment3-11178252/internal/service/finance"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/platform/closer"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/platform/logger"
)

const (
	ExerciseFinance    = "finance"
	ExerciseHealthcare = "healthcare"
	ExerciseWarehouse  = "warehouse"
	ExerciseGrading    = "grading"
	ExerciseInventory  = "inventory"
	ExerciseAll        = "all"

	defaultPatientID = 2
)

// Exercises lists the runnable exercises in the order "all" runs them.
var Exercises = []string{
	ExerciseFinance,
	ExerciseHealthcare,
	ExerciseWarehouse,
	ExerciseGrading,
	ExerciseInventory,
}

type app struct {
	di  *di
	out io.Writer
}

// New builds the application; output goes to out (stdout when nil).
func New(ctx context.Context, out io.Writer) (*app, error) {
	a := &app{out: out}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI(a.out)
	return nil
}

// Run executes one exercise, or every exercise for "all". In "all" mode a
// failing exercise is reported and the next one still runs.
func (a *app) Run(ctx context.Context, exercise string, args []string) error {
	defer gracefulShutdown()

	ctx = logger.ContextWith(ctx, logger.String("session_id", uuid.NewString()))

	if exercise == "" {
		exercise = ExerciseAll
	}

	if exercise != ExerciseAll {
		return a.runOne(ctx, exercise, args)
	}

	var errs []error
	for _, name := range Exercises {
		if err := a.runOne(ctx, name, nil); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *app) runOne(ctx context.Context, exercise string, args []string) error {
	const op = "app.Run"

	ctx = logger.ContextWith(ctx, logger.String("exercise", exercise))
	logger.Info(ctx, "exercise started")

	var err error
	switch exercise {
	case ExerciseFinance:
		err = a.di.FinanceService(ctx).Run(ctx, financesvc.DemoPayments(time.Now(), a.di.Printer()))
	case ExerciseHealthcare:
		patientID := defaultPatientID
		if len(args) > 0 {
			if patientID, err = strconv.Atoi(args[0]); err != nil {
				err = fmt.Errorf("%w: patient id '%s' is not an integer", model.ErrInvalidFormat, args[0])
				a.di.Printer().Caught(err)
				break
			}
		}
		err = a.di.HealthService(ctx).Run(ctx, patientID)
	case ExerciseWarehouse:
		err = a.di.WarehouseService(ctx).Run(ctx)
	case ExerciseGrading:
		var input string
		if len(args) > 0 {
			input = args[0]
		}
		err = a.di.GradingService(ctx).Run(ctx, input)
	case ExerciseInventory:
		err = a.di.InventoryRun(ctx)
	default:
		err = fmt.Errorf("%w: unknown exercise %q", model.ErrInvalidArgument, exercise)
	}

	if err != nil {
		logger.Error(ctx, "exercise failed", logger.ErrorF(err))
		return fmt.Errorf("%s %s: %w", op, exercise, err)
	}

	logger.Info(ctx, "exercise finished")
	return nil
}

func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(),
		config.C().Snapshot.Timeout(),
	)
	defer cancel()

	if err := closer.CloseAll(ctx); err != nil {
		logger.Error(ctx, "failed to close resources", logger.ErrorF(err))
	}
}
