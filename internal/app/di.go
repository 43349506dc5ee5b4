package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/config"
	envconfig "github.com/Hughesneal88/dcit318-assignment3-11178252/internal/config/env"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/repository/snapshot"
	financesvc "github.com/Hughesneal88/dcit318-assignment3-11178252/internal/service/finance"
	gradingsvc "github.com/Hughesneal88/dcit318-assignment3-11178252/internal/service/grading"
	healthsvc "github.com/Hughesneal88/dcit318-assignment3-11178252/internal/service/healthcare"
	inventorysvc "github.com/Hughesneal88/dcit318-assignment3-11178252/internal/service/inventory"
	warehousesvc "github.com/Hughesneal88/dcit318-assignment3-11178252/internal/service/warehouse"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/transport/console"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/platform/closer"
)

const savingsOpeningCents = 100000

type FinanceService interface {
	Run(ctx context.Context, payments []financesvc.Payment) error
}

type HealthService interface {
	Run(ctx context.Context, patientID int) error
}

type WarehouseService interface {
	Run(ctx context.Context) error
}

type GradingService interface {
	Run(ctx context.Context, input string) error
}

type di struct {
	out     io.Writer
	printer *console.Printer

	mongo      *mongo.Client
	collection *mongo.Collection
	redis      *redis.Client

	store inventorysvc.SnapshotStore

	finance   FinanceService
	health    HealthService
	warehouse WarehouseService
	grading   GradingService
}

func NewDI(out io.Writer) *di { return &di{out: out} }

func (d *di) Printer() *console.Printer {
	if d.printer == nil {
		if d.out == nil {
			d.out = os.Stdout
		}
		d.printer = console.NewPrinter(d.out)
	}

	return d.printer
}

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(config.C().Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) InventoryCollection(ctx context.Context) *mongo.Collection {
	if d.collection == nil {
		d.collection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.InventoryCollection())
	}

	return d.collection
}

func (d *di) Redis(ctx context.Context) *redis.Client {
	if d.redis == nil {
		cfg := config.C().Redis

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		closer.AddNamed("Redis Client",
			func(context.Context) error {
				return client.Close()
			})

		if err := client.Ping(ctx).Err(); err != nil {
			panic(fmt.Sprintf("failed to ping redis: %v\n", err))
		}

		d.redis = client
	}

	return d.redis
}

// SnapshotStore picks the inventory backend named by SNAPSHOT_BACKEND.
func (d *di) SnapshotStore(ctx context.Context) inventorysvc.SnapshotStore {
	if d.store == nil {
		switch cfg := config.C(); cfg.Snapshot.Backend() {
		case envconfig.BackendMongo:
			d.store = snapshot.NewMongoStore(d.InventoryCollection(ctx))
		case envconfig.BackendRedis:
			d.store = snapshot.NewRedisStore[model.InventoryItem](d.Redis(ctx), cfg.Redis.SnapshotKey())
		default:
			d.store = snapshot.NewFileStore[model.InventoryItem](cfg.Snapshot.Path())
		}
	}

	return d.store
}

func (d *di) FinanceService(_ context.Context) FinanceService {
	if d.finance == nil {
		account := financesvc.NewSavingsAccount("SAV-001", savingsOpeningCents, d.Printer())
		d.finance = financesvc.NewFinanceService(account, d.Printer())
	}

	return d.finance
}

func (d *di) HealthService(_ context.Context) HealthService {
	if d.health == nil {
		d.health = healthsvc.NewHealthService(d.Printer())
	}

	return d.health
}

func (d *di) WarehouseService(_ context.Context) WarehouseService {
	if d.warehouse == nil {
		d.warehouse = warehousesvc.NewWarehouseService(d.Printer())
	}

	return d.warehouse
}

func (d *di) GradingService(_ context.Context) GradingService {
	if d.grading == nil {
		cfg := config.C().Grading
		d.grading = gradingsvc.NewGradingService(cfg.InputPath(), cfg.ReportPath(), d.Printer())
	}

	return d.grading
}

// InventoryRun plays a save session and a load session against one store.
func (d *di) InventoryRun(ctx context.Context) error {
	store := d.SnapshotStore(ctx)
	timeout := config.C().Snapshot.Timeout()

	first := inventorysvc.NewInventoryService(store, timeout, d.Printer())
	second := inventorysvc.NewInventoryService(store, timeout, d.Printer())

	return inventorysvc.Run(ctx, first, second)
}
