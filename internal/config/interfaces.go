package config

import "time"

type Logger interface {
	Level() string
	AsJSON() bool
}

type Snapshot interface {
	Backend() string
	Path() string
	Timeout() time.Duration
}

type Database interface {
	DatabaseName() string
	InventoryCollection() string
	DSN() string
}

type Redis interface {
	Addr() string
	Password() string
	DB() int
	SnapshotKey() string
}

type Grading interface {
	InputPath() string
	ReportPath() string
}
