package configs

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Storage selects where campaign state and the asset ledger live. The
// memory driver keeps everything in process and is meant for local runs.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}
