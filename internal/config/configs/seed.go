package configs

// Seed funds demo contributor accounts on startup. Only accounts the ledger
// has never seen are funded, so restarts do not mint again.
type Seed struct {
	Enabled      bool     `env:"ENABLED" envDefault:"false"`
	Contributors []string `env:"CONTRIBUTORS" envDefault:"alice,bob,carol" envSeparator:","`
	Balance      uint64   `env:"BALANCE" envDefault:"1000"`
}
