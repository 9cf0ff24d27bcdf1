package migrations

import "embed"

// FS embeds the campaign, holding, event and ledger schema. golang-migrate
// reads it through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
