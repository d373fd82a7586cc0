package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chalopaltai/somity-ledger/internal/config"
)

var seedFileFlag string

// seedCmd represents the seed command.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed a fresh ledger database",
	Long: `Seed a fresh ledger database with first-run users and members.

Seeding only writes collections that have never been written; running it
against an existing database changes nothing.

Example:
  somity seed
  somity seed --file seed.yaml`,
	Run: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFileFlag, "file", "", "YAML seed file (default is built-in seed)")
}

func runSeed(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if seedFileFlag != "" {
		cfg.SeedFile = seedFileFlag
	}

	st, err := openStore(cfg)
	exitOnError(err, "failed to seed database")
	defer func() { _ = st.Close() }()

	users, err := st.Users()
	exitOnError(err, "failed to read users")
	members, err := st.Members()
	exitOnError(err, "failed to read members")

	slog.Info("database seeded", "db_path", cfg.DBPath, "users", len(users), "members", len(members))
}
