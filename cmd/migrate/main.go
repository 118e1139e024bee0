package main

import (
	"context"
	"fmt"
	"time"

	"seotda-server/pkg/db"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// CLI manages the game record schema
type CLI struct {
	Wait time.Duration `help:"How long to wait for the database to come up." default:"10s"`

	Up      UpCmd      `cmd:"" default:"1" help:"Apply every pending migration."`
	Down    DownCmd    `cmd:"" help:"Roll back migrations."`
	Version VersionCmd `cmd:"" help:"Print the schema version."`
}

// UpCmd applies migrations
type UpCmd struct{}

// Run applies migrations
func (u *UpCmd) Run() error {
	if err := db.Migrate(); err != nil {
		return err
	}

	logrus.Info("migrations are up to date")
	return nil
}

// DownCmd rolls back migrations
type DownCmd struct {
	Steps int `help:"Number of migrations to roll back." default:"1"`
}

// Run rolls back migrations
func (d *DownCmd) Run() error {
	if err := db.MigrateDown(d.Steps); err != nil {
		return err
	}

	logrus.WithField("steps", d.Steps).Info("rolled back")
	return nil
}

// VersionCmd prints the schema version
type VersionCmd struct{}

// Run prints the schema version
func (v *VersionCmd) Run(ctx *kong.Context) error {
	version, dirty, err := db.Version()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(ctx.Stdout, "version %d (dirty: %t)\n", version, dirty)
	return err
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("migrate"),
		kong.Description("Manage the seotda game record schema."),
		kong.UsageOnError(),
	)

	if err := db.WaitForDB(context.Background(), cli.Wait); err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}

	if err := ctx.Run(); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}
}
