// Package calendar parses calendar service flags and launches the service.
package calendar

import (
	"context"
	"flag"
	"log"

	entrypoint "github.com/okarvel/duskhaven/internal/platform/cmd"
	"github.com/okarvel/duskhaven/internal/services/calendar/app"
	"github.com/okarvel/duskhaven/internal/services/calendar/domain"
	"github.com/okarvel/duskhaven/internal/services/calendar/storage/sqlite"
)

// Config holds calendar command configuration.
type Config struct {
	DBPath              string `env:"DUSKHAVEN_CALENDAR_DB" envDefault:"calendar.db"`
	NotifyCreatorInvite bool   `env:"DUSKHAVEN_CALENDAR_NOTIFY_CREATOR" envDefault:"false"`
	MailDecliners       bool   `env:"DUSKHAVEN_CALENDAR_MAIL_DECLINERS" envDefault:"true"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the calendar SQLite database")
	fs.BoolVar(&cfg.NotifyCreatorInvite, "notify-creator", cfg.NotifyCreatorInvite, "also notify creators of their own invites")
	fs.BoolVar(&cfg.MailDecliners, "mail-decliners", cfg.MailDecliners, "mail removal notices to invitees who declined")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the calendar store, loads the registry and holds it until the
// context ends. The world server attaches its player, group and mail
// collaborators when it embeds the manager; this standalone process runs
// with offline collaborators and is used to migrate and verify a calendar
// database.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCalendar, func(context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		policy := app.Policy{
			NotifyCreatorOfOwnInvite: cfg.NotifyCreatorInvite,
			MailDecliners:            cfg.MailDecliners,
		}
		mgr := app.NewManager(store, offlinePlayers{}, offlineGroups{}, nil, policy, nil)
		if err := mgr.Load(ctx); err != nil {
			return err
		}
		log.Printf("loaded %d calendar events", mgr.EventCount())
		log.Printf("loaded %d calendar invites", mgr.InviteCount())

		<-ctx.Done()
		return nil
	})
}

// offlinePlayers resolves nothing: no player is connected and no group
// membership is known outside the world server.
type offlinePlayers struct{}

func (offlinePlayers) FindConnected(domain.PlayerID) (app.Session, bool) { return nil, false }
func (offlinePlayers) Level(domain.PlayerID) uint8                       { return 0 }
func (offlinePlayers) GroupOf(domain.PlayerID) domain.GroupID            { return domain.NoGroupID }

type offlineGroups struct{}

func (offlineGroups) GroupByID(domain.GroupID) (app.Group, bool) { return nil, false }
