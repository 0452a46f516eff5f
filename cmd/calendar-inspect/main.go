// Package main prints a summary of a calendar database.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/okarvel/duskhaven/internal/platform/config"
	"github.com/okarvel/duskhaven/internal/services/calendar/storage/sqlite"
)

func main() {
	dbPath := flag.String("db", "calendar.db", "path to the calendar SQLite database")
	flag.Parse()

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		config.Exitf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	events, err := store.LoadEvents(ctx)
	if err != nil {
		config.Exitf("load events: %v", err)
	}
	invites, err := store.LoadInvites(ctx)
	if err != nil {
		config.Exitf("load invites: %v", err)
	}

	fmt.Printf("%s: %d events, %d invites\n", *dbPath, len(events), len(invites))
	for _, ev := range events {
		n := 0
		for _, inv := range invites {
			if inv.EventID == ev.ID {
				n++
			}
		}
		fmt.Printf("  event %d %q at %s (%d invites)\n", ev.ID, ev.Title, ev.Time.Format(time.RFC3339), n)
	}
}
