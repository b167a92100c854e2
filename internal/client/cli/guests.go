package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/aislekit/aislekit/internal/client/models"
)

func (a *App) Guests(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		return a.listGuests(ctx)
	case "add":
		return a.addGuest(ctx)
	case "rsvp":
		return a.setGuestRSVP(ctx, args[1:])
	case "delete":
		return a.deleteGuest(ctx, args[1:])
	case "seating":
		return a.showSeating(ctx)
	default:
		printlnFn("Usage: guests [list|add|rsvp <id> <status>|delete <id>|seating]")
		return nil
	}
}

func (a *App) listGuests(ctx context.Context) error {
	if err := a.guests.Load(ctx, a.tenant); err != nil {
		log.Printf("error loading guests: %v", err)
		return err
	}

	counts := a.guests.RSVPCounts()
	printlnFn(fmt.Sprintf("Guests (%d confirmed, %d pending, %d declined; headcount %d):",
		counts[models.RSVPConfirmed], counts[models.RSVPPending], counts[models.RSVPDeclined],
		a.guests.ConfirmedHeadcount()))
	for _, g := range a.guests.Collection() {
		printlnFn(fmt.Sprintf("  %s  %-25s %-10s +%d", g.ID, g.Name, g.RSVP, g.PlusOnes))
	}
	return nil
}

func (a *App) addGuest(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Guest name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email (optional)", os.Stdout)
	if err != nil {
		return err
	}
	plusOnesStr, err := GetSimpleText(a.reader, "Plus-ones (0..)", os.Stdout)
	if err != nil {
		return err
	}
	plusOnes, _ := strconv.Atoi(plusOnesStr)

	draft := models.Guest{Name: name, Email: email, PlusOnes: plusOnes}
	if err := a.guests.Add(ctx, a.tenant, draft); err != nil {
		log.Printf("error adding guest: %v", err)
		return err
	}
	printlnFn("Guest added")
	return nil
}

func (a *App) setGuestRSVP(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: guests rsvp <id> <pending|confirmed|declined>")
		return nil
	}
	id, status := args[0], models.RSVPStatus(args[1])

	for _, g := range a.guests.Collection() {
		if g.ID == id {
			g.RSVP = status
			if err := a.guests.Update(ctx, a.tenant, g); err != nil {
				log.Printf("error updating guest: %v", err)
				return err
			}
			printlnFn("RSVP updated")
			return nil
		}
	}
	printlnFn("Guest not found:", id)
	return nil
}

func (a *App) deleteGuest(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: guests delete <id>")
		return nil
	}
	if err := a.guests.Delete(ctx, a.tenant, args[0]); err != nil {
		log.Printf("error deleting guest: %v", err)
		return err
	}
	printlnFn("Guest deleted")
	return nil
}

func (a *App) showSeating(ctx context.Context) error {
	if err := a.guests.Load(ctx, a.tenant); err != nil {
		log.Printf("error loading guests: %v", err)
		return err
	}
	for _, group := range a.guests.TableSeating() {
		printlnFn(fmt.Sprintf("Table %d:", group.Table))
		for _, g := range group.Guests {
			printlnFn("  " + g.Name)
		}
	}
	return nil
}
