package cli

import (
	"context"
	"log"
	"os"

	"github.com/aislekit/aislekit/internal/client/api"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	partner1, err := GetSimpleText(a.reader, "First partner's name", os.Stdout)
	if err != nil {
		return err
	}
	partner2, err := GetSimpleText(a.reader, "Second partner's name", os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.api.Register(ctx, email, string(password), partner1, partner2)
	if err != nil {
		log.Printf("Registration unsuccessful: %v", err)
		return err
	}

	a.tenant = api.Tenant(session.CoupleID)
	log.Println("Registration successful")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	session, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %v", err)
		return err
	}

	a.tenant = api.Tenant(session.CoupleID)
	log.Println("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.ClearTokens()
	a.tenant = ""
	log.Println("Logged out")
	return nil
}
