package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aislekit/aislekit/internal/filex"
)

func (a *App) Docs(ctx context.Context, args []string) error {
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
		if err := a.docs.Load(ctx, a.tenant); err != nil {
			log.Printf("error loading documents: %v", err)
			return err
		}
		for _, d := range a.docs.Collection() {
			printlnFn(fmt.Sprintf("  %s  %-30s %8d bytes", d.ID, d.Name, d.SizeBytes))
		}
		return nil

	case "upload":
		return a.uploadDoc(ctx)

	case "download":
		if len(args) != 2 {
			printlnFn("Usage: docs download <id>")
			return nil
		}
		return a.downloadDoc(ctx, args[1])

	case "delete":
		if len(args) != 2 {
			printlnFn("Usage: docs delete <id>")
			return nil
		}
		if err := a.docs.Delete(ctx, a.tenant, args[1]); err != nil {
			log.Printf("error deleting document: %v", err)
			return err
		}
		return nil

	default:
		printlnFn("Usage: docs [list|upload|download <id>|delete <id>]")
		return nil
	}
}

func (a *App) uploadDoc(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Path to file", os.Stdout)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error reading file: %v", err)
		return err
	}

	name := filepath.Base(path)
	if err := a.docs.Upload(ctx, a.tenant, name, "application/octet-stream", payload); err != nil {
		log.Printf("error uploading document: %v", err)
		return err
	}
	printlnFn("Uploaded", name)
	return nil
}

func (a *App) downloadDoc(ctx context.Context, id string) error {
	payload, err := a.docs.Download(ctx, a.tenant, id)
	if err != nil {
		log.Printf("error downloading document: %v", err)
		return err
	}

	dir, err := filex.EnsureSubDir("downloads")
	if err != nil {
		return err
	}

	name := id
	for _, d := range a.docs.Collection() {
		if d.ID == id {
			name = d.Name
			break
		}
	}

	dest := filepath.Join(dir, name)
	if err := os.WriteFile(dest, payload, 0o600); err != nil {
		log.Printf("error writing file: %v", err)
		return err
	}
	printlnFn("Saved to", dest)
	return nil
}
