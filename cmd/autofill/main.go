package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"train-autofill/internal/adapters/primary/page"
	"train-autofill/internal/adapters/secondary/trainlookup"
	"train-autofill/internal/config"
	"train-autofill/internal/core/domain"
	"train-autofill/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	client := trainlookup.NewTrainLookupClient(&cfg.Lookup)
	log.WithField("lookup_url", cfg.Lookup.URL).Info("train name lookup configured")

	doc := page.NewDocument(domain.TrainNumberElementID, domain.TrainNameElementID)

	var autofill *services.AutofillHandler
	doc.OnReady(func(ctx context.Context, d *page.Document) error {
		h, err := page.BindAutofill(ctx, d, client, log.StandardLogger())
		autofill = h
		return err
	})
	if err := doc.Load(); err != nil {
		log.Fatalf("load form: %v", err)
	}

	// Unload on signal so a hung lookup cannot keep the process alive.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("unloading form...")
		doc.Unload()
		_ = os.Stdin.Close()
	}()

	if err := run(doc, autofill, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("read train numbers: %v", err)
	}

	doc.Unload()
	log.Info("form closed")
}

// run types each input line into the train number field, leaves the field and
// prints the train name once every outstanding lookup has settled.
func run(doc *page.Document, autofill *services.AutofillHandler, in io.Reader, out io.Writer) error {
	numberEl, _ := doc.GetElementByID(domain.TrainNumberElementID)
	nameEl, _ := doc.GetElementByID(domain.TrainNameElementID)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		numberEl.SetValue(strings.TrimRight(scanner.Text(), "\r"))
		numberEl.Blur()
		autofill.Wait()

		if _, err := fmt.Fprintf(out, "%s=%s\n", domain.TrainNameElementID, nameEl.Value()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
