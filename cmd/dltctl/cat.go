package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-dlt/dltcore/filter"
	"github.com/go-dlt/dltcore/message"
	"github.com/go-dlt/dltcore/reader"
)

func newCatCommand() *cobra.Command {
	var noStorageHeader bool

	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Decode and print every message in a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadFileConfig(configPath)
			if err != nil {
				return err
			}

			compiled, err := fileCfg.compileFilter()
			if err != nil {
				return err
			}

			return runCat(args[0], !noStorageHeader, compiled)
		},
	}

	cmd.Flags().BoolVar(&noStorageHeader, "no-storage-header", false, "input has bare standard headers, no 16-byte storage prefix")

	return cmd
}

func runCat(path string, withStorage bool, cfg *filter.ProcessedFilterConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := reader.NewSyncReader(f, withStorage)
	defer r.Close()

	for {
		parsed, err := reader.ReadMessage(r, cfg)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			slog.Error("decode failed, attempting resync", "error", err)
			if _, rerr := r.Resync(); rerr != nil {
				return rerr
			}
			continue
		}

		printParsed(parsed)
	}
}

func printParsed(p message.Parsed) {
	switch p.Outcome {
	case message.OutcomeFilteredOut:
		fmt.Printf("<filtered, %d byte payload skipped>\n", p.PayloadLength)
	case message.OutcomeInvalid:
		fmt.Printf("<invalid header, skipped %d bytes>\n", p.SkipLength)
	case message.OutcomeItem:
		msg := p.Message
		appID, ctxID := "-", "-"
		if msg.ExtendedHeader != nil {
			appID, ctxID = msg.ExtendedHeader.AppID, msg.ExtendedHeader.CtxID
		}
		fmt.Printf("%s [%s] %s/%s: %v\n", msg.EcuID(), msg.Type(), appID, ctxID, msg.Payload)
	}
}
