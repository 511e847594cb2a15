package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-dlt/dltcore/fibex"
)

func newFibexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fibex <file.xml> <context-id> <app-id> <frame-id>",
		Short: "Resolve a non-verbose frame by context id, app id, and frame id",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			frameID, err := strconv.ParseUint(args[3], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid frame id %q: %w", args[3], err)
			}

			return runFibexLookup(args[0], args[1], args[2], uint32(frameID))
		},
	}

	return cmd
}

func runFibexLookup(path, ctxID, appID string, frameID uint32) error {
	meta, err := fibex.LoadFiles(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	fr, ok := meta.Lookup(ctxID, appID, frameID)
	if !ok {
		return fmt.Errorf("no frame found for context=%s app=%s frame_id=%d", ctxID, appID, frameID)
	}

	fmt.Printf("frame %s (%s): %d pdu(s)\n", fr.ID, fr.ShortName, len(fr.Pdus))
	for i, pdu := range fr.Pdus {
		fmt.Printf("  pdu %d: %s, %d signal(s)\n", i, pdu.Description, len(pdu.SignalTypes))
		for j, st := range pdu.SignalTypes {
			fmt.Printf("    signal %d: kind=%v width=%d\n", j, st.Kind, st.Width)
		}
	}

	return nil
}
