package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/go-dlt/dltcore/reader"
	"github.com/go-dlt/dltcore/stats"
)

func newStatCommand() *cobra.Command {
	var noStorageHeader bool

	cmd := &cobra.Command{
		Use:   "stat <file>",
		Short: "Tally message counts by ecu id, app id, and log level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(args[0], !noStorageHeader)
		},
	}

	cmd.Flags().BoolVar(&noStorageHeader, "no-storage-header", false, "input has bare standard headers, no 16-byte storage prefix")

	return cmd
}

func runStat(path string, withStorage bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := reader.NewSyncReader(f, withStorage)
	defer r.Close()
	collector := stats.NewTallyCollector()

	if err := stats.CollectStatistics(r, collector); err != nil {
		return fmt.Errorf("collecting statistics: %w", err)
	}

	printTally("ecu", collector.EcuIDs)
	printTally("app", collector.AppIDs)
	printTally("context", collector.ContextIDs)
	fmt.Printf("contained non-verbose messages: %t\n", collector.ContainedNonVerbose)

	return nil
}

func printTally(label string, dist map[string]*stats.LevelDistribution) {
	ids := make([]string, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		d := dist[id]
		fmt.Printf("%s=%s non_log=%d fatal=%d error=%d warning=%d info=%d debug=%d verbose=%d invalid=%d\n",
			label, id, d.NonLog, d.LogFatal, d.LogError, d.LogWarning, d.LogInfo, d.LogDebug, d.LogVerbose, d.LogInvalid)
	}
}
