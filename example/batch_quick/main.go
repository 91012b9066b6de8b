package main

import (
	"context"
	"fmt"

	"github.com/osmike/batchkit"
)

func main() {
	ctx := context.Background()

	mon, err := batchkit.NewMonitor(batchkit.MonitorConfig{
		Title:      "quickstart run",
		Contacts:   []string{"me@example.com"},
		LogDir:     "./logs",
		PurgeAfter: 7,
	}, nil)
	if err != nil {
		panic(err)
	}

	days, _ := batchkit.DefaultFormat().Range("20170320", "20170327")
	counts, err := batchkit.Map(ctx, days, 4, func(_ context.Context, day string) (int, error) {
		// pretend to count rows for the day's partition
		return 1000 + len(day), nil
	})
	if err != nil {
		mon.UpdateWithError("counting rows", err)
	} else {
		mon.UpdateWithSuccess("counting rows")
	}

	total := 0.0
	for _, c := range counts {
		total += float64(c)
	}
	mon.UpdateWithKPIs("volume check", batchkit.KPITest{
		Name:      "rows.total",
		Value:     total,
		Must:      batchkit.SuperiorThan,
		Threshold: 5000,
	})

	path, err := mon.Store(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Printf("run success=%v, report stored at %s\n", mon.Success(), path)
}
