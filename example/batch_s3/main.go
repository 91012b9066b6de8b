package main

import (
	"context"
	"fmt"

	"github.com/osmike/batchkit"
)

// Stores run reports in a minio bucket instead of the local filesystem.
func main() {
	ctx := context.Background()

	store := batchkit.NewS3FS(batchkit.S3Config{
		Endpoint:  "http://127.0.0.1:9000",
		Region:    "us-east-1",
		Bucket:    "batch-logs",
		AccessKey: "minio",
		SecretKey: "minio123",
	})

	mon, err := batchkit.NewMonitor(batchkit.MonitorConfig{
		Title:      "s3-backed run",
		LogDir:     "reports/nightly",
		PurgeAfter: 30,
	}, store)
	if err != nil {
		panic(err)
	}

	files, err := store.List(ctx, "input/20170327")
	if err != nil {
		mon.UpdateWithError("listing input", err)
	} else {
		mon.UpdateWithSuccess(fmt.Sprintf("listing input (%d files)", len(files)))
	}

	if _, err := mon.Store(ctx); err != nil {
		panic(err)
	}
	fmt.Printf("run success=%v\n", mon.Success())
}
