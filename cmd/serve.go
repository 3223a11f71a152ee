package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"reldb/client"
	"reldb/database"
	"reldb/replication"
	"reldb/server"
	"reldb/storage"
)

var (
	servePort      int
	serveReplicaOf string
	serveLoadPath  string
	serveSyncSecs  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the database over HTTP, as a primary or a replica",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := database.New()
		if serveLoadPath != "" {
			loaded, err := storage.Load(serveLoadPath)
			if err != nil {
				return err
			}
			db = loaded
		}

		config := replication.NewPrimary()
		if serveReplicaOf != "" {
			config = replication.NewReplica(serveReplicaOf)
			config.SyncInterval = time.Duration(serveSyncSecs) * time.Second
		}
		mgr := replication.NewManager(config, db, client.Transport{})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if serveReplicaOf != "" {
			selfURL := fmt.Sprintf("http://localhost:%d", servePort)
			if err := client.New(serveReplicaOf).Register(selfURL); err != nil {
				fmt.Printf("warning: could not register with primary: %v\n", err)
			}
			mgr.StartSync(ctx)
		}

		return server.New(server.Config{Port: servePort}, db, mgr).Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", envInt("RELDB_PORT", 8080), "port to listen on")
	serveCmd.Flags().StringVar(&serveReplicaOf, "replica-of", "", "primary URL; run this node as a read-only replica")
	serveCmd.Flags().StringVar(&serveLoadPath, "load", envString("RELDB_DATA", ""), "snapshot file to load on startup")
	serveCmd.Flags().IntVar(&serveSyncSecs, "sync-interval", 5, "replica pull interval in seconds")
}
