package main

import (
	"context"
	"flag"
	"fmt"

	"todo_webapp/internal/config"
	"todo_webapp/internal/db"
	"todo_webapp/internal/logger"
)

// Prints the tasks DDL for the configured driver, or applies it with -apply.
// Unlike the server, a failure here exits non-zero.
func main() {
	apply := flag.Bool("apply", false, "apply the schema")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	conns, err := db.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("failed to configure database", "error", err)
	}
	defer conns.Close()

	d := conns.Dialect()
	if !*apply {
		fmt.Println(d.CreateTasksTable())
		return
	}

	if err := db.CreateSchema(context.Background(), conns, d); err != nil {
		logger.Fatal("failed to apply schema", "dialect", d.Name, "error", err)
	}
	fmt.Printf("applied tasks schema (%s)\n", d.Name)
}
