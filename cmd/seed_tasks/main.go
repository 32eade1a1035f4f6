package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"todo_webapp/internal/config"
	"todo_webapp/internal/db"
	"todo_webapp/internal/repository"
)

func main() {
	n := flag.Int("n", 3, "number of sample tasks to insert")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	conns, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conns.Close()

	ctx := context.Background()
	if err := db.CreateSchema(ctx, conns, conns.Dialect()); err != nil {
		log.Fatalf("schema: %v", err)
	}

	repo := repository.NewTaskRepository(conns, conns.Dialect())
	for i := 1; i <= *n; i++ {
		if err := repo.Insert(ctx, fmt.Sprintf("Sample task #%d", i)); err != nil {
			log.Fatalf("insert failed: %v", err)
		}
	}
	log.Printf("inserted %d tasks\n", *n)

	// verify read
	tasks, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("list failed: %v", err)
	}
	for _, t := range tasks {
		log.Printf("id=%d task=%q created_at=%v\n", t.ID, t.Description, t.CreatedAt)
	}
}
