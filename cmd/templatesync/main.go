package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/xiaogao007/Stickplanet/internal/db"
	"github.com/xiaogao007/Stickplanet/internal/models"
	"github.com/xiaogao007/Stickplanet/internal/services"
)

// templatesync upserts a JSON catalog file straight into the database,
// for deployments where calling the HTTP sync endpoint is inconvenient.
func main() {
	filePath := flag.String("file", "templates.json", "path to the template catalog JSON file")
	dbPath := flag.String("db", "data/stickplanet.db", "path to the SQLite database")
	flag.Parse()

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read catalog file: %v", err)
	}

	defs := []services.TemplateDef{}
	if err := json.Unmarshal(raw, &defs); err != nil {
		log.Fatalf("parse catalog file: %v", err)
	}

	database, err := db.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repositories := db.NewRepositories(database)
	templateService := services.NewTemplateService(repositories.Plans)

	result, err := templateService.SyncTemplates(defs, services.SyncCaller{ID: "templatesync", Role: models.RoleAdmin})
	if err != nil {
		log.Fatalf("template sync failed: %v", err)
	}
	log.Printf("template sync done: %d inserted, %d updated", result.Inserted, result.Updated)
}
