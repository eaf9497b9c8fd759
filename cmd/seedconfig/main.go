// seedconfig writes the singleton upload-checklist record. It is the only
// writer of that record; the API reads it but never mutates it.
//
// Usage:
//
//	PHOTOS_TABLE=event-photos seedconfig -file checklist.json
//
// where checklist.json holds: {"items":[{"id":"consent","text":"...","required":true}]}
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/eventgram/photoshare/internal/model"
	"github.com/eventgram/photoshare/internal/storage"
)

func main() {
	file := flag.String("file", "checklist.json", "checklist definition file")
	flag.Parse()

	table := os.Getenv("PHOTOS_TABLE")
	if table == "" {
		log.Fatal("PHOTOS_TABLE must be set")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}

	var cfg model.ChecklistConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("parse %s: %v", *file, err)
	}
	if len(cfg.Items) == 0 {
		log.Fatalf("%s defines no checklist items", *file)
	}
	for _, item := range cfg.Items {
		if item.ID == "" || item.Text == "" {
			log.Fatalf("checklist item %+v needs both id and text", item)
		}
	}
	cfg.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("load AWS config: %v", err)
	}

	store := storage.NewDynamoDBStore(dynamodb.NewFromConfig(awsCfg), table)
	if err := store.PutChecklist(ctx, &cfg); err != nil {
		log.Fatalf("write checklist: %v", err)
	}
	log.Printf("wrote %d checklist items to %s", len(cfg.Items), table)
}
