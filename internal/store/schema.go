package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	llmEventsTable            = "llm_request_events"
	classificationEventsTable = "classification_events"
)

// eventTable returns a table carrying the columns shared by every event:
// id, global sequence and timestamp, with their indexes.
func eventTable(name string, columns ...*schema.Column) *schema.Table {
	t := schema.NewTable(name).
		AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true}).
		AddColumn(&schema.Column{Name: "sequence", Type: field.TypeInt64, Unique: true}).
		AddColumn(&schema.Column{Name: "timestamp", Type: field.TypeTime})
	for _, c := range columns {
		t.AddColumn(c)
	}
	return t.
		AddIndex(name+"_sequence", false, []string{"sequence"}).
		AddIndex(name+"_timestamp", false, []string{"timestamp"})
}

func textColumn(name string) *schema.Column {
	return &schema.Column{Name: name, Type: field.TypeString, Default: ""}
}

func llmEventsSchema() *schema.Table {
	return eventTable(llmEventsTable,
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		textColumn("error_message"),
		textColumn("request_body"),
		textColumn("response_body"),
	).
		AddIndex("llmrequestevent_purpose", false, []string{"purpose"}).
		AddIndex("llmrequestevent_success", false, []string{"success"})
}

func classificationEventsSchema() *schema.Table {
	return eventTable(classificationEventsTable,
		&schema.Column{Name: "session_id", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "ratings", Type: field.TypeJSON},
		&schema.Column{Name: "main_type", Type: field.TypeString},
		&schema.Column{Name: "source", Type: field.TypeString},
		&schema.Column{Name: "scores", Type: field.TypeJSON},
		textColumn("degradation"),
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
	).
		AddIndex("classificationevent_main_type", false, []string{"main_type"}).
		AddIndex("classificationevent_source", false, []string{"source"})
}

func sequenceSchema() *schema.Table {
	return schema.NewTable(sequenceTable).
		AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "next_val", Type: field.TypeInt64, Default: 1})
}

// migrate creates or updates the event tables and the sequence counter.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("init migration: %w", err)
	}
	if err := m.Create(ctx, llmEventsSchema(), classificationEventsSchema(), sequenceSchema()); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
