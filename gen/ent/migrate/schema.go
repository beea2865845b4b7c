// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProposedTargetsColumns holds the columns for the "proposed_targets" table.
	ProposedTargetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "url", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "source_prompt", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProposedTargetsTable holds the schema information for the "proposed_targets" table.
	ProposedTargetsTable = &schema.Table{
		Name:       "proposed_targets",
		Columns:    ProposedTargetsColumns,
		PrimaryKey: []*schema.Column{ProposedTargetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "proposedtarget_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProposedTargetsColumns[1], ProposedTargetsColumns[6], ProposedTargetsColumns[7]},
			},
		},
	}
	// ScanResultsColumns holds the columns for the "scan_results" table.
	ScanResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_data", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "screenshot", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "review_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "target_id", Type: field.TypeUUID},
	}
	// ScanResultsTable holds the schema information for the "scan_results" table.
	ScanResultsTable = &schema.Table{
		Name:       "scan_results",
		Columns:    ScanResultsColumns,
		PrimaryKey: []*schema.Column{ScanResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_results_targets_scans",
				Columns:    []*schema.Column{ScanResultsColumns[8]},
				RefColumns: []*schema.Column{TargetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanresult_target_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScanResultsColumns[8], ScanResultsColumns[7]},
			},
			{
				Name:    "scanresult_target_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScanResultsColumns[8], ScanResultsColumns[1], ScanResultsColumns[7]},
			},
		},
	}
	// TargetsColumns holds the columns for the "targets" table.
	TargetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "url", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Nullable: true},
		{Name: "schedule", Type: field.TypeString, Default: "monthly"},
		{Name: "custom_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "master_data", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TargetsTable holds the schema information for the "targets" table.
	TargetsTable = &schema.Table{
		Name:       "targets",
		Columns:    TargetsColumns,
		PrimaryKey: []*schema.Column{TargetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "target_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TargetsColumns[1], TargetsColumns[9]},
			},
			{
				Name:    "target_user_id_active",
				Unique:  false,
				Columns: []*schema.Column{TargetsColumns[1], TargetsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProposedTargetsTable,
		ScanResultsTable,
		TargetsTable,
	}
)

func init() {
	ProposedTargetsTable.Annotation = &entsql.Annotation{
		Table: "proposed_targets",
	}
	ScanResultsTable.ForeignKeys[0].RefTable = TargetsTable
	ScanResultsTable.Annotation = &entsql.Annotation{
		Table: "scan_results",
	}
	TargetsTable.Annotation = &entsql.Annotation{
		Table: "targets",
	}
}
