// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/marketlens/marketlens/gen/ent/scanresult"
	"github.com/marketlens/marketlens/gen/ent/target"
)

// ScanResult is the model entity for the ScanResult schema.
type ScanResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TargetID holds the value of the "target_id" field.
	TargetID uuid.UUID `json:"target_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Content holds the value of the "content" field.
	Content *string `json:"content,omitempty"`
	// ExtractedData holds the value of the "extracted_data" field.
	ExtractedData *string `json:"extracted_data,omitempty"`
	// Screenshot holds the value of the "screenshot" field.
	Screenshot *string `json:"screenshot,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ReviewStatus holds the value of the "review_status" field.
	ReviewStatus string `json:"review_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScanResultQuery when eager-loading is set.
	Edges        ScanResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScanResultEdges holds the relations/edges for other nodes in the graph.
type ScanResultEdges struct {
	// Target holds the value of the target edge.
	Target *Target `json:"target,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TargetOrErr returns the Target value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScanResultEdges) TargetOrErr() (*Target, error) {
	if e.Target != nil {
		return e.Target, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: target.Label}
	}
	return nil, &NotLoadedError{edge: "target"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScanResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scanresult.FieldStatus, scanresult.FieldContent, scanresult.FieldExtractedData, scanresult.FieldScreenshot, scanresult.FieldErrorMessage, scanresult.FieldReviewStatus:
			values[i] = new(sql.NullString)
		case scanresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case scanresult.FieldID, scanresult.FieldTargetID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScanResult fields.
func (_m *ScanResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scanresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scanresult.FieldTargetID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field target_id", values[i])
			} else if value != nil {
				_m.TargetID = *value
			}
		case scanresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case scanresult.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = new(string)
				*_m.Content = value.String
			}
		case scanresult.FieldExtractedData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_data", values[i])
			} else if value.Valid {
				_m.ExtractedData = new(string)
				*_m.ExtractedData = value.String
			}
		case scanresult.FieldScreenshot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field screenshot", values[i])
			} else if value.Valid {
				_m.Screenshot = new(string)
				*_m.Screenshot = value.String
			}
		case scanresult.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case scanresult.FieldReviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_status", values[i])
			} else if value.Valid {
				_m.ReviewStatus = value.String
			}
		case scanresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScanResult.
// This includes values selected through modifiers, order, etc.
func (_m *ScanResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTarget queries the "target" edge of the ScanResult entity.
func (_m *ScanResult) QueryTarget() *TargetQuery {
	return NewScanResultClient(_m.config).QueryTarget(_m)
}

// Update returns a builder for updating this ScanResult.
// Note that you need to call ScanResult.Unwrap() before calling this method if this ScanResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScanResult) Update() *ScanResultUpdateOne {
	return NewScanResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScanResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScanResult) Unwrap() *ScanResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScanResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScanResult) String() string {
	var builder strings.Builder
	builder.WriteString("ScanResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("target_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Content; v != nil {
		builder.WriteString("content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedData; v != nil {
		builder.WriteString("extracted_data=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Screenshot; v != nil {
		builder.WriteString("screenshot=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("review_status=")
	builder.WriteString(_m.ReviewStatus)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScanResults is a parsable slice of ScanResult.
type ScanResults []*ScanResult
