// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/marketlens/marketlens/db/ent/schema"
	"github.com/marketlens/marketlens/gen/ent/proposedtarget"
	"github.com/marketlens/marketlens/gen/ent/scanresult"
	"github.com/marketlens/marketlens/gen/ent/target"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	proposedtargetFields := schema.ProposedTarget{}.Fields()
	_ = proposedtargetFields
	// proposedtargetDescURL is the schema descriptor for url field.
	proposedtargetDescURL := proposedtargetFields[2].Descriptor()
	// proposedtarget.URLValidator is a validator for the "url" field. It is called by the builders before save.
	proposedtarget.URLValidator = proposedtargetDescURL.Validators[0].(func(string) error)
	// proposedtargetDescTitle is the schema descriptor for title field.
	proposedtargetDescTitle := proposedtargetFields[3].Descriptor()
	// proposedtarget.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	proposedtarget.TitleValidator = proposedtargetDescTitle.Validators[0].(func(string) error)
	// proposedtargetDescSourcePrompt is the schema descriptor for source_prompt field.
	proposedtargetDescSourcePrompt := proposedtargetFields[5].Descriptor()
	// proposedtarget.SourcePromptValidator is a validator for the "source_prompt" field. It is called by the builders before save.
	proposedtarget.SourcePromptValidator = proposedtargetDescSourcePrompt.Validators[0].(func(string) error)
	// proposedtargetDescStatus is the schema descriptor for status field.
	proposedtargetDescStatus := proposedtargetFields[6].Descriptor()
	// proposedtarget.DefaultStatus holds the default value on creation for the status field.
	proposedtarget.DefaultStatus = proposedtargetDescStatus.Default.(string)
	// proposedtarget.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	proposedtarget.StatusValidator = proposedtargetDescStatus.Validators[0].(func(string) error)
	// proposedtargetDescCreatedAt is the schema descriptor for created_at field.
	proposedtargetDescCreatedAt := proposedtargetFields[7].Descriptor()
	// proposedtarget.DefaultCreatedAt holds the default value on creation for the created_at field.
	proposedtarget.DefaultCreatedAt = proposedtargetDescCreatedAt.Default.(func() time.Time)
	// proposedtargetDescID is the schema descriptor for id field.
	proposedtargetDescID := proposedtargetFields[0].Descriptor()
	// proposedtarget.DefaultID holds the default value on creation for the id field.
	proposedtarget.DefaultID = proposedtargetDescID.Default.(func() uuid.UUID)
	scanresultFields := schema.ScanResult{}.Fields()
	_ = scanresultFields
	// scanresultDescStatus is the schema descriptor for status field.
	scanresultDescStatus := scanresultFields[2].Descriptor()
	// scanresult.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	scanresult.StatusValidator = func() func(string) error {
		validators := scanresultDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scanresultDescReviewStatus is the schema descriptor for review_status field.
	scanresultDescReviewStatus := scanresultFields[7].Descriptor()
	// scanresult.DefaultReviewStatus holds the default value on creation for the review_status field.
	scanresult.DefaultReviewStatus = scanresultDescReviewStatus.Default.(string)
	// scanresult.ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	scanresult.ReviewStatusValidator = scanresultDescReviewStatus.Validators[0].(func(string) error)
	// scanresultDescCreatedAt is the schema descriptor for created_at field.
	scanresultDescCreatedAt := scanresultFields[8].Descriptor()
	// scanresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	scanresult.DefaultCreatedAt = scanresultDescCreatedAt.Default.(func() time.Time)
	// scanresultDescID is the schema descriptor for id field.
	scanresultDescID := scanresultFields[0].Descriptor()
	// scanresult.DefaultID holds the default value on creation for the id field.
	scanresult.DefaultID = scanresultDescID.Default.(func() uuid.UUID)
	targetFields := schema.Target{}.Fields()
	_ = targetFields
	// targetDescURL is the schema descriptor for url field.
	targetDescURL := targetFields[2].Descriptor()
	// target.URLValidator is a validator for the "url" field. It is called by the builders before save.
	target.URLValidator = targetDescURL.Validators[0].(func(string) error)
	// targetDescName is the schema descriptor for name field.
	targetDescName := targetFields[3].Descriptor()
	// target.NameValidator is a validator for the "name" field. It is called by the builders before save.
	target.NameValidator = targetDescName.Validators[0].(func(string) error)
	// targetDescSchedule is the schema descriptor for schedule field.
	targetDescSchedule := targetFields[5].Descriptor()
	// target.DefaultSchedule holds the default value on creation for the schedule field.
	target.DefaultSchedule = targetDescSchedule.Default.(string)
	// target.ScheduleValidator is a validator for the "schedule" field. It is called by the builders before save.
	target.ScheduleValidator = targetDescSchedule.Validators[0].(func(string) error)
	// targetDescActive is the schema descriptor for active field.
	targetDescActive := targetFields[7].Descriptor()
	// target.DefaultActive holds the default value on creation for the active field.
	target.DefaultActive = targetDescActive.Default.(bool)
	// targetDescCreatedAt is the schema descriptor for created_at field.
	targetDescCreatedAt := targetFields[9].Descriptor()
	// target.DefaultCreatedAt holds the default value on creation for the created_at field.
	target.DefaultCreatedAt = targetDescCreatedAt.Default.(func() time.Time)
	// targetDescID is the schema descriptor for id field.
	targetDescID := targetFields[0].Descriptor()
	// target.DefaultID holds the default value on creation for the id field.
	target.DefaultID = targetDescID.Default.(func() uuid.UUID)
}
