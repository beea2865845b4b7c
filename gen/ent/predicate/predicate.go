// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ProposedTarget is the predicate function for proposedtarget builders.
type ProposedTarget func(*sql.Selector)

// ScanResult is the predicate function for scanresult builders.
type ScanResult func(*sql.Selector)

// Target is the predicate function for target builders.
type Target func(*sql.Selector)
