package transformer

import (
	"fmt"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/util"
)

// FieldTable is the ordered set of attribute fields read from one kind of
// segment. Fields are applied in table order.
type FieldTable[S any] struct {
	fields []AttributeField[S]
	index  map[string]int
}

// NewFieldTable builds a table from its fields. Short names must be unique.
func NewFieldTable[S any](fields ...AttributeField[S]) *FieldTable[S] {
	table := &FieldTable[S]{
		fields: append([]AttributeField[S](nil), fields...),
		index:  make(map[string]int, len(fields)),
	}
	for i, field := range table.fields {
		if _, exists := table.index[field.ShortName]; exists {
			panic(fmt.Sprintf("duplicate field short name %s", field.ShortName))
		}
		table.index[field.ShortName] = i
	}
	return table
}

// Fields returns a copy of the fields, in order
func (t *FieldTable[S]) Fields() []AttributeField[S] {
	return append([]AttributeField[S](nil), t.fields...)
}

// Field looks up a field by its short name
func (t *FieldTable[S]) Field(shortName string) (AttributeField[S], bool) {
	i, ok := t.index[shortName]
	if !ok {
		return AttributeField[S]{}, false
	}
	return t.fields[i], true
}

// Len returns the number of fields
func (t *FieldTable[S]) Len() int {
	return len(t.fields)
}

// SegmentHandler writes the attributes of one kind of segment into a record
type SegmentHandler[S any] struct {
	ctx   util.LogContext
	table *FieldTable[S]
}

// NewSegmentHandler creates a handler applying table and logging through ctx
func NewSegmentHandler[S any](ctx util.LogContext, table *FieldTable[S]) *SegmentHandler[S] {
	return &SegmentHandler[S]{ctx: ctx, table: table}
}

// HandleSegment applies every field of the table to segment, in order, and
// sets each value that could be read on record. Values that could not be
// read are left unset.
func (h *SegmentHandler[S]) HandleSegment(record model.Metacard, segment S) {
	for _, field := range h.table.fields {
		name, value := field.Apply(h.ctx, segment)
		if value != nil {
			record.SetAttribute(name, value)
		}
	}
}
