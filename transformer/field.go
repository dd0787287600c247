// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transformer

import (
	"fmt"
	"time"

	"github.com/lcrosenbu/alliance/model"
	"github.com/lcrosenbu/alliance/util"
)

// Extractor reads the raw value of one field from a segment. It must not
// modify the segment.
type Extractor[S any] func(S) (interface{}, error)

// AttributeField maps one NITF field of a segment of type S onto a catalog
// attribute
type AttributeField[S any] struct {
	ShortName string
	LongName  string
	Type      model.AttributeType
	Extract   Extractor[S]
}

// named is implemented by enumerated field values
type named interface {
	Name() string
}

func stringField[S any](longName, shortName string, extract func(S) (interface{}, error)) AttributeField[S] {
	return AttributeField[S]{ShortName: shortName, LongName: longName, Type: model.String, Extract: extract}
}

func typedField[S any](longName, shortName string, attributeType model.AttributeType, extract func(S) (interface{}, error)) AttributeField[S] {
	return AttributeField[S]{ShortName: shortName, LongName: longName, Type: attributeType, Extract: extract}
}

// Apply extracts the field from segment and coerces it to the field type.
// A field that cannot be read is logged through ctx and yields a nil value;
// Apply never panics.
func (f AttributeField[S]) Apply(ctx util.LogContext, segment S) (name string, value interface{}) {
	name = f.LongName
	defer func() {
		if r := recover(); r != nil {
			util.LogAlert(ctx, fmt.Sprintf("Failed to read NITF field %s (%s): %v", f.ShortName, f.LongName, r))
			value = nil
		}
	}()

	if f.Extract == nil {
		return name, nil
	}
	raw, err := f.Extract(segment)
	if err != nil {
		util.LogAlert(ctx, fmt.Sprintf("Failed to read NITF field %s (%s): %v", f.ShortName, f.LongName, err))
		return name, nil
	}
	value, err = coerce(f.Type, raw)
	if err != nil {
		util.LogAlert(ctx, fmt.Sprintf("Failed to convert NITF field %s (%s): %v", f.ShortName, f.LongName, err))
		return name, nil
	}
	return name, value
}

func coerce(attributeType model.AttributeType, raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	switch attributeType {
	case model.String:
		return coerceString(raw), nil
	case model.Integer:
		n, err := coerceInteger(raw)
		if err != nil {
			return nil, err
		}
		return int(n), nil
	case model.Long:
		return coerceInteger(raw)
	case model.Date:
		return coerceDate(raw), nil
	}
	return nil, fmt.Errorf("unknown attribute type %s", attributeType)
}

func coerceString(raw interface{}) interface{} {
	switch v := raw.(type) {
	case string:
		return v
	case named:
		if v.Name() == "" {
			return nil
		}
		return v.Name()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", raw)
}

func coerceInteger(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	}
	return 0, fmt.Errorf("%v (%T) is not an integer", raw, raw)
}

func coerceDate(raw interface{}) interface{} {
	switch v := raw.(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return v
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		return *v
	}
	return nil
}
