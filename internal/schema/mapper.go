package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
)

// Per-field schema defaults. Wiki checkbox columns store "Yes"; binary
// flag columns override the token with `true=1`.
const (
	defaultTrueToken = "Yes"
	defaultDelim     = ","
)

// Mapper misuse errors. These indicate a programming error in a record
// declaration, not bad remote data.
var (
	ErrTargetInvalid   = errors.New("target must be a non-nil struct pointer")
	ErrBadTag          = errors.New("malformed cargo tag")
	ErrUnsupportedType = errors.New("unsupported field type")
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindFloat
	kindBool
	kindTime
	kindList
)

var (
	intPtrType      = reflect.TypeOf((*int)(nil))
	floatPtrType    = reflect.TypeOf((*float64)(nil))
	boolPtrType     = reflect.TypeOf((*bool)(nil))
	timePtrType     = reflect.TypeOf((*time.Time)(nil))
	stringSliceType = reflect.TypeOf([]string(nil))
)

// fieldSpec is the parsed schema for one cargo-tagged struct field.
type fieldSpec struct {
	name      string // Go field name, for error messages.
	index     int
	column    string // Query column, possibly table-qualified.
	key       string // Response key: the column without its table prefix.
	kind      fieldKind
	dateOnly  bool
	trueToken string
	delim     string
	nilEmpty  bool
}

type typeSchema struct {
	fields  []fieldSpec
	columns []string
}

var (
	schemaMu    sync.RWMutex
	schemaCache = map[reflect.Type]*typeSchema{}
)

func schemaFor(t reflect.Type) (*typeSchema, error) {
	schemaMu.RLock()
	ts, ok := schemaCache[t]
	schemaMu.RUnlock()
	if ok {
		return ts, nil
	}

	ts, err := buildSchema(t)
	if err != nil {
		return nil, err
	}

	schemaMu.Lock()
	schemaCache[t] = ts
	schemaMu.Unlock()
	return ts, nil
}

func buildSchema(t reflect.Type) (*typeSchema, error) {
	ts := &typeSchema{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("cargo")
		if !ok || tag == "-" {
			continue
		}
		if !f.IsExported() {
			return nil, fmt.Errorf("%s.%s: tag on unexported field: %w", t.Name(), f.Name, ErrBadTag)
		}

		parts := strings.Split(tag, ",")
		column := parts[0]
		if column == "" {
			return nil, fmt.Errorf("%s.%s: empty column name: %w", t.Name(), f.Name, ErrBadTag)
		}

		spec := fieldSpec{
			name:      f.Name,
			index:     i,
			column:    column,
			key:       column,
			trueToken: defaultTrueToken,
			delim:     defaultDelim,
		}
		if dot := strings.LastIndex(column, "."); dot >= 0 {
			spec.key = column[dot+1:]
		}

		for _, opt := range parts[1:] {
			switch {
			case opt == "date":
				spec.dateOnly = true
			case opt == "datetime":
				spec.dateOnly = false
			case opt == "nilempty":
				spec.nilEmpty = true
			case strings.HasPrefix(opt, "true="):
				spec.trueToken = strings.TrimPrefix(opt, "true=")
			case strings.HasPrefix(opt, "delim="):
				spec.delim = strings.TrimPrefix(opt, "delim=")
			default:
				return nil, fmt.Errorf("%s.%s: unknown option %q: %w", t.Name(), f.Name, opt, ErrBadTag)
			}
		}

		kind, err := kindOf(f.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}
		spec.kind = kind

		ts.fields = append(ts.fields, spec)
		ts.columns = append(ts.columns, column)
	}
	if len(ts.fields) == 0 {
		return nil, fmt.Errorf("%s: no cargo-tagged fields: %w", t.Name(), ErrBadTag)
	}
	return ts, nil
}

func kindOf(t reflect.Type) (fieldKind, error) {
	switch t {
	case intPtrType:
		return kindInt, nil
	case floatPtrType:
		return kindFloat, nil
	case boolPtrType:
		return kindBool, nil
	case timePtrType:
		return kindTime, nil
	case stringSliceType:
		return kindList, nil
	}
	if t.Kind() == reflect.String {
		return kindString, nil
	}
	return 0, ErrUnsupportedType
}

// Unmarshal maps one raw row into dst, a pointer to a cargo-tagged
// record struct. Absent and malformed values leave the field at its
// zero value; only a misdeclared schema or target returns an error.
func Unmarshal(row map[string]string, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrTargetInvalid
	}
	elem := v.Elem()

	ts, err := schemaFor(elem.Type())
	if err != nil {
		return err
	}

	for _, f := range ts.fields {
		raw := row[f.key]
		target := elem.Field(f.index)

		switch f.kind {
		case kindString:
			target.SetString(raw)
		case kindInt:
			if p := ParseInt(raw); p != nil {
				target.Set(reflect.ValueOf(p))
			}
		case kindFloat:
			if p := ParseFloat(raw); p != nil {
				target.Set(reflect.ValueOf(p))
			}
		case kindBool:
			if p := ParseBool(raw, f.trueToken); p != nil {
				target.Set(reflect.ValueOf(p))
			}
		case kindTime:
			var p *time.Time
			if f.dateOnly {
				p = ParseDate(raw)
			} else {
				p = ParseDateTime(raw)
			}
			if p != nil {
				target.Set(reflect.ValueOf(p))
			}
		case kindList:
			list := ParseList(raw, f.delim)
			if len(list) == 0 && f.nilEmpty {
				continue
			}
			target.Set(reflect.ValueOf(list))
		}
	}
	return nil
}

// Columns returns the query column list declared by v's cargo tags, in
// field order. v may be a record struct or a pointer to one.
func Columns(v any) ([]string, error) {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, ErrTargetInvalid
	}
	ts, err := schemaFor(t)
	if err != nil {
		return nil, err
	}
	cols := make([]string, len(ts.columns))
	copy(cols, ts.columns)
	return cols, nil
}

// MustColumns is Columns for package-level declarations. It panics on a
// malformed schema, which a schema test catches long before runtime.
func MustColumns(v any) []string {
	cols, err := Columns(v)
	if err != nil {
		panic(err)
	}
	return cols
}
