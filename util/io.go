package util

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

//*******************************************
// json files
//*******************************************

func WriteJSONToFile[T any](value T, file string) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode json")
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", file)
	}
	return nil
}

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	data, err := os.ReadFile(file)
	if err != nil {
		return value, errors.Wrapf(err, "failed to read %s", file)
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, errors.Wrapf(err, "failed to decode %s", file)
	}
	return value, nil
}

//*******************************************
// csv files
//*******************************************

// Reads all rows of a csv file into values of T.
//
// Columns are matched to fields by their `csv` struct tag.
func ReadCSVFromFile[T any](filename string, delimiter rune) (List[T], error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", filename)
	}
	defer file.Close()

	rows, err := ReadCSV[T](file, delimiter)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", filename)
	}
	values := NewList[T](100)
	for row := range rows {
		values.Add(row)
	}
	return values, nil
}

// Reads the header eagerly and returns an iterator over the remaining rows.
//
// Malformed rows are skipped, empty cells keep the zero value (nil for
// pointer fields).
func ReadCSV[T any](r io.Reader, delimiter rune) (func(yield func(T) bool), error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "missing csv header")
	}
	name_row_mapping := NewDict[string, int](10)
	for i, name := range header {
		name_row_mapping[name] = i
	}

	var val T
	typ := reflect.TypeOf(val)
	num_field := typ.NumField()
	fields := NewList[_CSVField](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("csv")
		if tag == "" {
			continue
		}
		if !name_row_mapping.ContainsKey(tag) {
			continue
		}
		field_type := field.Type
		pointer := field_type.Kind() == reflect.Pointer
		if pointer {
			field_type = field_type.Elem()
		}
		kind := _CSVKind(field_type.Kind())
		if kind == reflect.Invalid {
			continue
		}
		fields.Add(_CSVField{index: i, column: name_row_mapping[tag], kind: kind, pointer: pointer})
	}

	return func(yield func(T) bool) {
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			} else if err != nil {
				continue
			}
			t := reflect.New(typ).Elem()
			valid := true
			for _, field := range fields {
				if field.column >= len(record) {
					continue
				}
				value := record[field.column]
				if value == "" {
					continue
				}
				f := t.Field(field.index)
				if field.pointer {
					ptr := reflect.New(f.Type().Elem())
					f.Set(ptr)
					f = ptr.Elem()
				}
				valid = valid && _SetCSVValue(f, field.kind, value)
			}
			if !valid {
				continue
			}
			if !yield(t.Interface().(T)) {
				break
			}
		}
	}, nil
}

// Pointer fields stay nil for empty or missing cells.
type _CSVField struct {
	index   int
	column  int
	kind    reflect.Kind
	pointer bool
}

func _CSVKind(kind reflect.Kind) reflect.Kind {
	switch kind {
	case reflect.Bool:
		return reflect.Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.Int
	case reflect.Float32, reflect.Float64:
		return reflect.Float64
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.Uint
	case reflect.String:
		return reflect.String
	default:
		return reflect.Invalid
	}
}

func _SetCSVValue(f reflect.Value, kind reflect.Kind, value string) bool {
	switch kind {
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		f.SetBool(b)
		return err == nil
	case reflect.Int:
		num, err := strconv.ParseInt(value, 10, 64)
		f.SetInt(num)
		return err == nil
	case reflect.Uint:
		num, err := strconv.ParseUint(value, 10, 64)
		f.SetUint(num)
		return err == nil
	case reflect.Float64:
		num, err := strconv.ParseFloat(value, 64)
		f.SetFloat(num)
		return err == nil
	case reflect.String:
		f.SetString(value)
	}
	return true
}
