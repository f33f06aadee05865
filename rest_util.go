package main

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	. "github.com/ttpr0/go-roadgraph/util"
	"golang.org/x/exp/slog"
)

type none struct{}

func ReadRequestBody[T any](r *http.Request) (T, error) {
	var req T
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return req, errors.Wrap(err, "failed to read request body")
	}
	if len(data) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, errors.Wrap(err, "invalid request body")
	}
	return req, nil
}

func WriteResponse[T any](w http.ResponseWriter, resp T, status int) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

type Result struct {
	result any
	status int
}

func OK[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusOK,
	}
}

func BadRequest[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusBadRequest,
	}
}

func InternalError[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusInternalServerError,
	}
}

func _WriteResult(w http.ResponseWriter, method string, path string, res Result) {
	if res.status != http.StatusOK {
		slog.Error("failed "+method+" "+path, "status", res.status)
		WriteResponse(w, NewErrorResponse(path, res.result), res.status)
	} else {
		slog.Debug("successfully finished " + method + " " + path)
		WriteResponse(w, res.result, res.status)
	}
}

func MapPost[F any](app *mux.Router, path string, handler func(F) Result) {
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("POST " + path)
		body, err := ReadRequestBody[F](r)
		if err != nil {
			_WriteResult(w, "POST", path, BadRequest(err.Error()))
			return
		}
		_WriteResult(w, "POST", path, handler(body))
	}).Methods(http.MethodPost)
}

// Maps query parameters onto the json-tagged fields of F.
//
// Only scalar fields are supported, unparsable values are rejected.
func MapGet[F any](app *mux.Router, path string, handler func(F) Result) {
	var val F
	typ := reflect.TypeOf(val)
	fields := NewList[Triple[int, string, reflect.Kind]](typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		fields.Add(MakeTriple(i, tag, field.Type.Kind()))
	}
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("GET " + path)
		query := r.URL.Query()
		t := reflect.New(typ).Elem()
		for _, field := range fields {
			value := query.Get(field.B)
			if value == "" {
				continue
			}
			if err := _SetQueryField(t.Field(field.A), field.C, value); err != nil {
				_WriteResult(w, "GET", path, BadRequest(errors.Wrapf(err, "invalid parameter %s", field.B).Error()))
				return
			}
		}
		_WriteResult(w, "GET", path, handler(t.Interface().(F)))
	}).Methods(http.MethodGet)
}

func _SetQueryField(f reflect.Value, kind reflect.Kind, value string) error {
	switch kind {
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		f.SetInt(num)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		num, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		f.SetUint(num)
	case reflect.Float32, reflect.Float64:
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		f.SetFloat(num)
	case reflect.String:
		f.SetString(value)
	}
	return nil
}
