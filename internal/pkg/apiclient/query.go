package apiclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// EncodeQuery turns a query struct into url.Values using `form` tags (the
// same tags gin binds page queries with). Nil pointers are skipped so
// optional filters stay absent. url.Values and map[string]any pass through.
func EncodeQuery(v any) url.Values {
	values := url.Values{}
	switch q := v.(type) {
	case nil:
		return values
	case url.Values:
		return q
	case map[string]any:
		for k, val := range q {
			if val != nil {
				values.Set(k, fmt.Sprint(val))
			}
		}
		return values
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return values
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		encodeStruct(rv, values)
	}
	return values
}

func encodeStruct(rv reflect.Value, values url.Values) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		fv := rv.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			encodeStruct(fv, values)
			continue
		}
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			continue
		}
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		values.Set(name, fmt.Sprint(fv.Interface()))
	}
}
