package model

import (
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/net/http/httpguts"
)

// headerValue converts a caller-supplied value into a validated header
// value string. Accepted kinds are text, display-formatted numerics,
// booleans and Stringers; anything else is rejected rather than
// formatted blindly.
func headerValue(v interface{}) (string, error) {
	var s string
	switch v := v.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case fmt.Stringer:
		s = v.String()
	case bool:
		s = strconv.FormatBool(v)
	case int:
		s = strconv.Itoa(v)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		s = fmt.Sprintf("%d", v)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "", fmt.Errorf("hopwire: unsupported header value type: %T", v)
	}
	if !httpguts.ValidHeaderFieldValue(s) {
		return "", fmt.Errorf("hopwire: invalid header value %q", s)
	}
	return s, nil
}

// headerInsert replaces all existing values for name.
func headerInsert(h http.Header, name string, value interface{}) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("hopwire: invalid header name %q", name)
	}
	s, err := headerValue(value)
	if err != nil {
		return err
	}
	h.Set(name, s)
	return nil
}

// headerAppend adds one more value for name, keeping existing ones.
func headerAppend(h http.Header, name string, value interface{}) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("hopwire: invalid header name %q", name)
	}
	s, err := headerValue(value)
	if err != nil {
		return err
	}
	h.Add(name, s)
	return nil
}
