package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"fooddonation/internal/domain"
)

// MaxBodyBytes caps the size of JSON request bodies.
const MaxBodyBytes = 1 << 20

// ErrBodyTooLarge is returned by DecodeJSON when the body exceeds MaxBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// ErrMalformedJSON is returned by DecodeJSON when the body is not valid JSON.
var ErrMalformedJSON = errors.New("malformed JSON body")

// DecodeJSON decodes the request body into dest, a pointer to a struct. Keys
// must match the json tags exactly; anything else is ignored, as are unknown
// fields. An empty body decodes as an empty object so that field validation
// reports what is missing. A value of the wrong JSON type is reported as a
// *domain.ValidationError.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return decodeErr(err)
	}
	if raw == nil {
		return nil
	}

	known := jsonFieldNames(dest)
	for k := range raw {
		if _, ok := known[k]; !ok {
			delete(raw, k)
		}
	}
	exact, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if err := json.Unmarshal(exact, dest); err != nil {
		return decodeErr(err)
	}
	return nil
}

func decodeErr(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return ErrBodyTooLarge
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewValidationError(typeErr.Field,
			fmt.Sprintf("Expected %s, received %s", jsonKind(typeErr.Type.Kind()), typeErr.Value))
	}
	return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
}

// jsonFieldNames returns the json names of the top-level fields of the struct dest points to.
func jsonFieldNames(dest any) map[string]struct{} {
	t := reflect.TypeOf(dest)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	names := make(map[string]struct{})
	if t.Kind() != reflect.Struct {
		return names
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		names[name] = struct{}{}
	}
	return names
}

func jsonKind(k reflect.Kind) string {
	switch k {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return k.String()
	}
}

// WriteDecodeError answers a DecodeJSON failure that is not a validation error.
func WriteDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrBodyTooLarge) {
		WriteJSONError(w, http.StatusRequestEntityTooLarge, "Request body too large", "")
		return
	}
	WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body", "")
}
