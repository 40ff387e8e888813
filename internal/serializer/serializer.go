// internal/serializer/serializer.go

// Package serializer filters response payloads by viewer scope. Model
// fields carry a `szlr` tag naming the scopes allowed to read them;
// everything untagged is public. Handlers sanitize before encoding so a
// customer-level reader never sees admin-only fields like shop balances.
package serializer

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/model"
)

// Viewer is the set of scopes the requesting principal holds at the shop
// the response belongs to.
type Viewer struct {
	scopes map[string]bool
}

// ViewerFor derives the viewer scopes from the principal and their shop
// membership. Global admins hold every scope.
func ViewerFor(p access.Principal, m access.Memberships) Viewer {
	v := Viewer{scopes: make(map[string]bool)}
	if p.Admin {
		v.scopes["admin"] = true
		v.scopes["operator"] = true
		v.scopes["group_admin"] = true
		return v
	}
	if m.Shop == nil || !m.Shop.Active {
		return v
	}
	switch m.Shop.AccountType {
	case model.AccountAdmin:
		v.scopes["admin"] = true
		v.scopes["operator"] = true
	case model.AccountOperator:
		v.scopes["operator"] = true
	case model.AccountGroupAdmin:
		v.scopes["group_admin"] = true
	}
	return v
}

// Can reports whether the viewer holds the scope.
func (v Viewer) Can(scope string) bool {
	return v.scopes[scope]
}

// ParseScopes extracts the scope portion from the tag. Example: "scope:admin,self" -> ["admin", "self"]
func ParseScopes(tag string) []string {
	prefix := "scope:"
	idx := strings.Index(tag, prefix)
	if idx == -1 {
		if tag == "always" {
			return []string{"always"}
		}
		return nil
	}

	scopes := strings.TrimPrefix(tag[idx:], prefix)
	scopes = strings.TrimSpace(scopes)
	return strings.Split(scopes, ",")
}

// canView decides whether the viewer may read a field guarded by the tag.
// An empty tag means public.
func canView(szlrTag string, v Viewer) bool {
	if szlrTag == "" {
		return true
	}
	for _, scope := range ParseScopes(szlrTag) {
		if scope == "always" || v.Can(scope) {
			return true
		}
	}
	return false
}

// Sanitize returns a json-encodable copy of input with guarded fields
// removed for viewers lacking the scope. Structs become maps keyed by json
// tag; slices and nested structs are walked recursively. Types without
// struct shape pass through unchanged.
func Sanitize(input any, v Viewer) any {
	return sanitizeValue(reflect.ValueOf(input), v)
}

func sanitizeValue(val reflect.Value, v Viewer) any {
	if !val.IsValid() {
		return nil
	}

	// Leaf types that encode themselves. uuid.UUID is an array kind and
	// time.Time a struct, so both must be caught before the kind switch.
	switch leaf := val.Interface().(type) {
	case uuid.UUID:
		return leaf.String()
	case time.Time:
		return leaf
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil
		}
		return sanitizeValue(val.Elem(), v)

	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return nil
		}
		out := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = sanitizeValue(val.Index(i), v)
		}
		return out

	case reflect.Struct:
		return sanitizeStruct(val, v)

	default:
		return val.Interface()
	}
}

func sanitizeStruct(val reflect.Value, v Viewer) map[string]any {
	out := make(map[string]any)
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// Flatten embedded structs the way encoding/json does.
		if field.Anonymous {
			embedded := sanitizeValue(val.Field(i), v)
			if m, ok := embedded.(map[string]any); ok {
				for k, fv := range m {
					out[k] = fv
				}
			}
			continue
		}

		name, omitempty := jsonName(field)
		if name == "-" {
			continue
		}
		if !canView(field.Tag.Get("szlr"), v) {
			continue
		}

		fv := sanitizeValue(val.Field(i), v)
		if omitempty && isEmpty(fv) {
			continue
		}
		out[name] = fv
	}

	return out
}

func jsonName(field reflect.StructField) (name string, omitempty bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	}
	return false
}
