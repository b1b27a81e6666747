package stdlib

import (
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// registerEncoding installs `jsonParse`/`jsonStringify` (spec.md §6) and the
// supplemented `yamlParse`/`yamlStringify` pair (SPEC_FULL.md's "Supplemented
// features"). jsonParse/jsonStringify wire tidwall/gjson (read) and
// tidwall/sjson (write); yamlParse/yamlStringify wire goccy/go-yaml via its
// plain any-valued Marshal/Unmarshal, the same library the pack's config
// stack reaches for.
func registerEncoding(root *scope.Scope) {
	define(root, "jsonParse", func(args []*value.Value) *value.Value {
		s := arg(args, 0)
		if s.Kind != value.KindString {
			return typeMismatchErr("jsonParse", s)
		}
		if !gjson.Valid(s.Str) {
			return invalidArgumentErr("jsonParse: invalid JSON")
		}
		return fromGJSON(gjson.Parse(s.Str))
	})

	define(root, "jsonStringify", func(args []*value.Value) *value.Value {
		doc, err := toJSON(arg(args, 0))
		if err != "" {
			return invalidArgumentErr("jsonStringify: %s", err)
		}
		return value.NewString(doc)
	})

	define(root, "yamlParse", func(args []*value.Value) *value.Value {
		s := arg(args, 0)
		if s.Kind != value.KindString {
			return typeMismatchErr("yamlParse", s)
		}
		var decoded interface{}
		if err := yaml.Unmarshal([]byte(s.Str), &decoded); err != nil {
			return invalidArgumentErr("yamlParse: %s", err)
		}
		return fromAny(decoded)
	})

	define(root, "yamlStringify", func(args []*value.Value) *value.Value {
		encoded, err := yaml.Marshal(toAny(arg(args, 0)))
		if err != nil {
			return invalidArgumentErr("yamlStringify: %s", err)
		}
		return value.NewString(string(encoded))
	})
}

// fromGJSON converts a parsed gjson.Result into a Value, recursing into
// objects/arrays in source order.
func fromGJSON(r gjson.Result) *value.Value {
	switch {
	case r.IsObject():
		obj := value.NewObject()
		r.ForEach(func(key, val gjson.Result) bool {
			obj.Object().Set(key.String(), fromGJSON(val))
			return true
		})
		return obj
	case r.IsArray():
		elems := r.Array()
		arr := value.NewArray(len(elems))
		for _, e := range elems {
			arr.Arr = append(arr.Arr, fromGJSON(e))
		}
		return arr
	case r.Type == gjson.Null:
		return value.NewNull()
	case r.Type == gjson.True || r.Type == gjson.False:
		return value.NewBool(r.Bool())
	case r.Type == gjson.Number:
		return value.NewNumber(r.Float())
	default:
		return value.NewString(r.String())
	}
}

// toJSON serializes v into a JSON document string, building it incrementally
// via sjson.SetRaw so container order is preserved (sjson operates on an
// existing document rather than producing one from a Go value directly).
func toJSON(v *value.Value) (string, string) {
	switch v.Kind {
	case value.KindNull:
		return "null", ""
	case value.KindBoolean:
		return strconv.FormatBool(v.Bool), ""
	case value.KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64), ""
	case value.KindString:
		raw, err := sjson.Set("", "x", v.Str)
		if err != nil {
			return "", err.Error()
		}
		return gjson.Get(raw, "x").Raw, ""
	case value.KindArray:
		doc := "[]"
		for i, elem := range v.Arr {
			item, errMsg := toJSON(elem)
			if errMsg != "" {
				return "", errMsg
			}
			var err error
			doc, err = sjson.SetRaw(doc, strconv.Itoa(i), item)
			if err != nil {
				return "", err.Error()
			}
		}
		return doc, ""
	case value.KindObject:
		// sjson paths treat '.' and '*' as path syntax, so object keys
		// containing those characters won't round-trip correctly here —
		// an accepted limitation of building documents key-by-key rather
		// than from a whole-document encoder.
		doc := "{}"
		for _, pair := range v.Object().Pairs() {
			item, errMsg := toJSON(pair.Value)
			if errMsg != "" {
				return "", errMsg
			}
			var err error
			doc, err = sjson.SetRaw(doc, pair.Key, item)
			if err != nil {
				return "", err.Error()
			}
		}
		return doc, ""
	default:
		return "", "cannot serialize " + value.TypeOf(v)
	}
}

// fromAny converts a decoded YAML document (map[string]interface{} /
// []interface{} / scalars, go-yaml's Unmarshal-into-any shape) into a Value,
// mirroring fromGJSON's structure for the JSON side.
func fromAny(a interface{}) *value.Value {
	switch t := a.(type) {
	case nil:
		return value.NewNull()
	case bool:
		return value.NewBool(t)
	case int:
		return value.NewNumber(float64(t))
	case int64:
		return value.NewNumber(float64(t))
	case uint64:
		return value.NewNumber(float64(t))
	case float64:
		return value.NewNumber(t)
	case string:
		return value.NewString(t)
	case []interface{}:
		arr := value.NewArray(len(t))
		for _, e := range t {
			arr.Arr = append(arr.Arr, fromAny(e))
		}
		return arr
	case map[string]interface{}:
		obj := value.NewObject()
		for k, v := range t {
			obj.Object().Set(k, fromAny(v))
		}
		return obj
	default:
		return value.NewNull()
	}
}

// toAny converts a Value back into a plain Go value go-yaml's Marshal can
// encode, the inverse of fromAny.
func toAny(v *value.Value) interface{} {
	switch v.Kind {
	case value.KindNull:
		return nil
	case value.KindBoolean:
		return v.Bool
	case value.KindNumber:
		return v.Num
	case value.KindString:
		return v.Str
	case value.KindArray:
		out := make([]interface{}, len(v.Arr))
		for i, e := range v.Arr {
			out[i] = toAny(e)
		}
		return out
	case value.KindObject:
		out := make(map[string]interface{}, v.Object().Len())
		for _, pair := range v.Object().Pairs() {
			out[pair.Key] = toAny(pair.Value)
		}
		return out
	default:
		return value.ToString(v)
	}
}
