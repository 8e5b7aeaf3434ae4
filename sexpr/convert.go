package sexpr

import (
	"fmt"
	"sort"
)

// ToValue converts a native Go value into the expression representation.
// Binding contexts arrive as map[string]any; this is how their values cross
// into the language.
func ToValue(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Nil{}, nil
	case Value:
		return val, nil
	case bool:
		return Boolean(val), nil
	case int:
		return Number(val), nil
	case int32:
		return Number(val), nil
	case int64:
		return Number(val), nil
	case float32:
		return Number(val), nil
	case float64:
		return Number(val), nil
	case string:
		return String(val), nil
	case []any:
		items := make([]Value, len(val))
		for i, item := range val {
			converted, err := ToValue(item)
			if err != nil {
				return nil, fmt.Errorf("failed to convert list element %d: %w", i, err)
			}
			items[i] = converted
		}
		return NewList(items...), nil
	case map[string]any:
		// Sort keys so conversion is deterministic.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		m := &Map{}
		for _, k := range keys {
			converted, err := ToValue(val[k])
			if err != nil {
				return nil, fmt.Errorf("failed to convert map value for %q: %w", k, err)
			}
			m = m.Assoc(Keyword(k), converted)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
}

// FromValue converts an expression value back to a native Go value. Integral
// numbers come back as int64 so callers comparing results are not exposed to
// the engine's float representation.
func FromValue(v Value) (any, error) {
	switch val := v.(type) {
	case nil, Nil:
		return nil, nil
	case Boolean:
		return bool(val), nil
	case Number:
		if val.IsIntegral() {
			return int64(val), nil
		}
		return float64(val), nil
	case String:
		return string(val), nil
	case Symbol:
		return string(val), nil
	case Keyword:
		return string(val), nil
	case *List:
		items := make([]any, val.Len())
		for i, item := range val.Items {
			converted, err := FromValue(item)
			if err != nil {
				return nil, fmt.Errorf("failed to convert list element %d: %w", i, err)
			}
			items[i] = converted
		}
		return items, nil
	case *Map:
		m := make(map[string]any, val.Len())
		for i, k := range val.Keys() {
			var key string
			switch kv := k.(type) {
			case Keyword:
				key = string(kv)
			case String:
				key = string(kv)
			default:
				key = k.String()
			}
			converted, err := FromValue(val.Vals()[i])
			if err != nil {
				return nil, fmt.Errorf("failed to convert map value for %q: %w", key, err)
			}
			m[key] = converted
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", v.Type())
	}
}
