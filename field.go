package gelfout

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// represents exactly one (possibly nested) field
// like a terrible version of XPath or JSONPath
type Field struct {
	Path     []string
	original *Event
}

func (fld *Field) MustGet() any {
	v, _ := fld.Get()
	return v
}

func (fld *Field) Get() (any, error) {
	if fld.original == nil {
		return nil, fmt.Errorf("cannot Field.Get() because there is no linked event")
	}
	if len(fld.Path) == 0 {
		return nil, fmt.Errorf("cannot traverse empty Path")
	}

	var level map[string]any
	level = fld.original.Fields
	for depth, key := range fld.Path {
		inner, keyExists := level[key]
		if !keyExists {
			return nil, fmt.Errorf("tried to Field.Get() on non-existent key")
		}
		if depth == len(fld.Path)-1 {
			return inner, nil
		}
		if innerMap, isMap := inner.(map[string]any); isMap {
			level = innerMap
		}
	}
	panic("impossible")
}

func (fld *Field) Exists() bool {
	_, err := fld.Get()
	return err == nil
}

func (fld *Field) Default(value any) {
	err := fld.set(value, false)
	if err != nil {
		slog.Warn(err.Error())
	}
}

func (fld *Field) Set(value any) {
	err := fld.set(value, true)
	if err != nil {
		slog.Warn(err.Error())
	}
}

func (fld *Field) set(value any, overwrite bool) error {
	if fld.original == nil {
		return fmt.Errorf("cannot Field.Set() because there is no linked event")
	}
	if len(fld.Path) == 0 {
		return fmt.Errorf("cannot traverse empty Path")
	}

	var level map[string]any
	level = fld.original.Fields
	for i := 0; i < len(fld.Path)-1; i++ {
		key := fld.Path[i]
		inner, keyExists := level[key]
		if !keyExists {
			level[key] = make(map[string]any)
		} else if keyExists {
			if _, isMap := inner.(map[string]any); isMap {
				// good
			} else {
				// damn
				slog.Warn(strings.Join(fld.Path[:i+1], ".") + " is getting implicitly overwritten; make sure to delete it first")
				level[key] = make(map[string]any)
			}
		}
		level = level[key].(map[string]any)
	}

	leafKey := fld.Path[len(fld.Path)-1]
	if _, exists := level[leafKey]; exists && !overwrite {
		// being quiet is okay if we explicitly do not want overwrites
		return nil
	}

	level[leafKey] = value
	return nil
}

func (fld *Field) SetString(value string) {
	fld.Set(value)
}

func (fld *Field) SetInt(value int) {
	fld.Set(value)
}

func (fld *Field) SetFloat(value float64) {
	fld.Set(value)
}

func (fld *Field) SetBool(value bool) {
	fld.Set(value)
}

// GetString coerces whatever is stored in the field into a string.
// Missing fields and nil values come back as "".
func (fld *Field) GetString() string {
	rawValue, err := fld.Get()
	if err != nil {
		return ""
	}
	return Stringify(rawValue)
}

func (fld *Field) GetInt() int {
	rawValue, err := fld.Get()
	if err != nil {
		return 0
	}

	switch v := rawValue.(type) {
	case string:
		vv, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return vv
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (fld *Field) Delete() {
	if fld.original == nil || len(fld.Path) == 0 {
		return
	}

	level := fld.original.Fields
	for i := 0; i < len(fld.Path)-1; i++ {
		inner, keyExists := level[fld.Path[i]]
		if !keyExists {
			return
		}
		innerMap, isMap := inner.(map[string]any)
		if !isMap {
			return
		}
		level = innerMap
	}
	delete(level, fld.Path[len(fld.Path)-1])
}

func (fld *Field) String() string {
	var sb strings.Builder
	for _, v := range fld.Path {
		sb.WriteString(`[` + v + `]`)
	}
	return sb.String()
}

// Stringify renders a field value the way templates and wire fields
// want it: strings pass through, numbers lose trailing float noise,
// nil becomes "".
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
