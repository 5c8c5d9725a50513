package model

import "time"

// Field is one external field name and its new value in a partial update.
type Field struct {
	Key   string
	Value interface{}
}

// Fields is an ordered partial update. Order is preserved so the generated
// SET clause and its positional values line up.
type Fields []Field

// Add appends key with value.
func (f Fields) Add(key string, value interface{}) Fields {
	return append(f, Field{Key: key, Value: value})
}

// Get returns the value for key.
func (f Fields) Get(key string) (interface{}, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Without returns a copy of f with the given keys removed.
func (f Fields) Without(keys ...string) Fields {
	out := make(Fields, 0, len(f))
	for _, field := range f {
		skip := false
		for _, k := range keys {
			if field.Key == k {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, field)
		}
	}
	return out
}

// Only returns the fields of f whose key is in keys.
func (f Fields) Only(keys ...string) Fields {
	out := make(Fields, 0, len(keys))
	for _, field := range f {
		for _, k := range keys {
			if field.Key == k {
				out = append(out, field)
				break
			}
		}
	}
	return out
}

func (f Fields) addString(key string, v *string) Fields {
	if v == nil {
		return f
	}
	return f.Add(key, *v)
}

func (f Fields) addInt(key string, v *int) Fields {
	if v == nil {
		return f
	}
	return f.Add(key, *v)
}

func (f Fields) addInt64(key string, v *int64) Fields {
	if v == nil {
		return f
	}
	return f.Add(key, *v)
}

func (f Fields) addUint(key string, v *uint) Fields {
	if v == nil {
		return f
	}
	return f.Add(key, *v)
}

func (f Fields) addTime(key string, v *time.Time) Fields {
	if v == nil {
		return f
	}
	return f.Add(key, *v)
}
