package logging

// Detail enriches a log entry with additional contextual information.
type Detail interface {
	addTo(entry)
}

// Field creates a single key value pair logging detail.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e entry) {
	switch v := f.Value.(type) {
	case Fields:
		sub := make(entry)
		v.addTo(sub)
		e[f.Key] = sub
	case Detail:
		sub := make(entry)
		v.addTo(sub)
		e[f.Key] = sub
	default:
		e[f.Key] = v
	}
}

// Fields is a collection of key value pairs that you can add to your logging entry.
type Fields map[string]any

func (fields Fields) addTo(e entry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}

// ErrField adds the error's message under the "error" key.
func ErrField(err error) Detail {
	if err == nil {
		return nullDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

type entry map[string]any

type nullDetail struct{}

func (nullDetail) addTo(entry) {}
