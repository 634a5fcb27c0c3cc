package tankerkoenig

import "strconv"

// queryParam is implemented by enum-like parameter types that know their
// wire representation.
type queryParam interface {
	QueryParam() string
}

// paramBuilder accumulates request parameters keyed by their wire name.
// Insertion order is irrelevant; the transport encodes them as an unordered
// key-value set.
type paramBuilder struct {
	params map[string]string
}

func newParamBuilder() *paramBuilder {
	return &paramBuilder{params: make(map[string]string)}
}

// add stores a value under key, converting typed parameters through their
// queryParam capability and numeric values to their shortest decimal form.
func (b *paramBuilder) add(key string, value any) *paramBuilder {
	switch v := value.(type) {
	case queryParam:
		b.params[key] = v.QueryParam()
	case string:
		b.params[key] = v
	case float64:
		b.params[key] = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		b.params[key] = strconv.Itoa(v)
	case int64:
		b.params[key] = strconv.FormatInt(v, 10)
	default:
		// Remaining parameter types are all covered above; new ones must
		// be added explicitly.
		panic("unsupported parameter type")
	}
	return b
}

func (b *paramBuilder) build() map[string]string {
	return b.params
}
