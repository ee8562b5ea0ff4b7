package listener

import (
	"bytes"
	"fmt"
)

// Parameters is an insertion ordered string map.
// A nil *Parameters is a valid, empty and read-only set of parameters.
type Parameters struct {
	keys   []string
	values map[string]string
}

// NewParameters creates parameters from alternating keys and values.
func NewParameters(kv ...string) *Parameters {
	if len(kv)%2 != 0 {
		panic("listener: NewParameters requires an even number of arguments")
	}
	p := &Parameters{values: make(map[string]string, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}
	return p
}

// ParametersFromMap creates parameters from m, ordered by the provided keys.
// Keys missing from m are skipped.
func ParametersFromMap(m map[string]string, order ...string) *Parameters {
	p := NewParameters()
	for _, k := range order {
		if v, ok := m[k]; ok {
			p.Set(k, v)
		}
	}
	return p
}

func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

func (p *Parameters) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Value returns the value of key or the empty string.
func (p *Parameters) Value(key string) string {
	v, _ := p.Get(key)
	return v
}

// Set overwrites key, keeping its original position if it already existed.
func (p *Parameters) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

func (p *Parameters) Delete(key string) {
	if p == nil {
		return
	}
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the keys in insertion order.
func (p *Parameters) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Range calls f for each entry in order until f returns false.
func (p *Parameters) Range(f func(key, value string) bool) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		if !f(k, p.values[k]) {
			return
		}
	}
}

// Copy returns an independent copy. The copy of nil parameters is empty and writable.
func (p *Parameters) Copy() *Parameters {
	c := &Parameters{values: make(map[string]string, p.Len())}
	p.Range(func(k, v string) bool {
		c.Set(k, v)
		return true
	})
	return c
}

// Map returns the parameters as an unordered map.
func (p *Parameters) Map() map[string]string {
	m := make(map[string]string, p.Len())
	p.Range(func(k, v string) bool {
		m[k] = v
		return true
	})
	return m
}

// Equal reports whether both sets hold the same entries, ignoring order.
// Nil and empty parameters are equal.
func (p *Parameters) Equal(o *Parameters) bool {
	if p.Len() != o.Len() {
		return false
	}
	equal := true
	p.Range(func(k, v string) bool {
		ov, ok := o.Get(k)
		equal = ok && ov == v
		return equal
	})
	return equal
}

func (p *Parameters) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	p.Range(func(k, v string) bool {
		fmt.Fprintf(&buf, "[%s]=[%s]", k, v)
		return true
	})
	buf.WriteByte(']')
	return buf.String()
}
