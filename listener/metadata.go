package listener

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/copystructure"
)

// Well known metadata keys.
const (
	MetaDataSyntax = "syntax"
	MetaDataSource = "source"
	MetaDataBase   = "base"
	MetaDataTitle  = "title"
)

// MetaData is an insertion ordered map of document metadata.
// A nil *MetaData is valid and empty.
type MetaData struct {
	keys   []string
	values map[string]interface{}
}

func NewMetaData() *MetaData {
	return &MetaData{values: make(map[string]interface{})}
}

// NewMetaDataFrom creates metadata from m with keys in the given order.
// Keys are sorted when no order is given.
func NewMetaDataFrom(m map[string]interface{}, order ...string) *MetaData {
	md := NewMetaData()
	if len(order) == 0 {
		for k := range m {
			order = append(order, k)
		}
		sort.Strings(order)
	}
	for _, k := range order {
		if v, ok := m[k]; ok {
			md.Add(k, v)
		}
	}
	return md
}

func (m *MetaData) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Add sets the value of key, overwriting any previous value.
func (m *MetaData) Add(key string, value interface{}) {
	if m.values == nil {
		m.values = make(map[string]interface{})
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// AddAll adds all entries of o, in order.
func (m *MetaData) AddAll(o *MetaData) {
	o.Range(func(k string, v interface{}) bool {
		m.Add(k, v)
		return true
	})
}

func (m *MetaData) Get(key string) (interface{}, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

func (m *MetaData) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *MetaData) Range(f func(key string, value interface{}) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !f(k, m.values[k]) {
			return
		}
	}
}

// Copy deep copies the metadata, including values.
// Values that cannot be deep copied are shared.
func (m *MetaData) Copy() *MetaData {
	c := NewMetaData()
	m.Range(func(k string, v interface{}) bool {
		cp, err := copystructure.Copy(v)
		if err != nil {
			cp = v
		}
		c.Add(k, cp)
		return true
	})
	return c
}

// Equal reports whether both hold deeply equal entries, ignoring order.
func (m *MetaData) Equal(o *MetaData) bool {
	if m.Len() != o.Len() {
		return false
	}
	equal := true
	m.Range(func(k string, v interface{}) bool {
		ov, ok := o.Get(k)
		equal = ok && reflect.DeepEqual(v, ov)
		return equal
	})
	return equal
}

func (m *MetaData) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	m.Range(func(k string, v interface{}) bool {
		fmt.Fprintf(&buf, "[%s]=[%v]", k, v)
		return true
	})
	buf.WriteByte(']')
	return buf.String()
}
