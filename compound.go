package nbt

import "fmt"

// Compound is an ordered mapping of unique names to tags. Iteration
// order is insertion order, and that order is exactly what the binary
// and text writers reproduce. Inserting under an existing name
// replaces the previous tag in place, keeping its position.
type Compound struct {
	index map[string]int
	items []*Tag
}

// Put inserts t under name, replacing any existing entry at its
// original position. The tag's name is set to name.
func (c *Compound) Put(name string, t *Tag) {
	t.Name = name
	if i, ok := c.index[name]; ok {
		c.items[i] = t
		return
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[name] = len(c.items)
	c.items = append(c.items, t)
}

// Get returns the tag stored under name.
func (c *Compound) Get(name string) (*Tag, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.items[i], true
}

// Len returns the number of entries.
func (c *Compound) Len() int {
	return len(c.items)
}

// Tags returns the entries in insertion order. The slice is borrowed:
// it remains owned by the compound and must not be mutated.
func (c *Compound) Tags() []*Tag {
	return c.items
}

func (c *Compound) typed(name string, kind Kind) (*Tag, error) {
	t, ok := c.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	if t.Kind != kind {
		return nil, fmt.Errorf("%w: %q is %s, want %s", ErrTypeMismatch, name, t.Kind, kind)
	}
	return t, nil
}

// Byte returns the TAG_Byte value stored under name.
func (c *Compound) Byte(name string) (int8, error) {
	t, err := c.typed(name, KindByte)
	if err != nil {
		return 0, err
	}
	return t.Byte, nil
}

// Short returns the TAG_Short value stored under name.
func (c *Compound) Short(name string) (int16, error) {
	t, err := c.typed(name, KindShort)
	if err != nil {
		return 0, err
	}
	return t.Short, nil
}

// Int returns the TAG_Int value stored under name.
func (c *Compound) Int(name string) (int32, error) {
	t, err := c.typed(name, KindInt)
	if err != nil {
		return 0, err
	}
	return t.Int, nil
}

// Long returns the TAG_Long value stored under name.
func (c *Compound) Long(name string) (int64, error) {
	t, err := c.typed(name, KindLong)
	if err != nil {
		return 0, err
	}
	return t.Long, nil
}

// Float returns the TAG_Float value stored under name.
func (c *Compound) Float(name string) (float32, error) {
	t, err := c.typed(name, KindFloat)
	if err != nil {
		return 0, err
	}
	return t.Float, nil
}

// Double returns the TAG_Double value stored under name.
func (c *Compound) Double(name string) (float64, error) {
	t, err := c.typed(name, KindDouble)
	if err != nil {
		return 0, err
	}
	return t.Double, nil
}

// String returns the TAG_String value stored under name.
func (c *Compound) String(name string) (string, error) {
	t, err := c.typed(name, KindString)
	if err != nil {
		return "", err
	}
	return t.Str, nil
}

// ByteArray returns the TAG_Byte_Array buffer stored under name. The
// buffer is borrowed, not copied.
func (c *Compound) ByteArray(name string) ([]byte, error) {
	t, err := c.typed(name, KindByteArray)
	if err != nil {
		return nil, err
	}
	return t.Bytes, nil
}

// IntArray returns the TAG_Int_Array buffer stored under name. The
// buffer is borrowed, not copied.
func (c *Compound) IntArray(name string) ([]int32, error) {
	t, err := c.typed(name, KindIntArray)
	if err != nil {
		return nil, err
	}
	return t.Ints, nil
}

// LongArray returns the TAG_Long_Array buffer stored under name. The
// buffer is borrowed, not copied.
func (c *Compound) LongArray(name string) ([]int64, error) {
	t, err := c.typed(name, KindLongArray)
	if err != nil {
		return nil, err
	}
	return t.Longs, nil
}

// List returns the TAG_List stored under name.
func (c *Compound) List(name string) (*List, error) {
	t, err := c.typed(name, KindList)
	if err != nil {
		return nil, err
	}
	return t.List, nil
}

// Compound returns the nested TAG_Compound stored under name.
func (c *Compound) Compound(name string) (*Compound, error) {
	t, err := c.typed(name, KindCompound)
	if err != nil {
		return nil, err
	}
	return t.Compound, nil
}
