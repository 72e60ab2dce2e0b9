package nbt

import (
	"errors"
	"math"
	"testing"
)

func TestFromJSON(t *testing.T) {
	input := []byte(`{
		"a": 1,
		"b": "x",
		"c": [1, 2, 3],
		"d": {"e": true, "f": false},
		"g": 1.5,
		"h": 5000000000,
		"i": -2147483648
	}`)
	root, err := FromJSON(input)
	if err != nil {
		t.Fatal(err)
	}
	if root.Kind != KindCompound {
		t.Fatalf("root kind = %s", root.Kind)
	}
	c := root.Compound
	if v, err := c.Int("a"); err != nil || v != 1 {
		t.Fatalf("a = (%d, %v)", v, err)
	}
	if v, err := c.String("b"); err != nil || v != "x" {
		t.Fatalf("b = (%q, %v)", v, err)
	}
	l, err := c.List("c")
	if err != nil || l.Elem != KindInt || l.Len() != 3 || l.At(2).Int != 3 {
		t.Fatalf("c = (%+v, %v)", l, err)
	}
	d, err := c.Compound("d")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := d.Byte("e"); v != 1 {
		t.Fatalf("e = %d, want 1", v)
	}
	if v, _ := d.Byte("f"); v != 0 {
		t.Fatalf("f = %d, want 0", v)
	}
	if v, err := c.Double("g"); err != nil || v != 1.5 {
		t.Fatalf("g = (%v, %v)", v, err)
	}
	if v, err := c.Long("h"); err != nil || v != 5000000000 {
		t.Fatalf("h = (%d, %v)", v, err)
	}
	if v, err := c.Int("i"); err != nil || v != -2147483648 {
		t.Fatalf("i = (%d, %v)", v, err)
	}
}

func TestFromJSONRejects(t *testing.T) {
	if _, err := FromJSON([]byte(`[1,2]`)); err == nil {
		t.Fatal("array root accepted")
	}
	if _, err := FromJSON([]byte(`  `)); err == nil {
		t.Fatal("empty input accepted")
	}
	if _, err := FromJSON([]byte(`{"a": null}`)); err == nil {
		t.Fatal("null accepted")
	}
	_, err := FromJSON([]byte(`{"a": [1, "x"]}`))
	if !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("mixed array: got %v, want ErrKindMismatch", err)
	}
}

func TestToJSON(t *testing.T) {
	root := NewCompound("")
	c := root.Compound
	c.Put("b", NewByte("", -1))
	c.Put("s", NewString("", "say \"hi\"\n"))
	c.Put("f", NewFloat("", 0.5))
	c.Put("arr", NewByteArray("", []byte{0x01, 0xFF}))
	c.Put("ints", NewIntArray("", []int32{-1, 2}))
	l := NewList("", KindString)
	if err := l.List.Append(NewString("", "x")); err != nil {
		t.Fatal(err)
	}
	c.Put("l", l)
	inner := NewCompound("")
	inner.Compound.Put("v", NewLong("", 9))
	c.Put("inner", inner)

	got, err := ToJSON(root)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":-1,"s":"say \"hi\"\n","f":0.5,"arr":[1,-1],"ints":[-1,2],"l":["x"],"inner":{"v":9}}`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestToJSONNonFinite(t *testing.T) {
	root := NewCompound("")
	root.Compound.Put("inf", NewDouble("", math.Inf(1)))
	got, err := ToJSON(root)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"inf":null}` {
		t.Fatalf("got %s", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	input := []byte(`{"name":"chunk","pos":[1,2,3],"meta":{"depth":-40}}`)
	root, err := FromJSON(input)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ToJSON(root)
	if err != nil {
		t.Fatal(err)
	}
	again, err := FromJSON([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(root, again) {
		t.Fatal("json round trip changed the tree")
	}
}
