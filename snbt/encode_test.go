package snbt

import (
	"testing"

	nbt "github.com/blockforge/nbt-go"
)

func TestEncode(t *testing.T) {
	root := nbt.NewCompound("")
	c := root.Compound
	c.Put("byte", nbt.NewByte("", -5))
	c.Put("short", nbt.NewShort("", 300))
	c.Put("int", nbt.NewInt("", 42))
	c.Put("long", nbt.NewLong("", 9999999999))
	c.Put("float", nbt.NewFloat("", 0.5))
	c.Put("double", nbt.NewDouble("", 1.25))
	c.Put("str", nbt.NewString("", "a b"))
	c.Put("bytes", nbt.NewByteArray("", []byte{1, 0xFF}))
	c.Put("ints", nbt.NewIntArray("", []int32{1, -2}))
	c.Put("longs", nbt.NewLongArray("", []int64{3, -4}))
	l := nbt.NewList("", nbt.KindInt)
	for _, v := range []int32{1, 2} {
		if err := l.List.Append(nbt.NewInt("", v)); err != nil {
			t.Fatal(err)
		}
	}
	c.Put("list", l)
	inner := nbt.NewCompound("")
	inner.Compound.Put("needs quotes", nbt.NewInt("", 1))
	c.Put("inner", inner)

	got, err := Encode(root)
	if err != nil {
		t.Fatal(err)
	}
	want := `{byte:-5b,short:300s,int:42,long:9999999999L,float:0.5f,double:1.25d,` +
		`str:"a b",bytes:[B;1b,-1b],ints:[I;1,-2],longs:[L;3L,-4L],list:[1,2],` +
		`inner:{"needs quotes":1}}`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestEncodeQuoting(t *testing.T) {
	root := nbt.NewCompound("")
	c := root.Compound
	c.Put("true", nbt.NewInt("", 1))
	c.Put("", nbt.NewInt("", 2))
	c.Put("esc", nbt.NewString("", `say "hi" \ done`))

	got, err := Encode(root)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"true":1,"":2,esc:"say \"hi\" \\ done"}`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	root := nbt.NewCompound("")
	root.Compound.Put("l", nbt.NewList("", nbt.KindEnd))
	root.Compound.Put("c", nbt.NewCompound(""))
	root.Compound.Put("b", nbt.NewByteArray("", nil))

	got, err := Encode(root)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{l:[],c:{},b:[B;]}` {
		t.Fatalf("got %s", got)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	inputs := []string{
		"{}",
		`{a:1b,b:-300s,c:42,d:9999999999L,e:0.5f,f:1.25d}`,
		`{s:"a\"b",bare:hello}`,
		`{arr:[B;1b,2b],ints:[I;1,2],longs:[L;1L,2L]}`,
		`{nested:{deep:{er:[{x:1},{x:2}]}}}`,
	}
	for _, input := range inputs {
		root, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		text, err := Encode(root)
		if err != nil {
			t.Fatalf("encode %q: %v", input, err)
		}
		again, err := Parse(text)
		if err != nil {
			t.Fatalf("re-parse %q: %v", text, err)
		}
		if !nbt.Equal(root, again) {
			t.Fatalf("roundtrip %q changed the tree via %q", input, text)
		}
	}
}
