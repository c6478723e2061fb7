package std_test

import (
	"testing"

	"github.com/authcorp/libs/go/src/functional"
	"github.com/authcorp/libs/go/src/optics"
	"github.com/authcorp/libs/go/src/optics/std"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Record struct {
	Foo int
	Bar string
	Qux bool
}

type Wrapper struct {
	Bar functional.Option[Inner]
	Foo functional.Option[Other]
}

type Inner struct {
	Foo int
}

type Other struct {
	Bar string
}

type Item struct {
	Bar string
}

type User struct {
	Name   string
	Age    int
	Email  functional.Option[string]
	Stuff  []Item
	Info   Info
	Things []string
}

type Info struct {
	Stuff []User
}

var (
	recordFoo = std.Field("foo",
		func(r Record) int { return r.Foo },
		func(r Record, v int) Record { r.Foo = v; return r },
	)
	recordQux = std.Field("qux",
		func(r Record) bool { return r.Qux },
		func(r Record, v bool) Record { r.Qux = v; return r },
	)
	wrapperBar = std.Field("bar",
		func(w Wrapper) functional.Option[Inner] { return w.Bar },
		func(w Wrapper, v functional.Option[Inner]) Wrapper { w.Bar = v; return w },
	)
	wrapperFoo = std.Field("foo",
		func(w Wrapper) functional.Option[Other] { return w.Foo },
		func(w Wrapper, v functional.Option[Other]) Wrapper { w.Foo = v; return w },
	)
	innerFoo = std.Field("foo",
		func(i Inner) int { return i.Foo },
		func(i Inner, v int) Inner { i.Foo = v; return i },
	)
	otherBar = std.Field("bar",
		func(o Other) string { return o.Bar },
		func(o Other, v string) Other { o.Bar = v; return o },
	)
	itemBar = std.Field("bar",
		func(i Item) string { return i.Bar },
		func(i Item, v string) Item { i.Bar = v; return i },
	)
	userName = std.Field("name",
		func(u User) string { return u.Name },
		func(u User, v string) User { u.Name = v; return u },
	)
	userInfo = std.Field("info",
		func(u User) Info { return u.Info },
		func(u User, v Info) User { u.Info = v; return u },
	)
	infoStuff = std.Field("stuff",
		func(i Info) []User { return i.Stuff },
		func(i Info, v []User) Info { i.Stuff = v; return i },
	)
)

func TestFieldGetAndSet(t *testing.T) {
	r := Record{Foo: 3, Bar: "Yop", Qux: false}

	assert.Equal(t, 3, optics.Get(recordFoo, r))
	assert.Equal(t, Record{Foo: 3, Bar: "Yop", Qux: true}, optics.Set(recordQux, true, r))
	assert.False(t, r.Qux, "original should be unchanged")
}

func TestTryThroughOption(t *testing.T) {
	w := Wrapper{
		Bar: functional.Some(Inner{Foo: 3}),
		Foo: functional.None[Other](),
	}

	barFoo := optics.Compose(optics.Compose(wrapperBar, std.Some[Inner, Inner]()), innerFoo)
	fooBar := optics.Compose(optics.Compose(wrapperFoo, std.Some[Other, Other]()), otherBar)

	assert.Equal(t, functional.Some(3), optics.Try(barFoo, w))
	assert.Equal(t, functional.None[string](), optics.Try(fooBar, w))
	assert.Equal(t, w, optics.Set(fooBar, "ignored", w))
}

func TestKeyOnMap(t *testing.T) {
	m := map[string]int{"foo": 7}

	assert.Equal(t, functional.Some(7), optics.Get(std.Key[string, int]("foo"), m))
	assert.Equal(t, functional.None[int](), optics.Get(std.Key[string, int]("bar"), m))

	removed := optics.Set(std.Key[string, int]("foo"), functional.None[int](), m)
	assert.Empty(t, removed)
	assert.Equal(t, map[string]int{"foo": 7}, m, "original should be unchanged")

	assert.Equal(t, m, optics.Set(std.Key[string, int]("bar"), functional.None[int](), m))
	assert.Equal(t, map[string]int{"foo": 7, "bar": 1}, optics.Set(std.Key[string, int]("bar"), functional.Some(1), m))
}

func TestAtOnSlice(t *testing.T) {
	list := []Item{{Bar: "Stuff"}, {Bar: "Things"}, {Bar: "Woot"}}

	assert.Equal(t, functional.Some(Item{Bar: "Things"}), optics.Try(std.At[Item](1), list))
	assert.Equal(t, functional.None[Item](), optics.Try(std.At[Item](9000), list))

	updated := optics.Set(optics.Compose(std.At[Item](0), itemBar), "X", list)
	assert.Equal(t, []Item{{Bar: "X"}, {Bar: "Things"}, {Bar: "Woot"}}, updated)
	assert.Equal(t, "Stuff", list[0].Bar, "original should be unchanged")

	assert.Equal(t, list, optics.Set(optics.Compose(std.At[Item](9000), itemBar), "X", list))
}

func TestDefaultThroughMissingKey(t *testing.T) {
	dict := map[string]Item{"foo": {Bar: "Yop"}}

	path := optics.Dot(optics.Dot(std.Key[string, Item]("not_it"), std.Default(Item{Bar: "Stuff"})), itemBar)
	assert.Equal(t, "Stuff", optics.Get(path, dict))

	found := optics.Dot(optics.Dot(std.Key[string, Item]("foo"), std.Default(Item{Bar: "Stuff"})), itemBar)
	assert.Equal(t, "Yop", optics.Get(found, dict))
	assert.Equal(t, map[string]Item{"foo": {Bar: "Yop"}, "not_it": {Bar: "New"}}, optics.Set(path, "New", dict))
}

func TestComposedName(t *testing.T) {
	path := optics.Compose(
		optics.Compose(optics.Dot(userInfo, infoStuff), std.At[User](7)),
		userName,
	)
	assert.Equal(t, ".info.stuff[7]?.name", optics.Name(path))
	assert.Equal(t, optics.CapabilityTraversal, optics.CapabilityOf(path))
}

func TestNestedUpdateThroughAt(t *testing.T) {
	path := optics.Compose(
		optics.Compose(optics.Dot(userInfo, infoStuff), std.At[User](1)),
		userName,
	)
	root := User{Info: Info{Stuff: []User{{Name: "a"}, {Name: "b"}}}}

	require.Equal(t, []string{"b"}, optics.All(path, root))
	updated := optics.Set(path, "B", root)
	assert.Equal(t, "B", updated.Info.Stuff[1].Name)
	assert.Equal(t, "a", updated.Info.Stuff[0].Name)
	assert.Equal(t, "b", root.Info.Stuff[1].Name, "original should be unchanged")
}
