// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testDocument = `defaultvalues=defaultvalues
[topsecret]
KFC = the secret herb is orega-
        colon:value after colon
Empty string =
None string
Password=[in-brackets]
[ spacing ]
    indented=indented
not indented = not indented    ;testcomment
[values]#another comment
Bool = True
Boolcoerce = 0
Int = -31415
Uint = 31415
Float = 3.1415
`

func TestConfigGet(t *testing.T) {
	c := New()
	if err := c.ReadString(testDocument); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		section string
		key     string
		want    string
		wantOK  bool
	}{
		{"TOPSECRET", "KFC", "the secret herb is orega-", true},
		{"topsecret", "kfc", "the secret herb is orega-", true},
		{"topsecret", "colon", "value after colon", true},
		{"topsecret", "Empty string", "", true},
		{"topsecret", "None string", "", false},
		{"topsecret", "Password", "[in-brackets]", true},
		{"spacing", "indented", "indented", true},
		{"spacing", "not indented", "not indented", true},
		{"DEFAULT", "defaultvalues", "defaultvalues", true},
		{"nosuchsection", "key", "", false},
		{"topsecret", "nosuchkey", "", false},
	}
	for _, test := range tests {
		got, ok := c.Get(test.section, test.key)
		if got != test.want || ok != test.wantOK {
			t.Errorf("Get(%q, %q) = %q, %t; want %q, %t",
				test.section, test.key, got, ok, test.want, test.wantOK)
		}
	}
}

func TestConfigGetCaseSensitive(t *testing.T) {
	c := NewCaseSensitive()
	if err := c.ReadString(testDocument); err != nil {
		t.Fatal(err)
	}
	if got, ok := c.Get("topsecret", "KFC"); !ok || got != "the secret herb is orega-" {
		t.Errorf("Get(topsecret, KFC) = %q, %t; want match", got, ok)
	}
	if _, ok := c.Get("TOPSECRET", "KFC"); ok {
		t.Error("Get(TOPSECRET, KFC) found a value in case-sensitive mode")
	}
	if _, ok := c.Get("topsecret", "kfc"); ok {
		t.Error("Get(topsecret, kfc) found a value in case-sensitive mode")
	}
}

func TestTypedGetters(t *testing.T) {
	c := New()
	if err := c.ReadString(testDocument); err != nil {
		t.Fatal(err)
	}

	if v, ok, err := c.GetBool("values", "Bool"); err != nil || !ok || !v {
		t.Errorf("GetBool(values, Bool) = %t, %t, %v; want true, true, nil", v, ok, err)
	}
	if _, _, err := c.GetBool("values", "Boolcoerce"); err == nil {
		t.Error("GetBool(values, Boolcoerce) did not fail on \"0\"")
	}
	if v, ok, err := c.GetBoolCoerce("values", "Boolcoerce"); err != nil || !ok || v {
		t.Errorf("GetBoolCoerce(values, Boolcoerce) = %t, %t, %v; want false, true, nil", v, ok, err)
	}
	c.SetString("values", "Maybe", "maybe")
	if _, _, err := c.GetBoolCoerce("values", "Maybe"); err == nil {
		t.Error("GetBoolCoerce(values, Maybe) did not fail on \"maybe\"")
	}
	if v, ok, err := c.GetInt64("values", "Int"); err != nil || !ok || v != -31415 {
		t.Errorf("GetInt64(values, Int) = %d, %t, %v; want -31415, true, nil", v, ok, err)
	}
	if v, ok, err := c.GetUint64("values", "Uint"); err != nil || !ok || v != 31415 {
		t.Errorf("GetUint64(values, Uint) = %d, %t, %v; want 31415, true, nil", v, ok, err)
	}
	if _, _, err := c.GetUint64("values", "Int"); err == nil {
		t.Error("GetUint64(values, Int) did not fail on a negative value")
	}
	if v, ok, err := c.GetFloat64("values", "Float"); err != nil || !ok || v != 3.1415 {
		t.Errorf("GetFloat64(values, Float) = %g, %t, %v; want 3.1415, true, nil", v, ok, err)
	}
	if _, _, err := c.GetInt64("values", "Bool"); err == nil {
		t.Error("GetInt64(values, Bool) did not fail on \"True\"")
	}

	// Absent and valueless keys are not errors.
	if v, ok, err := c.GetFloat64("topsecret", "None string"); v != 0 || ok || err != nil {
		t.Errorf("GetFloat64 on valueless key = %g, %t, %v; want 0, false, nil", v, ok, err)
	}
	if v, ok, err := c.GetInt64("nosuch", "key"); v != 0 || ok || err != nil {
		t.Errorf("GetInt64 on missing key = %d, %t, %v; want 0, false, nil", v, ok, err)
	}
}

func TestSetAndRemove(t *testing.T) {
	c := New()
	if err := c.ReadString(testDocument); err != nil {
		t.Fatal(err)
	}

	prev, existed := c.SetString("DEFAULT", "defaultvalues", "notdefault")
	if !existed || prev == nil || *prev != "defaultvalues" {
		t.Errorf("SetString returned prev %v, existed %t; want \"defaultvalues\", true", prev, existed)
	}
	if got, _ := c.Get("default", "defaultvalues"); got != "notdefault" {
		t.Errorf("Get after SetString = %q; want \"notdefault\"", got)
	}

	// A nil value makes the key valueless without removing it.
	c.Set("DEFAULT", "defaultvalues", nil)
	if _, ok := c.Get("default", "defaultvalues"); ok {
		t.Error("Get found a value for a valueless key")
	}
	if sect, ok := c.Tree().Get("default"); !ok || !sect.Has("defaultvalues") {
		t.Error("valueless key is missing from the tree")
	}

	if _, existed := c.SetString("newsection", "k", "v"); existed {
		t.Error("SetString reported an existing key in a fresh section")
	}
	if got, ok := c.Get("NEWSECTION", "K"); !ok || got != "v" {
		t.Errorf("Get(NEWSECTION, K) = %q, %t; want \"v\", true", got, ok)
	}

	removed, ok := c.RemoveKey("default", "defaultvalues")
	if !ok || removed != nil {
		t.Errorf("RemoveKey = %v, %t; want nil (valueless), true", removed, ok)
	}
	if _, ok := c.RemoveKey("default", "defaultvalues"); ok {
		t.Error("second RemoveKey reported a removal")
	}

	sect, ok := c.RemoveSection("SPACING")
	if !ok || sect.Len() != 2 {
		t.Errorf("RemoveSection(SPACING) = %d keys, %t; want 2 keys, true", sect.Len(), ok)
	}
	if _, ok := c.Get("spacing", "indented"); ok {
		t.Error("Get found a key in a removed section")
	}

	c.Clear()
	if got := c.Sections(); len(got) != 0 {
		t.Errorf("Sections() after Clear = %q; want empty", got)
	}
}

func TestSections(t *testing.T) {
	c := New()
	if err := c.ReadString(testDocument); err != nil {
		t.Fatal(err)
	}
	want := []string{"default", "topsecret", "spacing", "values"}
	if diff := cmp.Diff(want, c.Sections()); diff != "" {
		t.Errorf("Sections() (-want +got):\n%s", diff)
	}
}

func TestAppend(t *testing.T) {
	c := New()
	if err := c.ReadString("[s]\nk=1\n[other]\nuntouched=yes\n"); err != nil {
		t.Fatal(err)
	}
	if err := c.AppendString("[s]\nk=2\nj=3\n"); err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Get("s", "k"); got != "2" {
		t.Errorf("Get(s, k) = %q; want \"2\"", got)
	}
	if got, _ := c.Get("s", "j"); got != "3" {
		t.Errorf("Get(s, j) = %q; want \"3\"", got)
	}
	if got, _ := c.Get("other", "untouched"); got != "yes" {
		t.Errorf("Get(other, untouched) = %q; want \"yes\"", got)
	}
}

func TestValuelessVersusMissing(t *testing.T) {
	c := New()
	if err := c.ReadString("foo\n"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("default", "foo"); ok {
		t.Error("Get reported a value for a valueless key")
	}
	m := c.Map()
	v, present := m["default"]["foo"]
	if !present {
		t.Fatal("valueless key missing from the map view")
	}
	if v != nil {
		t.Errorf("map view value = %q; want nil", *v)
	}
	if _, present := m["default"]["bar"]; present {
		t.Error("missing key present in the map view")
	}
}

func TestMapSnapshotIsIndependent(t *testing.T) {
	c := New()
	if err := c.ReadString("k=v\n"); err != nil {
		t.Fatal(err)
	}
	m := c.Map()
	*m["default"]["k"] = "mutated"
	m["default"]["extra"] = strp("extra")
	if got, _ := c.Get("default", "k"); got != "v" {
		t.Errorf("Get(default, k) = %q after snapshot mutation; want \"v\"", got)
	}
	if _, ok := c.Get("default", "extra"); ok {
		t.Error("snapshot insertion leaked into the configuration")
	}
}

func TestTreeBypassesFolding(t *testing.T) {
	c := New()
	if err := c.ReadString("[s]\nk=v\n"); err != nil {
		t.Fatal(err)
	}
	sect, _ := c.Tree().Get("s")
	sect.Set("Weird", strp("x"))
	if _, ok := c.Get("s", "weird"); ok {
		t.Error("Get(s, weird) found a key written with unnormalized case")
	}
	if v, ok := sect.Get("Weird"); !ok || v == nil || *v != "x" {
		t.Error("direct tree write is not visible through the tree")
	}
}

func TestOptionSettersAffectFutureParsesOnly(t *testing.T) {
	c := New()
	if err := c.ReadString("k=v\n"); err != nil {
		t.Fatal(err)
	}
	c.SetDefaultSection("global")
	// Already-parsed content is not reinterpreted.
	if got, ok := c.Get("default", "k"); !ok || got != "v" {
		t.Errorf("Get(default, k) = %q, %t; want \"v\", true", got, ok)
	}
	if err := c.ReadString("k2=v2\n"); err != nil {
		t.Fatal(err)
	}
	if got, ok := c.Get("global", "k2"); !ok || got != "v2" {
		t.Errorf("Get(global, k2) = %q, %t; want \"v2\", true", got, ok)
	}
}

func TestLoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")

	c := New()
	if err := c.ReadString(testDocument); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteFile(path); err != nil {
		t.Fatal(err)
	}

	c2 := New()
	if err := c2.Load(path); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c.Map(), c2.Map()); diff != "" {
		t.Errorf("tree after write/load (-want +got):\n%s", diff)
	}
}

func TestLoadAndAppend(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.ini")
	more := filepath.Join(dir, "more.ini")
	if err := os.WriteFile(base, []byte("defaultvalues=defaultvalues\n[topsecret]\nKFC=the secret herb is orega-\n[spacing]\nindented=indented\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(more, []byte("defaultvalues=overwritten\n[topsecret]\nKFC=redacted\n"), 0o666); err != nil {
		t.Fatal(err)
	}

	c := New()
	if err := c.Load(base); err != nil {
		t.Fatal(err)
	}
	if err := c.LoadAndAppend(more); err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Get("default", "defaultvalues"); got != "overwritten" {
		t.Errorf("Get(default, defaultvalues) = %q; want \"overwritten\"", got)
	}
	if got, _ := c.Get("topsecret", "KFC"); got != "redacted" {
		t.Errorf("Get(topsecret, KFC) = %q; want \"redacted\"", got)
	}
	if got, _ := c.Get("spacing", "indented"); got != "indented" {
		t.Errorf("Get(spacing, indented) = %q; want \"indented\"", got)
	}
}

func TestLoadErrorLeavesStoreUntouched(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ini")
	if err := os.WriteFile(bad, []byte("[oops\n"), 0o666); err != nil {
		t.Fatal(err)
	}

	c := New()
	if err := c.ReadString("k=v\n"); err != nil {
		t.Fatal(err)
	}
	err := c.Load(bad)
	if err == nil {
		t.Fatal("Load(bad) did not return an error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Load(bad) error = %v; want *ParseError", err)
	}
	if got, ok := c.Get("default", "k"); !ok || got != "v" {
		t.Errorf("Get(default, k) = %q, %t after failed load; want \"v\", true", got, ok)
	}

	if err := c.Load(filepath.Join(dir, "does-not-exist.ini")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load on a missing file = %v; want ErrNotExist", err)
	}
	if got, ok := c.Get("default", "k"); !ok || got != "v" {
		t.Errorf("Get(default, k) = %q, %t after failed load; want \"v\", true", got, ok)
	}
}

func TestMarshalUnmarshalText(t *testing.T) {
	c := New()
	if err := c.ReadString(testDocument); err != nil {
		t.Fatal(err)
	}
	data, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	c2 := New()
	if err := c2.UnmarshalText(data); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c.Map(), c2.Map()); diff != "" {
		t.Errorf("tree after marshal/unmarshal (-want +got):\n%s", diff)
	}
}
