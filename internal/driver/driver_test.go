package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BonnyAD9/place-macro/internal/driver"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/pkg/place"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExpandFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.place", `fn __identifier__(cool_ foo)()`)

	fs := source.NewFileSet()
	res, err := driver.ExpandFile(fs, path, place.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	if res.Output != "fn cool_foo()" {
		t.Errorf("output = %q, want %q", res.Output, "fn cool_foo()")
	}
}

func TestExpandFileDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.place", `__head__()`)

	fs := source.NewFileSet()
	res, err := driver.ExpandFile(fs, path, place.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected an error diagnostic")
	}
	if res.Output != "" {
		t.Errorf("output = %q, want none on failure", res.Output)
	}
}

func TestExpandVirtual(t *testing.T) {
	fs := source.NewFileSet()
	res := driver.ExpandVirtual(fs, "stdin", []byte(`__str__(a b)`), place.Options{})
	if res.Bag.HasErrors() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	if res.Output != `"ab"` {
		t.Errorf("output = %q, want %q", res.Output, `"ab"`)
	}
}

func TestExpandFilesParallel(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a", "b", "c", "d"} {
		paths = append(paths, writeFile(t, dir, name+".place",
			`__string__(`+name+`)`))
	}

	results, err := driver.ExpandFiles(context.Background(), paths, 2, place.Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d is %s, want input order preserved", i, res.Path)
		}
		if res.Bag.HasErrors() {
			t.Errorf("%s: diagnostics %v", res.Path, res.Bag.Items())
		}
	}
	if results[1].Output != `"b"` {
		t.Errorf("output = %q, want %q", results[1].Output, `"b"`)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	content := []byte(`__str__(a)`)
	key := driver.Key(content, place.Options{})

	var missing driver.Payload
	if ok, err := cache.Get(key, &missing); err != nil || ok {
		t.Fatalf("Get on empty cache = %v, %v", ok, err)
	}

	want := driver.Payload{Path: "a.place", Output: `"a"`}
	if err := cache.Put(key, &want); err != nil {
		t.Fatal(err)
	}

	var got driver.Payload
	ok, err := cache.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get after Put = %v, %v", ok, err)
	}
	if got.Output != want.Output || got.Path != want.Path {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// Different options produce a different key.
	other := driver.Key(content, place.Options{Passes: 2})
	if other == key {
		t.Error("options did not affect the cache key")
	}
}

func TestExpandFilesUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.place", `__str__(a)`)

	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	first, err := driver.ExpandFiles(context.Background(), []string{path}, 1, place.Options{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Error("first run should not hit the cache")
	}

	second, err := driver.ExpandFiles(context.Background(), []string{path}, 1, place.Options{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Error("second run should hit the cache")
	}
	if second[0].Output != first[0].Output {
		t.Errorf("cached output %q differs from fresh %q", second[0].Output, first[0].Output)
	}
}
