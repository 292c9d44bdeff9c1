package storage

import "testing"

func TestMemoryReadFallback(t *testing.T) {
	kv := NewMemory()

	out := []string{"fallback"}
	if kv.Read("missing", &out) {
		t.Fatal("Read of a missing key should report false")
	}
	if len(out) != 1 || out[0] != "fallback" {
		t.Errorf("fallback clobbered: %v", out)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	kv := NewMemory()
	kv.Write("list", []string{"a", "b"})

	out := []string{}
	if !kv.Read("list", &out) {
		t.Fatal("Read should find the key")
	}
	if len(out) != 2 || out[0] != "a" || out[1] != "b" {
		t.Errorf("out = %v", out)
	}
}

func TestMemoryRemove(t *testing.T) {
	kv := NewMemory()
	kv.Write("k", 1)
	kv.Remove("k")

	var out int
	if kv.Read("k", &out) {
		t.Error("key should be gone")
	}
}

func TestWriteUnserializableIsNoop(t *testing.T) {
	kv := NewMemory()
	kv.Write("bad", func() {}) // functions cannot marshal; swallowed

	var out any
	if kv.Read("bad", &out) {
		t.Error("failed write should leave no value behind")
	}
}

func TestDecodeFailureLeavesFallbackUntouched(t *testing.T) {
	kv := NewMemory()
	// "name" decodes fine before "count" errors; the fallback must survive
	// the partial decode intact.
	kv.data["prefs"] = []byte(`{"name":"stored","count":"not a number"}`)

	out := struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}{Name: "fallback", Count: 3}
	if kv.Read("prefs", &out) {
		t.Fatal("malformed value should report false")
	}
	if out.Name != "fallback" || out.Count != 3 {
		t.Errorf("fallback clobbered: %+v", out)
	}
}

func TestDecodeKeepsFieldsMissingFromStored(t *testing.T) {
	kv := NewMemory()
	kv.data["prefs"] = []byte(`{"name":"stored"}`)

	out := struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}{Name: "fallback", Count: 3}
	if !kv.Read("prefs", &out) {
		t.Fatal("Read should find the key")
	}
	if out.Name != "stored" || out.Count != 3 {
		t.Errorf("out = %+v", out)
	}
}

func TestDecodeMismatchFallsBack(t *testing.T) {
	kv := NewMemory()
	kv.Write("k", "just a string")

	out := map[string]int{"fallback": 1}
	if kv.Read("k", &out) {
		t.Error("mismatched shape should report false")
	}
}

func TestUnavailable(t *testing.T) {
	var kv KV = Unavailable{}

	kv.Write("k", "v") // no-op, must not panic
	kv.Remove("k")

	out := "fallback"
	if kv.Read("k", &out) {
		t.Error("Unavailable should never find a value")
	}
	if out != "fallback" {
		t.Errorf("out = %q", out)
	}
}
