package prefab

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestReferenceDecode(t *testing.T) {
	var byIndex Reference
	if err := yaml.Unmarshal([]byte("3"), &byIndex); err != nil {
		t.Fatalf("decoding index: %v", err)
	}
	if byIndex.String() != "#3" {
		t.Errorf("decoded %s, want #3", byIndex.String())
	}

	var byName Reference
	if err := yaml.Unmarshal([]byte(`"hero"`), &byName); err != nil {
		t.Fatalf("decoding name: %v", err)
	}
	if byName.String() != `"hero"` {
		t.Errorf("decoded %s, want %q", byName.String(), "hero")
	}
}

func TestReferenceDecodeRejectsOtherKinds(t *testing.T) {
	for _, doc := range []string{"[1, 2]", "{index: 1}", "1.5", "true"} {
		var r Reference
		if err := yaml.Unmarshal([]byte(doc), &r); err == nil {
			t.Errorf("decoding %q succeeded, want error", doc)
		}
	}
}

func TestReferenceRoundtrip(t *testing.T) {
	for _, ref := range []Reference{ByIndex(0), ByIndex(12), ByName("hero")} {
		out, err := yaml.Marshal(ref)
		if err != nil {
			t.Fatalf("marshal %s: %v", ref.String(), err)
		}
		var back Reference
		if err := yaml.Unmarshal(out, &back); err != nil {
			t.Fatalf("unmarshal %q: %v", out, err)
		}
		if back.String() != ref.String() {
			t.Errorf("roundtrip of %s gave %s", ref.String(), back.String())
		}
	}

	if _, err := yaml.Marshal(Reference{}); err == nil ||
		!strings.Contains(err.Error(), "empty sheet reference") {
		t.Errorf("marshaling an empty reference should fail, got %v", err)
	}
}

func TestReferenceString(t *testing.T) {
	var nilRef *Reference
	if got := nilRef.String(); got != "<none>" {
		t.Errorf("nil reference String() = %q", got)
	}
	empty := Reference{}
	if got := empty.String(); got != "<empty>" {
		t.Errorf("empty reference String() = %q", got)
	}
}
