package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
)

func TestToJSON(t *testing.T) {
	set := models.NewBrandSet()
	set.Add("Acme")
	set.Add("Rival")

	compact, err := ToJSON(set, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(compact) != `["Acme","Rival"]` {
		t.Errorf("compact = %s", compact)
	}

	indented, err := ToJSON(map[string]int{"rows": 3}, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(indented) != "{\n  \"rows\": 3\n}" {
		t.Errorf("indented = %q", indented)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []string{"North"}, false); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("missing trailing newline: %q", buf.String())
	}
}

func TestToJSONUnsupported(t *testing.T) {
	if _, err := ToJSON(make(chan int), false); err == nil {
		t.Error("expected error for channel value")
	}
}
