package screen

import (
	"errors"
	"testing"

	"github.com/devicelab-dev/droidctl/pkg/core"
)

const sampleDump = `<?xml version="1.0" encoding="UTF-8"?>
<hierarchy rotation="0">
  <node index="0" text="" resource-id="" class="android.widget.FrameLayout" bounds="[0,0][1080,1920]" clickable="false" enabled="true">
    <node index="0" text="Login" resource-id="com.app:id/login_btn" class="android.widget.Button" bounds="[100,200][300,280]" clickable="true" enabled="true"/>
    <node index="1" text="Sign Up" resource-id="com.app:id/signup_btn" class="android.widget.Button" bounds="[100,300][300,380]" clickable="true" enabled="true"/>
    <node index="2" text="" resource-id="com.app:id/container" class="android.widget.LinearLayout" bounds="[0,400][1080,800]" clickable="false" enabled="true">
      <node index="0" text="Username" resource-id="com.app:id/label" class="android.widget.TextView" bounds="[50,420][200,460]" clickable="false" enabled="true"/>
      <node index="1" text="" resource-id="com.app:id/input" class="android.widget.EditText" bounds="[50,470][500,530]" clickable="true" enabled="true" focused="true"/>
    </node>
  </node>
</hierarchy>`

func TestParseHierarchy(t *testing.T) {
	elements, err := ParseHierarchy(sampleDump)
	if err != nil {
		t.Fatalf("ParseHierarchy failed: %v", err)
	}

	// 1 root layout + 3 children + 2 grandchildren
	if len(elements) != 6 {
		t.Fatalf("expected 6 elements, got %d", len(elements))
	}

	login := elements[1]
	if got, _ := login.Str("resource-id"); got != "com.app:id/login_btn" {
		t.Errorf("resource-id = %q, want com.app:id/login_btn", got)
	}
	if clickable, ok := login.Bool("clickable"); !ok || !clickable {
		t.Errorf("clickable = %v, %v; want true, true", clickable, ok)
	}
}

func TestParseHierarchyPreOrder(t *testing.T) {
	elements, err := ParseHierarchy(sampleDump)
	if err != nil {
		t.Fatalf("ParseHierarchy failed: %v", err)
	}

	// Parent records precede all of their descendants.
	var order []string
	for _, el := range elements {
		id, _ := el.Str("resource-id")
		order = append(order, id)
	}
	want := []string{
		"",
		"com.app:id/login_btn",
		"com.app:id/signup_btn",
		"com.app:id/container",
		"com.app:id/label",
		"com.app:id/input",
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("element %d: resource-id = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestParseHierarchyBoolCoercion(t *testing.T) {
	const dump = `<hierarchy>
  <node checked="true" enabled="false" focused="True" count="1" label="false-ish"/>
</hierarchy>`

	elements, err := ParseHierarchy(dump)
	if err != nil {
		t.Fatalf("ParseHierarchy failed: %v", err)
	}
	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}

	el := elements[0]
	if v, ok := el["checked"].(bool); !ok || !v {
		t.Errorf(`checked = %v (%T), want bool true`, el["checked"], el["checked"])
	}
	if v, ok := el["enabled"].(bool); !ok || v {
		t.Errorf(`enabled = %v (%T), want bool false`, el["enabled"], el["enabled"])
	}
	// Only the exact lowercase tokens coerce.
	if v, ok := el["focused"].(string); !ok || v != "True" {
		t.Errorf(`focused = %v (%T), want string "True"`, el["focused"], el["focused"])
	}
	if v, ok := el["count"].(string); !ok || v != "1" {
		t.Errorf(`count = %v (%T), want string "1"`, el["count"], el["count"])
	}
	if v, ok := el["label"].(string); !ok || v != "false-ish" {
		t.Errorf(`label = %v (%T), want string "false-ish"`, el["label"], el["label"])
	}
}

func TestParseHierarchySkipsAttributelessNodes(t *testing.T) {
	const dump = `<hierarchy rotation="0">
  <node>
    <node text="inner"/>
  </node>
</hierarchy>`

	elements, err := ParseHierarchy(dump)
	if err != nil {
		t.Fatalf("ParseHierarchy failed: %v", err)
	}
	// The bare <node> produces no record but its child is still visited.
	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	if text, _ := elements[0].Str("text"); text != "inner" {
		t.Errorf("text = %q, want inner", text)
	}
}

func TestParseHierarchyInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not xml", "not xml"},
		{"unclosed tag", `<hierarchy><node text="a">`},
		{"no hierarchy root", `<root><node text="a"/></root>`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHierarchy(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, core.ErrParse) {
				t.Errorf("expected core.ErrParse, got %v", err)
			}
		})
	}
}
