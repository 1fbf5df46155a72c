package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const nestedFixture = `{"code":0,"message":"SUCCEED","request_id":"r-1","data":{"task_id":"abc123","task_status":"succeed","task_result":{"videos":[{"id":"v1","url":"https://cdn.example.com/v1.mp4?a=1&b=2","duration":"5.1"}]},"created_at":1722769557708,"ratio":0.1000,"flags":[true,false,null],"empty":{}}}`

func TestOutput_RawJSONPassThrough(t *testing.T) {
	var buf bytes.Buffer

	err := Output(json.RawMessage(nestedFixture), OutputOptions{
		Format: FormatJSON,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	var got, want any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if err := json.Unmarshal([]byte(nestedFixture), &want); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed structure:\ngot  %v\nwant %v", got, want)
	}

	// Compacting the output must give back the input byte for byte.
	var compact bytes.Buffer
	if err := json.Compact(&compact, buf.Bytes()); err != nil {
		t.Fatal(err)
	}
	if compact.String() != nestedFixture {
		t.Errorf("compact output differs:\ngot  %s\nwant %s", compact.String(), nestedFixture)
	}
}

func TestOutput_TwoSpaceIndent(t *testing.T) {
	var buf bytes.Buffer

	err := Output(json.RawMessage(`{"a":{"b":1}}`), OutputOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	want := "{\n  \"a\": {\n    \"b\": 1\n  }\n}\n"
	if buf.String() != want {
		t.Errorf("Output = %q, want %q", buf.String(), want)
	}
}

func TestOutput_JSONValue(t *testing.T) {
	var buf bytes.Buffer

	data := map[string]any{
		"name":  "test",
		"value": 123,
	}

	err := Output(data, OutputOptions{
		Format: FormatJSON,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}

	if result["name"] != "test" {
		t.Errorf("name = %v, want %q", result["name"], "test")
	}
}

func TestOutput_YAML(t *testing.T) {
	var buf bytes.Buffer

	err := Output(json.RawMessage(`{"name":"test","nested":{"value":123}}`), OutputOptions{
		Format: FormatYAML,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "name: test") {
		t.Errorf("Output should contain 'name: test', got: %s", output)
	}
	if !strings.Contains(output, "value: 123") {
		t.Errorf("Output should contain 'value: 123', got: %s", output)
	}
}

func TestOutput_JQ(t *testing.T) {
	var buf bytes.Buffer

	err := Output(json.RawMessage(nestedFixture), OutputOptions{
		Writer: &buf,
		JQ:     ".data.task_id",
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}
	if buf.String() != "\"abc123\"\n" {
		t.Errorf("Output = %q, want %q", buf.String(), "\"abc123\"\n")
	}
}

func TestOutput_JQMultipleResults(t *testing.T) {
	var buf bytes.Buffer

	err := Output(json.RawMessage(`{"items":[1,2,3]}`), OutputOptions{
		Writer: &buf,
		JQ:     ".items[]",
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}
	if buf.String() != "1\n2\n3\n" {
		t.Errorf("Output = %q", buf.String())
	}
}

func TestOutput_JQInvalid(t *testing.T) {
	var buf bytes.Buffer

	err := Output(json.RawMessage(`{}`), OutputOptions{
		Writer: &buf,
		JQ:     ".[",
	})
	if err == nil {
		t.Error("Output should fail for invalid jq expression")
	}
}

func TestApplyJQ_RuntimeError(t *testing.T) {
	_, err := ApplyJQ(".a.b", json.RawMessage(`{"a":"string"}`))
	if err == nil {
		t.Error("indexing a string should fail")
	}
}

func TestApplyJQ_Struct(t *testing.T) {
	got, err := ApplyJQ(".name", struct {
		Name string `json:"name"`
	}{Name: "kling"})
	if err != nil {
		t.Fatalf("ApplyJQ: %v", err)
	}
	if len(got) != 1 || got[0] != "kling" {
		t.Errorf("ApplyJQ = %v", got)
	}
}

func TestOutput_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer

	err := Output("data", OutputOptions{
		Format: "invalid",
		Writer: &buf,
	})
	if err == nil {
		t.Error("Output should fail for unsupported format")
	}
}

func TestOutput_ToFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "output.json")

	err := Output(json.RawMessage(`{"key":"value"}`), OutputOptions{
		Format: FormatJSON,
		File:   filePath,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(content, &result); err != nil {
		t.Fatalf("Invalid JSON in file: %v", err)
	}

	if result["key"] != "value" {
		t.Errorf("key = %q, want %q", result["key"], "value")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"table", "", true},
	}

	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
