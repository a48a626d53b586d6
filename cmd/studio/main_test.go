package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderJSON = `{
	"orderId": "ORD-1",
	"customerInfo": {"fullName": "Ama", "phone": "0550000000"},
	"items": [{"product": "ref", "productSnapshot": {"name": "Kente Wrap"}, "quantity": 2, "priceAtPurchase": 10}],
	"pricing": {"subtotal": 20, "total": 20},
	"deliveryStatus": "confirmed",
	"payment": {"method": "card", "status": "paid"},
	"createdAt": "2025-01-05T10:00:00Z"
}`

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	args = append(args, "--dir", t.TempDir())
	code := execRootCmd(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCmd_Valid(t *testing.T) {
	path := writeFile(t, "order.json", orderJSON)
	r := run(t, "", "validate", "order", path)
	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "valid order")
}

func TestValidateCmd_Violations(t *testing.T) {
	body := strings.Replace(orderJSON, `"items": [{"product": "ref", "productSnapshot": {"name": "Kente Wrap"}, "quantity": 2, "priceAtPurchase": 10}]`, `"items": []`, 1)
	r := run(t, body, "validate", "order", "-")
	assert.Equal(t, exitViolations, r.code)
	assert.Contains(t, r.stdout, "-: too_short at items (expected min length 1)")
}

func TestValidateCmd_JSON(t *testing.T) {
	r := run(t, `{"orderId": "ORD-1"}`, "validate", "order", "-", "--json")
	assert.Equal(t, exitViolations, r.code)

	var out struct {
		Type   string `json:"type"`
		Valid  bool   `json:"valid"`
		Issues []struct {
			FieldPath string `json:"fieldPath"`
			Code      string `json:"code"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &out))
	assert.Equal(t, "order", out.Type)
	assert.False(t, out.Valid)
	require.NotEmpty(t, out.Issues)
	assert.Equal(t, "required", out.Issues[0].Code)
}

func TestValidateCmd_DuplicateKeys(t *testing.T) {
	dup := strings.Replace(orderJSON, `"orderId": "ORD-1",`, `"orderId": "ORD-1", "orderId": "ORD-1",`, 1)
	r := run(t, dup, "validate", "order", "-")
	assert.Equal(t, exitViolations, r.code)
	assert.Contains(t, r.stdout, "duplicate_key at orderId")

	r = run(t, dup, "validate", "order", "-", "--allow-duplicate-keys")
	assert.Equal(t, exitOK, r.code)
}

func TestValidateCmd_StrictSlugs(t *testing.T) {
	product := `{"name": "Nike Air", "slug": {"current": "Nike_Air"}, "mainImage": {"asset": {"_ref": "image-1"}},
		"category": "sneakers", "price": 300, "stockQuantity": 1, "status": "available"}`
	r := run(t, product, "validate", "product", "-")
	assert.Equal(t, exitOK, r.code, r.stdout)

	r = run(t, product, "validate", "product", "-", "--strict-slugs")
	assert.Equal(t, exitViolations, r.code)
	assert.Contains(t, r.stdout, "invalid_format at slug (expected lowercase slug)")
}

func TestValidateCmd_Update(t *testing.T) {
	prev := writeFile(t, "prev.json", strings.Replace(orderJSON, "ORD-1", "ORD-0", 1))
	r := run(t, orderJSON, "validate", "order", "-", "--prev", prev)
	assert.Equal(t, exitViolations, r.code)
	assert.Contains(t, r.stdout, "read_only at orderId")
}

func TestValidateCmd_Failures(t *testing.T) {
	r := run(t, "{}", "validate", "customer", "-")
	assert.Equal(t, exitFailure, r.code)
	assert.Contains(t, r.stderr, `unknown document type "customer"`)

	r = run(t, "{", "validate", "order", "-")
	assert.Equal(t, exitFailure, r.code)

	r = run(t, "", "validate", "order", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, exitFailure, r.code)

	r = run(t, "", "validate", "order")
	assert.Equal(t, exitFailure, r.code)
}

func TestPreviewCmd(t *testing.T) {
	r := run(t, orderJSON, "preview", "order", "-", "--items")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "✓ ORD-1 - Ama\n  GH₵20.00 • confirmed • 05/01/2025\n  Kente Wrap x2\n    GH₵20.00\n", r.stdout)
}

func TestPreviewCmd_Config(t *testing.T) {
	cfg := writeFile(t, "studio.yaml", "preview:\n  currency: \"$\"\n  timezone: America/New_York\n")
	r := run(t, strings.Replace(orderJSON, "2025-01-05T10:00:00Z", "2025-01-05T02:00:00Z", 1), "preview", "order", "-", "--config", cfg, "--json")
	require.Equal(t, exitOK, r.code, r.stderr)

	var sum struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &sum))
	assert.Equal(t, "$20.00 • confirmed • 04/01/2025", sum.Subtitle)
}

const export = `{"_id":"o1","_type":"order","orderId":"ORD-1","customerInfo":{"fullName":"Ama","phone":"1"},"items":[{"product":"p","quantity":1,"priceAtPurchase":5}],"pricing":{"subtotal":5,"total":5},"deliveryStatus":"confirmed","payment":{"method":"card","status":"paid"},"createdAt":"2025-01-01T00:00:00Z"}
{"_id":"image-1","_type":"sanity.imageAsset"}
{"_id":"o2","_type":"order","orderId":"ORD-2","customerInfo":{"fullName":"Kofi"},"items":[{"product":"p","quantity":1,"priceAtPurchase":5}],"pricing":{"subtotal":5,"total":5},"deliveryStatus":"confirmed","payment":{"method":"card","status":"pending"},"createdAt":"2025-02-01T00:00:00Z"}
`

func TestDatasetValidateCmd(t *testing.T) {
	r := run(t, export, "dataset", "validate", "-")
	assert.Equal(t, exitViolations, r.code)
	assert.Contains(t, r.stdout, "-:3: o2: required at customerInfo.phone")
	assert.Contains(t, r.stdout, "2 checked, 1 invalid, 1 skipped")
}

func TestDatasetListCmd(t *testing.T) {
	r := run(t, export, "dataset", "list", "-", "--type", "order", "--order", "createdAtDesc")
	require.Equal(t, exitOK, r.code, r.stderr)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "⏳ ORD-2 - Kofi", lines[0])
	assert.Equal(t, "✓ ORD-1 - Ama", lines[2])

	r = run(t, export, "dataset", "list", "-", "--order", "cheapest")
	assert.Equal(t, exitFailure, r.code)
	assert.Contains(t, r.stderr, `no ordering "cheapest"`)
}

func TestSchemaCmds(t *testing.T) {
	r := run(t, "", "schema", "list")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "order")
	assert.Contains(t, r.stdout, "product")

	r = run(t, "", "schema", "show", "product")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `hidden when category != "clothing"`)

	r = run(t, "", "schema", "show", "order")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "items[].quantity")

	r = run(t, "", "schema", "export", "order", "--format", "yaml")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "$schema: https://json-schema.org/draft/2020-12/schema")

	out := filepath.Join(t.TempDir(), "order.schema.json")
	r = run(t, "", "schema", "export", "order", "-o", out)
	require.Equal(t, exitOK, r.code, r.stderr)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, json.Valid(b))
	assert.Less(t, len(b), 16<<10)

	r = run(t, "", "schema", "show", "product", "--json")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Less(t, len(r.stdout), 16<<10)
	assert.Contains(t, r.stdout, "\n  \"properties\": {")

	r = run(t, "", "schema", "export", "order", "--format", "xml")
	assert.Equal(t, exitFailure, r.code)
}

func TestNewCmd(t *testing.T) {
	r := run(t, "", "new", "order", "--at", "2025-01-05T10:00:00Z")
	require.Equal(t, exitOK, r.code, r.stderr)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &rec))
	assert.Equal(t, "order", rec["_type"])
	assert.Regexp(t, `^ORD-20250105-[0-9A-F]{4}$`, rec["orderId"])
	assert.Equal(t, "payment_pending", rec["deliveryStatus"])

	r = run(t, "", "new", "order", "--at", "yesterday")
	assert.Equal(t, exitFailure, r.code)
}

func TestConfigCmds(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	code := execRootCmd([]string{"config", "init", dir}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())
	assert.Contains(t, out.String(), "created")

	out.Reset()
	code = execRootCmd([]string{"config", "show", "--dir", dir}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())
	assert.Contains(t, out.String(), "projectId: f9rxg371")
	assert.Contains(t, out.String(), filepath.Join(dir, "studio.yaml"))
}

func TestVersionCmd(t *testing.T) {
	r := run(t, "", "version")
	assert.Equal(t, exitOK, r.code)
	assert.Contains(t, r.stdout, "studio dev")
}
