package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type studentForm struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Surname     string `json:"surname" binding:"required,min=1,max=100"`
	ContactInfo string `json:"contact_info" binding:"omitempty,max=255"`
}

func init() {
	gin.SetMode(gin.TestMode)
	Setup()
}

func bindJSON(t *testing.T, body string, dst interface{}) map[string]string {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return Bind(c, dst)
}

func TestBindValid(t *testing.T) {
	var form studentForm
	fields := bindJSON(t, `{"name":"Ann","surname":"Lee"}`, &form)
	if fields != nil {
		t.Fatalf("expected no errors, got %v", fields)
	}
	if form.Name != "Ann" || form.Surname != "Lee" {
		t.Errorf("unexpected bind result: %+v", form)
	}
}

func TestBindMissingRequired(t *testing.T) {
	var form studentForm
	fields := bindJSON(t, `{"name":"","surname":"Lee"}`, &form)
	if fields == nil {
		t.Fatal("expected validation errors")
	}
	// Error keys use JSON tag names, not Go field names.
	if _, ok := fields["name"]; !ok {
		t.Errorf("expected error keyed by json tag 'name', got %v", fields)
	}
	if _, ok := fields["Name"]; ok {
		t.Errorf("error keyed by Go field name: %v", fields)
	}
}

func TestBindTranslatedMessage(t *testing.T) {
	var form studentForm
	fields := bindJSON(t, `{}`, &form)
	if fields == nil {
		t.Fatal("expected validation errors")
	}
	msg := fields["name"]
	if !strings.Contains(msg, "required") {
		t.Errorf("expected translated 'required' message, got %q", msg)
	}
}

func TestBindMalformedJSON(t *testing.T) {
	var form studentForm
	fields := bindJSON(t, `{"name": `, &form)
	if fields == nil {
		t.Fatal("expected errors for malformed JSON")
	}
	if _, ok := fields["detail"]; !ok {
		t.Errorf("expected 'detail' key for non-validation error, got %v", fields)
	}
}

func TestBindMaxLength(t *testing.T) {
	var form studentForm
	long := strings.Repeat("x", 101)
	fields := bindJSON(t, `{"name":"`+long+`","surname":"Lee"}`, &form)
	if fields == nil {
		t.Fatal("expected validation errors for over-long name")
	}
	if _, ok := fields["name"]; !ok {
		t.Errorf("expected error for name, got %v", fields)
	}
}
