// Package global - Test các custom validator no_xss và strong_password.
package global

import "testing"

type xssInput struct {
	Content string `validate:"no_xss"`
}

type passwordInput struct {
	Password string `validate:"strong_password"`
}

func TestValidator_NoXSS(t *testing.T) {
	InitValidator()

	valid := []string{
		"Video hướng dẫn nấu ăn",
		"Nội dung bình thường 123",
		"",
	}
	for _, content := range valid {
		if err := Validate.Struct(xssInput{Content: content}); err != nil {
			t.Errorf("no_xss từ chối nội dung hợp lệ %q: %v", content, err)
		}
	}

	invalid := []string{
		"<script>alert(1)</script>",
		"javascript:alert(1)",
		"<img src=x onerror=alert(1)>",
	}
	for _, content := range invalid {
		if err := Validate.Struct(xssInput{Content: content}); err == nil {
			t.Errorf("no_xss phải từ chối nội dung nguy hiểm %q", content)
		}
	}
}

func TestValidator_StrongPassword(t *testing.T) {
	InitValidator()

	valid := []string{
		"MatKhau@123",
		"Abcdef1!",
		"xYz12345",
	}
	for _, pw := range valid {
		if err := Validate.Struct(passwordInput{Password: pw}); err != nil {
			t.Errorf("strong_password từ chối mật khẩu hợp lệ %q: %v", pw, err)
		}
	}

	invalid := []string{
		"ngan",        // quá ngắn
		"toanchuthuong", // chỉ một loại ký tự
		"12345678",    // chỉ số
	}
	for _, pw := range invalid {
		if err := Validate.Struct(passwordInput{Password: pw}); err == nil {
			t.Errorf("strong_password phải từ chối mật khẩu yếu %q", pw)
		}
	}
}
