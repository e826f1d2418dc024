package registry

import "testing"

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("Register lần đầu phải trả về isNew = true")
	}

	got, exists := r.Get("a")
	if !exists {
		t.Fatal("Get không tìm thấy item vừa đăng ký")
	}
	if got != 1 {
		t.Errorf("Get = %d, muốn 1", got)
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry[string]()

	if _, err := r.Register("a", "x"); err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	isNew, err := r.Register("a", "y")
	if err != nil {
		t.Fatalf("Register trùng tên không được trả về lỗi: %v", err)
	}
	if isNew {
		t.Error("Register trùng tên phải trả về isNew = false")
	}

	// Register trùng tên ghi đè item cũ
	got, _ := r.Get("a")
	if got != "y" {
		t.Errorf("Register trùng tên phải ghi đè item cũ, Get = %q", got)
	}
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("Register với tên rỗng phải trả về lỗi")
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry[int]()
	if _, exists := r.Get("missing"); exists {
		t.Error("Get với tên chưa đăng ký phải trả về exists = false")
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	names := r.Names()
	if len(names) != 2 {
		t.Errorf("Names phải trả về 2 tên, nhận được %d", len(names))
	}
}
