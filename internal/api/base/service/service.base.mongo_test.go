package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_PassThrough(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"title": "abc"}}

	update, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData không được trả lỗi: %v", err)
	}
	if update != original {
		t.Error("UpdateData truyền vào phải được trả lại nguyên vẹn")
	}

	update, err = ToUpdateData(*original)
	if err != nil {
		t.Fatalf("ToUpdateData không được trả lỗi: %v", err)
	}
	if update.Set["title"] != "abc" {
		t.Errorf("Set phải giữ nguyên giá trị, nhận được %v", update.Set)
	}
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	update, err := ToUpdateData(bson.M{"title": "video mới", "description": "mô tả"})
	if err != nil {
		t.Fatalf("ToUpdateData không được trả lỗi: %v", err)
	}

	if update.Set == nil {
		t.Fatal("Map thường phải được wrap trong $set")
	}
	if update.Set["title"] != "video mới" {
		t.Errorf("Set[title] phải là 'video mới', nhận được %v", update.Set["title"])
	}
	if update.Unset != nil || update.Push != nil || update.Inc != nil {
		t.Error("Các operator khác phải rỗng khi wrap map thường")
	}
}

func TestToUpdateData_OperatorMap(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$set":   bson.M{"title": "đổi tên"},
		"$unset": bson.M{"thumbnail": ""},
		"$inc":   bson.M{"views": 1},
	})
	if err != nil {
		t.Fatalf("ToUpdateData không được trả lỗi: %v", err)
	}

	if update.Set["title"] != "đổi tên" {
		t.Errorf("$set phải được tách đúng, nhận được %v", update.Set)
	}
	if _, ok := update.Unset["thumbnail"]; !ok {
		t.Errorf("$unset phải được tách đúng, nhận được %v", update.Unset)
	}
	if _, ok := update.Inc["views"]; !ok {
		t.Errorf("$inc phải được tách đúng, nhận được %v", update.Inc)
	}
}

func TestToUpdateData_StructFields(t *testing.T) {
	input := struct {
		Title       string `bson:"title,omitempty"`
		Description string `bson:"description,omitempty"`
	}{Title: "chỉ title"}

	update, err := ToUpdateData(input)
	if err != nil {
		t.Fatalf("ToUpdateData không được trả lỗi: %v", err)
	}
	if update.Set["title"] != "chỉ title" {
		t.Errorf("Trường struct phải vào $set, nhận được %v", update.Set)
	}
	if _, ok := update.Set["description"]; ok {
		t.Error("Trường omitempty rỗng không được xuất hiện trong $set")
	}
}
