// Package models - Test tập đóng TargetKind của lượt thích.
package models

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/yuvraj3121/yt-backend/internal/common"
)

func TestTargetKind_Field(t *testing.T) {
	cases := []struct {
		kind TargetKind
		want string
	}{
		{TargetVideo, "video"},
		{TargetComment, "comment"},
		{TargetTweet, "tweet"},
	}

	for _, tc := range cases {
		got, err := tc.kind.Field()
		if err != nil {
			t.Errorf("TargetKind(%q).Field() lỗi: %v", tc.kind, err)
			continue
		}
		if got != tc.want {
			t.Errorf("TargetKind(%q).Field() = %q, muốn %q", tc.kind, got, tc.want)
		}
	}
}

func TestLike_IndexModels(t *testing.T) {
	indexModels := Like{}.IndexModels()

	wantTargets := []string{"video", "comment", "tweet"}
	if len(indexModels) != len(wantTargets) {
		t.Fatalf("Like phải khai báo %d index unique, nhận được %d", len(wantTargets), len(indexModels))
	}

	for i, target := range wantTargets {
		model := indexModels[i]
		opts := model.Options
		if opts == nil || opts.Unique == nil || !*opts.Unique {
			t.Errorf("Index cho %s phải là unique", target)
		}
		if opts == nil || opts.Name == nil || *opts.Name != target+"_likedBy_unique" {
			t.Errorf("Index cho %s phải có tên %s_likedBy_unique", target, target)
		}
		if opts == nil || opts.PartialFilterExpression == nil {
			t.Errorf("Index cho %s phải có partial filter, nếu không các document thiếu field sẽ đụng nhau về uniqueness", target)
		}

		keys, ok := model.Keys.(bson.D)
		if !ok || len(keys) != 2 {
			t.Fatalf("Index cho %s phải gồm đúng 2 key, nhận được %v", target, model.Keys)
		}
		if keys[0].Key != target || keys[1].Key != "likedBy" {
			t.Errorf("Index cho %s phải trên cặp (%s, likedBy), nhận được %v", target, target, keys)
		}
	}
}

func TestTargetKind_Field_OutsideClosedSet(t *testing.T) {
	for _, kind := range []TargetKind{"", "playlist", "user", "Video"} {
		_, err := kind.Field()
		if err == nil {
			t.Errorf("TargetKind(%q).Field() phải trả về lỗi, đây không phải loại hợp lệ", kind)
			continue
		}
		if !errors.Is(err, common.ErrInvalidOperation) {
			t.Errorf("TargetKind(%q): lỗi phải là ErrInvalidOperation, nhận được %v", kind, err)
		}
	}
}
