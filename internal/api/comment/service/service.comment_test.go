// Package commentsvc - Test pipeline danh sách bình luận.
package commentsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yuvraj3121/yt-backend/internal/global"
)

func init() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Likes = "likes"
}

func TestBuildVideoCommentsPipeline_Shape(t *testing.T) {
	videoID := primitive.NewObjectID()
	pipeline := BuildVideoCommentsPipeline(videoID, 1, 10)

	want := []string{"$match", "$lookup", "$lookup", "$addFields", "$project", "$sort", "$skip", "$limit"}
	if len(pipeline) != len(want) {
		t.Fatalf("Pipeline phải có %d stage, nhận được %d", len(want), len(pipeline))
	}
	for i, stage := range pipeline {
		if stage[0].Key != want[i] {
			t.Errorf("Stage %d phải là %s, nhận được %s", i, want[i], stage[0].Key)
		}
	}

	match := pipeline[0][0].Value.(bson.M)
	if match["video"] != videoID {
		t.Errorf("Stage $match phải lọc theo video, nhận được %v", match)
	}
}

func TestBuildVideoCommentsPipeline_Pagination(t *testing.T) {
	pipeline := BuildVideoCommentsPipeline(primitive.NewObjectID(), 4, 5)

	skip := pipeline[len(pipeline)-2][0]
	limit := pipeline[len(pipeline)-1][0]

	if skip.Value.(int64) != 15 {
		t.Errorf("Trang 4 với limit 5 phải skip 15, nhận được %v", skip.Value)
	}
	if limit.Value.(int64) != 5 {
		t.Errorf("$limit phải là 5, nhận được %v", limit.Value)
	}
}

func TestBuildVideoCommentsPipeline_SortNewestFirst(t *testing.T) {
	pipeline := BuildVideoCommentsPipeline(primitive.NewObjectID(), 1, 10)

	var sortStage bson.D
	for _, stage := range pipeline {
		if stage[0].Key == "$sort" {
			sortStage = stage[0].Value.(bson.D)
			break
		}
	}
	if sortStage == nil {
		t.Fatal("Pipeline thiếu stage $sort")
	}
	if sortStage[0].Key != "createdAt" || sortStage[0].Value != -1 {
		t.Errorf("Bình luận phải sắp xếp mới nhất trước, nhận được %v", sortStage)
	}
}
