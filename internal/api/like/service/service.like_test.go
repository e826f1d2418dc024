// Package likesvc - Test pipeline video đã thích và hợp đồng CRUD của service.
package likesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	models "github.com/yuvraj3121/yt-backend/internal/api/like/models"
	"github.com/yuvraj3121/yt-backend/internal/global"
)

// Service CRUD phải khớp interface chuẩn (DeleteOne trả về một error duy nhất, ...)
var _ basesvc.BaseServiceMongo[models.Like] = (*basesvc.BaseServiceMongoImpl[models.Like])(nil)

func init() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
}

func TestBuildLikedVideosPipeline_Shape(t *testing.T) {
	pipeline := BuildLikedVideosPipeline(primitive.NewObjectID())

	want := []string{"$match", "$lookup", "$unwind", "$replaceRoot", "$sort"}
	if len(pipeline) != len(want) {
		t.Fatalf("Pipeline phải có %d stage, nhận được %d", len(want), len(pipeline))
	}
	for i, stage := range pipeline {
		if stage[0].Key != want[i] {
			t.Errorf("Stage %d phải là %s, nhận được %s", i, want[i], stage[0].Key)
		}
	}
}

func TestBuildLikedVideosPipeline_MatchOnlyVideoLikes(t *testing.T) {
	userID := primitive.NewObjectID()
	pipeline := BuildLikedVideosPipeline(userID)

	match := pipeline[0][0].Value.(bson.M)
	if match["likedBy"] != userID {
		t.Errorf("Stage $match phải lọc theo likedBy, nhận được %v", match)
	}

	videoCond, ok := match["video"].(bson.M)
	if !ok {
		t.Fatalf("Stage $match phải có điều kiện trên field video, nhận được %v", match)
	}
	if videoCond["$exists"] != true {
		t.Errorf("Lượt thích comment/tweet không có field video nên phải bị loại, nhận được %v", videoCond)
	}
}

func TestBuildLikedVideosPipeline_ReplaceRootWithVideo(t *testing.T) {
	pipeline := BuildLikedVideosPipeline(primitive.NewObjectID())

	replaceRoot := pipeline[3][0].Value.(bson.M)
	if replaceRoot["newRoot"] != "$video" {
		t.Errorf("Kết quả phải là document video trần, nhận được %v", replaceRoot)
	}
}
