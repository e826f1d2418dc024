// Package videosvc - Test dựng điều kiện lọc và pipeline danh sách video.
package videosvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	videodto "github.com/yuvraj3121/yt-backend/internal/api/video/dto"
)

// stageKey trả về tên stage đầu tiên của một phần tử pipeline.
func stageKey(stage bson.D) string {
	if len(stage) == 0 {
		return ""
	}
	return stage[0].Key
}

func TestBuildListMatch_Empty(t *testing.T) {
	match := buildListMatch(&videodto.VideoListQuery{})
	if len(match) != 0 {
		t.Errorf("Query rỗng phải cho match rỗng, nhận được %v", match)
	}
}

func TestBuildListMatch_QueryEscapesRegex(t *testing.T) {
	match := buildListMatch(&videodto.VideoListQuery{Query: "c++ (nâng cao)"})

	or, ok := match["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("Match theo query phải có $or với 2 điều kiện, nhận được %v", match)
	}

	title := or[0].(bson.M)["title"].(bson.M)
	regex := title["$regex"].(string)
	if regex == "c++ (nâng cao)" {
		t.Error("Ký tự đặc biệt trong query phải được escape trước khi đưa vào $regex")
	}
	if title["$options"] != "i" {
		t.Error("Tìm kiếm phải không phân biệt hoa thường ($options: i)")
	}
}

func TestBuildListMatch_OwnerFilter(t *testing.T) {
	ownerID := primitive.NewObjectID()
	match := buildListMatch(&videodto.VideoListQuery{UserID: ownerID.Hex()})

	got, ok := match["owner"].(primitive.ObjectID)
	if !ok || got != ownerID {
		t.Errorf("UserID hợp lệ phải thành điều kiện owner, nhận được %v", match)
	}
}

func TestBuildListMatch_InvalidUserIDIgnored(t *testing.T) {
	match := buildListMatch(&videodto.VideoListQuery{UserID: "không-phải-objectid"})
	if _, ok := match["owner"]; ok {
		t.Error("UserID không hợp lệ phải bị bỏ qua, không thành điều kiện owner")
	}
}

func TestBuildListPipeline_StageOrder(t *testing.T) {
	pipeline := BuildListPipeline(&videodto.VideoListQuery{}, 2, 5)

	want := []string{"$match", "$lookup", "$lookup", "$lookup", "$addFields", "$project", "$sort", "$skip", "$limit"}
	if len(pipeline) != len(want) {
		t.Fatalf("Pipeline phải có %d stage, nhận được %d", len(want), len(pipeline))
	}
	for i, stage := range pipeline {
		if stageKey(stage) != want[i] {
			t.Errorf("Stage %d phải là %s, nhận được %s", i, want[i], stageKey(stage))
		}
	}
}

func TestBuildListPipeline_Pagination(t *testing.T) {
	pipeline := BuildListPipeline(&videodto.VideoListQuery{}, 3, 10)

	skip := pipeline[len(pipeline)-2]
	limit := pipeline[len(pipeline)-1]

	if skip[0].Value.(int64) != 20 {
		t.Errorf("Trang 3 với limit 10 phải skip 20, nhận được %v", skip[0].Value)
	}
	if limit[0].Value.(int64) != 10 {
		t.Errorf("$limit phải là 10, nhận được %v", limit[0].Value)
	}
}

func TestBuildListPipeline_DefaultSort(t *testing.T) {
	pipeline := BuildListPipeline(&videodto.VideoListQuery{}, 1, 10)

	var sortStage bson.D
	for _, stage := range pipeline {
		if stageKey(stage) == "$sort" {
			sortStage = stage[0].Value.(bson.D)
			break
		}
	}
	if sortStage == nil {
		t.Fatal("Pipeline thiếu stage $sort")
	}
	if sortStage[0].Key != "createdAt" || sortStage[0].Value != 1 {
		t.Errorf("Mặc định phải sort createdAt tăng dần, nhận được %v", sortStage)
	}
}

func TestBuildListPipeline_CustomSort(t *testing.T) {
	pipeline := BuildListPipeline(&videodto.VideoListQuery{SortBy: "views", SortType: "desc"}, 1, 10)

	var sortStage bson.D
	for _, stage := range pipeline {
		if stageKey(stage) == "$sort" {
			sortStage = stage[0].Value.(bson.D)
			break
		}
	}
	if sortStage[0].Key != "views" || sortStage[0].Value != -1 {
		t.Errorf("Sort theo views giảm dần, nhận được %v", sortStage)
	}
}

func TestBuildChannelStatsPipeline_Shape(t *testing.T) {
	ownerID := primitive.NewObjectID()
	pipeline := BuildChannelStatsPipeline(ownerID)

	want := []string{"$match", "$lookup", "$group"}
	if len(pipeline) != len(want) {
		t.Fatalf("Pipeline thống kê phải có %d stage, nhận được %d", len(want), len(pipeline))
	}
	for i, stage := range pipeline {
		if stageKey(stage) != want[i] {
			t.Errorf("Stage %d phải là %s, nhận được %s", i, want[i], stageKey(stage))
		}
	}

	match := pipeline[0][0].Value.(bson.M)
	if match["owner"] != ownerID {
		t.Errorf("Stage $match phải lọc theo owner, nhận được %v", match)
	}

	group := pipeline[2][0].Value.(bson.M)
	for _, field := range []string{"totalVideos", "totalViews", "totalLikes"} {
		if _, ok := group[field]; !ok {
			t.Errorf("Stage $group thiếu field %s", field)
		}
	}
}
