// Package authsvc - Test pipeline trang kênh và lịch sử xem.
package authsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yuvraj3121/yt-backend/internal/global"
)

func init() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"
}

func TestBuildChannelProfilePipeline_Shape(t *testing.T) {
	currentUserID := primitive.NewObjectID()
	pipeline := BuildChannelProfilePipeline("ChanelA", currentUserID)

	want := []string{"$match", "$lookup", "$lookup", "$addFields", "$project"}
	if len(pipeline) != len(want) {
		t.Fatalf("Pipeline phải có %d stage, nhận được %d", len(want), len(pipeline))
	}
	for i, stage := range pipeline {
		if stage[0].Key != want[i] {
			t.Errorf("Stage %d phải là %s, nhận được %s", i, want[i], stage[0].Key)
		}
	}
}

func TestBuildChannelProfilePipeline_MatchLowercasesUsername(t *testing.T) {
	pipeline := BuildChannelProfilePipeline("ChanelA", primitive.NewObjectID())

	match := pipeline[0][0].Value.(bson.M)
	if match["username"] != "chanela" {
		t.Errorf("Username trong $match phải được lowercase, nhận được %v", match["username"])
	}
}

func TestBuildChannelProfilePipeline_LookupsSubscriptionsTwice(t *testing.T) {
	pipeline := BuildChannelProfilePipeline("a", primitive.NewObjectID())

	first := pipeline[1][0].Value.(bson.M)
	second := pipeline[2][0].Value.(bson.M)

	if first["from"] != "subscriptions" || second["from"] != "subscriptions" {
		t.Error("Cả hai $lookup phải trỏ vào collection subscriptions")
	}
	if first["foreignField"] != "channel" {
		t.Errorf("Lookup subscriber đếm theo channel, nhận được foreignField %v", first["foreignField"])
	}
	if second["foreignField"] != "subscriber" {
		t.Errorf("Lookup kênh đã đăng ký đếm theo subscriber, nhận được foreignField %v", second["foreignField"])
	}
}

func TestBuildChannelProfilePipeline_AddFields(t *testing.T) {
	pipeline := BuildChannelProfilePipeline("a", primitive.NewObjectID())

	addFields := pipeline[3][0].Value.(bson.M)
	for _, field := range []string{"subscribersCount", "subscribedToCount", "isSubscribed"} {
		if _, ok := addFields[field]; !ok {
			t.Errorf("Stage $addFields thiếu field %s", field)
		}
	}
}

func TestBuildChannelProfilePipeline_ProjectHidesPassword(t *testing.T) {
	pipeline := BuildChannelProfilePipeline("a", primitive.NewObjectID())

	project := pipeline[4][0].Value.(bson.M)
	if _, ok := project["password"]; ok {
		t.Error("Stage $project không được lộ field password")
	}
	if _, ok := project["refreshToken"]; ok {
		t.Error("Stage $project không được lộ field refreshToken")
	}
}

func TestBuildWatchHistoryPipeline_Shape(t *testing.T) {
	userID := primitive.NewObjectID()
	pipeline := BuildWatchHistoryPipeline(userID)

	if len(pipeline) != 2 {
		t.Fatalf("Pipeline lịch sử xem phải có 2 stage, nhận được %d", len(pipeline))
	}

	match := pipeline[0][0].Value.(bson.M)
	if match["_id"] != userID {
		t.Errorf("Stage $match phải lọc theo _id user, nhận được %v", match)
	}

	lookup := pipeline[1][0].Value.(bson.M)
	if lookup["from"] != "videos" {
		t.Errorf("Lookup phải trỏ vào collection videos, nhận được %v", lookup["from"])
	}
	if lookup["localField"] != "watchHistory" {
		t.Errorf("Lookup phải join theo watchHistory, nhận được %v", lookup["localField"])
	}

	// Lookup lồng nhau lấy thông tin chủ sở hữu mỗi video
	inner, ok := lookup["pipeline"].(bson.A)
	if !ok || len(inner) == 0 {
		t.Fatal("Lookup videos phải có pipeline lồng để lấy owner")
	}
	innerLookup := inner[0].(bson.M)["$lookup"].(bson.M)
	if innerLookup["from"] != "users" {
		t.Errorf("Lookup lồng phải trỏ vào collection users, nhận được %v", innerLookup["from"])
	}
}
