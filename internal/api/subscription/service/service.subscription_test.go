// Package subscriptionsvc - Test pipeline đăng ký kênh và hợp đồng CRUD của service.
package subscriptionsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	models "github.com/yuvraj3121/yt-backend/internal/api/subscription/models"
	"github.com/yuvraj3121/yt-backend/internal/global"
)

// Service CRUD phải khớp interface chuẩn (DeleteOne trả về một error duy nhất, ...)
var _ basesvc.BaseServiceMongo[models.Subscription] = (*basesvc.BaseServiceMongoImpl[models.Subscription])(nil)

func init() {
	global.MongoDB_ColNames.Users = "users"
}

func TestBuildSubscribersPipeline_Shape(t *testing.T) {
	channelID := primitive.NewObjectID()
	pipeline := BuildSubscribersPipeline(channelID)

	want := []string{"$match", "$lookup", "$addFields", "$sort"}
	if len(pipeline) != len(want) {
		t.Fatalf("Pipeline phải có %d stage, nhận được %d", len(want), len(pipeline))
	}
	for i, stage := range pipeline {
		if stage[0].Key != want[i] {
			t.Errorf("Stage %d phải là %s, nhận được %s", i, want[i], stage[0].Key)
		}
	}

	match := pipeline[0][0].Value.(bson.M)
	if match["channel"] != channelID {
		t.Errorf("Stage $match phải lọc theo channel, nhận được %v", match)
	}

	lookup := pipeline[1][0].Value.(bson.M)
	if lookup["localField"] != "subscriber" {
		t.Errorf("Lookup phải join theo subscriber, nhận được %v", lookup["localField"])
	}
}

func TestBuildSubscribedChannelsPipeline_Shape(t *testing.T) {
	subscriberID := primitive.NewObjectID()
	pipeline := BuildSubscribedChannelsPipeline(subscriberID)

	want := []string{"$match", "$lookup", "$addFields", "$sort"}
	if len(pipeline) != len(want) {
		t.Fatalf("Pipeline phải có %d stage, nhận được %d", len(want), len(pipeline))
	}
	for i, stage := range pipeline {
		if stage[0].Key != want[i] {
			t.Errorf("Stage %d phải là %s, nhận được %s", i, want[i], stage[0].Key)
		}
	}

	match := pipeline[0][0].Value.(bson.M)
	if match["subscriber"] != subscriberID {
		t.Errorf("Stage $match phải lọc theo subscriber, nhận được %v", match)
	}

	lookup := pipeline[1][0].Value.(bson.M)
	if lookup["localField"] != "channel" {
		t.Errorf("Lookup phải join theo channel, nhận được %v", lookup["localField"])
	}
}
