// Package models - Test khai báo index của lượt đăng ký kênh.
package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSubscription_IndexModels(t *testing.T) {
	indexModels := Subscription{}.IndexModels()

	if len(indexModels) != 1 {
		t.Fatalf("Subscription phải khai báo đúng 1 index unique, nhận được %d", len(indexModels))
	}

	model := indexModels[0]
	opts := model.Options
	if opts == nil || opts.Unique == nil || !*opts.Unique {
		t.Error("Index (channel, subscriber) phải là unique để chặn duplicate lượt đăng ký")
	}
	if opts == nil || opts.Name == nil || *opts.Name != "channel_subscriber_unique" {
		t.Error("Index phải có tên channel_subscriber_unique")
	}

	keys, ok := model.Keys.(bson.D)
	if !ok || len(keys) != 2 {
		t.Fatalf("Index phải gồm đúng 2 key, nhận được %v", model.Keys)
	}
	if keys[0].Key != "channel" || keys[1].Key != "subscriber" {
		t.Errorf("Index phải trên cặp (channel, subscriber), nhận được %v", keys)
	}
}
