package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yuvraj3121/yt-backend/config"
	"github.com/yuvraj3121/yt-backend/internal/global"
	"github.com/yuvraj3121/yt-backend/internal/logger"
)

// EnsureDatabaseAndCollections đảm bảo database và các collection trong
// global.MongoDB_ColNames tồn tại, tạo mới nếu chưa có.
func EnsureDatabaseAndCollections(client *mongo.Client, cfg *config.Configuration) error {
	dbName := cfg.MongoDB_DBName

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)

	collections := []string{}
	v := reflect.ValueOf(global.MongoDB_ColNames)
	for i := 0; i < v.NumField(); i++ {
		collections = append(collections, v.Field(i).String())
	}

	collList, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	existing := map[string]bool{}
	for _, name := range collList {
		existing[name] = true
	}

	for _, collectionName := range collections {
		if existing[collectionName] {
			continue
		}
		logger.GetAppLogger().Infof("Collection %s chưa tồn tại, tạo mới.", collectionName)
		if err := db.CreateCollection(ctx, collectionName); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", dbName)
	return nil
}

// CompoundIndexer cho phép model khai báo các index nhiều field mà tag `index`
// trên từng field không biểu diễn được (unique kết hợp, partial filter, ...).
type CompoundIndexer interface {
	IndexModels() []mongo.IndexModel
}

// CreateIndexes đọc tag `index` trên các field của model và tạo index tương ứng.
// Hỗ trợ: unique, single, text. Model implement CompoundIndexer được tạo thêm
// các index khai báo qua IndexModels. Index đã tồn tại (theo tên) được giữ nguyên.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("không thể lấy danh sách index: %w", err)
	}
	defer cursor.Close(ctx)

	existingIndexes := map[string]bool{}
	for cursor.Next(ctx) {
		var indexInfo bson.M
		if err := cursor.Decode(&indexInfo); err != nil {
			return fmt.Errorf("không thể giải mã thông tin index: %w", err)
		}
		if name, ok := indexInfo["name"].(string); ok {
			existingIndexes[name] = true
		}
	}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}

		bsonField := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, kind := range strings.Split(tag, ";") {
			var keys bson.D
			var indexName string
			opts := options.Index()

			switch kind {
			case "unique":
				indexName = bsonField + "_unique"
				keys = bson.D{{Key: bsonField, Value: 1}}
				opts = opts.SetName(indexName).SetUnique(true)
			case "single":
				indexName = bsonField + "_single"
				keys = bson.D{{Key: bsonField, Value: 1}}
				opts = opts.SetName(indexName)
			case "text":
				indexName = bsonField + "_text"
				keys = bson.D{{Key: bsonField, Value: "text"}}
				opts = opts.SetName(indexName)
			default:
				continue
			}

			if existingIndexes[indexName] {
				continue
			}

			if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys:    keys,
				Options: opts,
			}); err != nil {
				return fmt.Errorf("không thể tạo index %s: %w", indexName, err)
			}
			logger.GetAppLogger().Infof("Đã tạo index %s cho collection %s", indexName, collection.Name())
		}
	}

	if indexer, ok := model.(CompoundIndexer); ok {
		for _, indexModel := range indexer.IndexModels() {
			indexName := ""
			if indexModel.Options != nil && indexModel.Options.Name != nil {
				indexName = *indexModel.Options.Name
			}
			if indexName != "" && existingIndexes[indexName] {
				continue
			}
			if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
				return fmt.Errorf("không thể tạo index %s: %w", indexName, err)
			}
			logger.GetAppLogger().Infof("Đã tạo index %s cho collection %s", indexName, collection.Name())
		}
	}

	return nil
}
