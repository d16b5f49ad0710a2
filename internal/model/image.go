package model

import "go.mongodb.org/mongo-driver/v2/bson"

// ImageRef — запись-ссылка, связывающая модель каталога с блобом в хранилище.
// На один model_id предполагается не более одной актуальной ссылки;
// повторная загрузка добавляет новую запись, не убирая старую.
type ImageRef struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Name    string        `bson:"name" json:"name"`
	BlobID  string        `bson:"image_id" json:"image_id"`
	ModelID string        `bson:"model_id" json:"model_id"`
}
