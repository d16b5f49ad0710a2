package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Model — документ каталога 3D-моделей. Схема свободная: помимо обязательных
// полей документ может нести произвольные атрибуты (Extra).
// Поле created_by выставляется строго один раз при создании из аутентифицированного
// субъекта и никогда не принимается от клиента.
type Model struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	CreatedBy string        `bson:"created_by"`
	Extra     bson.M        `bson:",inline"`
}

// AsDocument — плоское JSON-представление модели: служебный ObjectID
// отдается наружу как строка model_id.
func (m Model) AsDocument() map[string]any {
	doc := make(map[string]any, len(m.Extra)+3)
	for k, v := range m.Extra {
		doc[k] = v
	}
	doc["model_id"] = m.ID.Hex()
	doc["name"] = m.Name
	doc["created_by"] = m.CreatedBy
	return doc
}
