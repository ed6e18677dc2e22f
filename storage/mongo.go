package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on top of a MongoDB database, one collection per
// logical table.
type Mongo struct {
	db     *mongo.Database
	prefix string
}

func NewMongo(db *mongo.Database, prefix string) *Mongo {
	return &Mongo{db: db, prefix: prefix}
}

func (m *Mongo) collection(table string) *mongo.Collection {
	return m.db.Collection(m.prefix + table)
}

func (m *Mongo) GetItem(ctx context.Context, table string, key Key) (Item, error) {
	var doc bson.M
	err := m.collection(table).FindOne(ctx, bson.M{key.Name: key.Value}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %s=%s: %w", table, key.Name, key.Value, err)
	}
	return fromDoc(doc), nil
}

func (m *Mongo) PutItem(ctx context.Context, table string, item Item) error {
	pk := primaryKeyField(table)
	id, _ := item[pk].(string)
	if id == "" {
		return fmt.Errorf("put %s: item missing primary key %s", table, pk)
	}

	doc := bson.M{"_id": id}
	for k, v := range item {
		doc[k] = v
	}

	_, err := m.collection(table).ReplaceOne(ctx, bson.M{"_id": id}, doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put %s %s: %w", table, id, err)
	}
	return nil
}

func (m *Mongo) UpdateItem(ctx context.Context, table string, key Key, updates Item) error {
	set := bson.M{}
	for k, v := range updates {
		set[k] = v
	}
	_, err := m.collection(table).UpdateOne(ctx, bson.M{key.Name: key.Value}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update %s %s=%s: %w", table, key.Name, key.Value, err)
	}
	return nil
}

func (m *Mongo) QueryByIndex(ctx context.Context, table, index, keyName, keyValue string) ([]Item, error) {
	findOptions := options.Find().SetHint(index)
	cursor, err := m.collection(table).Find(ctx, bson.M{keyName: keyValue}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("query %s by %s (%s=%s): %w", table, index, keyName, keyValue, err)
	}
	defer cursor.Close(ctx)

	return m.drain(ctx, table, cursor)
}

func (m *Mongo) ScanAll(ctx context.Context, table string) ([]Item, error) {
	cursor, err := m.collection(table).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	defer cursor.Close(ctx)

	return m.drain(ctx, table, cursor)
}

func (m *Mongo) drain(ctx context.Context, table string, cursor *mongo.Cursor) ([]Item, error) {
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding %s records: %w", table, err)
	}
	items := make([]Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, fromDoc(doc))
	}
	return items, nil
}

// EnsureIndexes creates the secondary indexes QueryByIndex relies on.
// Creation is idempotent; existing indexes with the same spec are kept.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	specs := []struct {
		table string
		index string
		field string
	}{
		{TableAppointment, IndexAgentDate, "agentId"},
		{TableAppointment, IndexClient, "clientId"},
		{TableClientAgent, IndexAgent, "agentId"},
		{TableClientAgent, IndexClient, "clientId"},
		{TableTransaction, IndexAgent, "agentId"},
		{TableTransaction, IndexClient, "clientId"},
		{TableProperty, IndexAgent, "agentId"},
	}
	for _, spec := range specs {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: spec.field, Value: 1}},
			Options: options.Index().SetName(spec.index),
		}
		if _, err := m.collection(spec.table).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("creating index %s on %s: %w", spec.index, spec.table, err)
		}
	}
	return nil
}

func fromDoc(doc bson.M) Item {
	item := Item{}
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		item[k] = v
	}
	return item
}
