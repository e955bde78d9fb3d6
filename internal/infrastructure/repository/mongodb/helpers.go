package mongodb

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// seqField orders documents by insertion, since list endpoints return
// records in the order they were first added.
const seqField = "seq"

var (
	seqMu   sync.Mutex
	lastSeq int64
)

// nextSeq is a strictly increasing nanosecond stamp.
func nextSeq() int64 {
	seqMu.Lock()
	defer seqMu.Unlock()
	n := time.Now().UnixNano()
	if n <= lastSeq {
		n = lastSeq + 1
	}
	lastSeq = n
	return n
}

var bySeq = options.Find().SetSort(bson.D{{Key: seqField, Value: 1}})

// replaceByID writes v as the full document for id, keeping the original
// insertion seq. Optional keys absent from v are unset so the stored document
// ends up identical to v.
func replaceByID(ctx context.Context, coll *mongo.Collection, id string, v interface{}, optional []string) error {
	raw, err := bson.Marshal(v)
	if err != nil {
		return err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return err
	}
	delete(fields, "_id")

	update := bson.M{
		"$set":         fields,
		"$setOnInsert": bson.M{seqField: nextSeq()},
	}
	unset := bson.M{}
	for _, key := range optional {
		if _, ok := fields[key]; !ok {
			unset[key] = ""
		}
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	_, err = coll.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	return err
}

// insertWithSeq inserts v with a fresh seq.
func insertWithSeq(ctx context.Context, coll *mongo.Collection, v interface{}) error {
	raw, err := bson.Marshal(v)
	if err != nil {
		return err
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return err
	}
	doc = append(doc, bson.E{Key: seqField, Value: nextSeq()})
	_, err = coll.InsertOne(ctx, doc)
	return err
}
