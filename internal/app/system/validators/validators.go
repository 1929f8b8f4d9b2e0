// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/orsonvision/internal/app/store/contacts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isUnsupported(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure(contacts.Collection, contactSubmissionsSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	names, listErr := db.ListCollectionNames(ctx, bson.M{"name": name})
	if listErr == nil && len(names) > 0 {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func commandErrorMatches(err error, codes []int32, phrases ...string) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		for _, c := range codes {
			if ce.Code == c {
				return true
			}
		}
	}
	s := strings.ToLower(err.Error())
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func isNamespaceExistsErr(err error) bool {
	return commandErrorMatches(err, []int32{48}, "already exists", "namespace exists")
}

// isUnsupported covers "no such command" (59) and "not implemented" (115).
func isUnsupported(err error) bool {
	return commandErrorMatches(err, []int32{59, 115}, "no such command", "not implemented", "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func contactSubmissionsSchema() bson.M {
	nonBlank := bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"form", "name", "email", "language", "created_at"},
			"properties": bson.M{
				"form":       bson.M{"enum": bson.A{"project", "quick"}},
				"name":       nonBlank,
				"email":      bson.M{"bsonType": "string", "pattern": "\\S+@\\S+\\.\\S+"},
				"language":   bson.M{"enum": bson.A{"en", "fr"}},
				"created_at": bson.M{"bsonType": "date"},
				"attachments": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"stored_name", "original_name", "size"},
						"properties": bson.M{
							"stored_name": nonBlank,
							"size":        bson.M{"bsonType": bson.A{"long", "int"}, "minimum": 0},
						},
					},
				},
			},
		},
	}
}
