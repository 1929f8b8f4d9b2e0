package indexes_test

import (
	"testing"

	"github.com/dalemusser/orsonvision/internal/app/store/contacts"
	"github.com/dalemusser/orsonvision/internal/app/system/indexes"
	"github.com/dalemusser/orsonvision/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("first EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesContactIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	cur, err := db.Collection(contacts.Collection).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := map[string]bool{}
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}

	for _, want := range []string{"idx_contact_created_desc", "idx_contact_email_created"} {
		if !names[want] {
			t.Errorf("missing index %q (have %v)", want, names)
		}
	}
}
