// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/babyfiction/storehub/internal/app/system/cache"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Cache is nil when Redis is not configured; the cache package treats
	// a nil client as a no-op.
	Cache *cache.Client
}
