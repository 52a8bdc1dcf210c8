package telemetry

import (
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/gorm"
)

// RegisterDBTracing registers the otelgorm plugin so every query becomes a
// child span of the request that issued it
func RegisterDBTracing(db *gorm.DB, dbName string) error {
	return db.Use(otelgorm.NewPlugin(
		otelgorm.WithDBName(dbName),
		otelgorm.WithoutQueryVariables(),
	))
}
