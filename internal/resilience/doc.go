// Package resilience holds fault tolerance helpers for the magazine store.
//
// circuitbreaker.Connector wraps a db.Connector so that repeated failures to
// acquire a connection open the circuit and later calls fail fast:
//
//	conn := circuitbreaker.NewConnector(db.NewSQLConnector(sqlDB), circuitbreaker.DBConfig(30*time.Second))
//	repo := sqlite.NewAuthorRepo(conn)
package resilience
