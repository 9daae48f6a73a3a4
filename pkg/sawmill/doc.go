// Package sawmill resolves stored log view configurations into concrete
// runtime descriptors: an index pattern, timestamp and tiebreaker fields,
// message fields, the queryable field list, and display columns.
//
// Quick start:
//
//	r, err := sawmill.New(
//	    sawmill.WithEndpoint("https://kibana.internal:5601"),
//	    sawmill.WithAPIKey(os.Getenv("API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resolved, err := r.ResolveIndexName(ctx, "apps", "app-logs-*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resolved.Indices, resolved.TimestampField)
//
// A log view references its indices one of three ways: a raw index pattern,
// a persisted data view ID, or the deployment's configured log sources.
// Resolution delegates to the data-views and settings APIs and reshapes the
// result into the common Resolved descriptor.
package sawmill
