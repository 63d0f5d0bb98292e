package modelv

// Package modelv provides:
//
// - Runtime attribute validation and type coercion for model-like records
//   (declared Schema + untyped item bag -> fully coerced mapping)
// - A recursive type-expression interpreter (optional, union, list, set, map,
//   custom Validatable types)
// - A lenient-but-safe coercion policy for primitive values (bool, string,
//   int, float, time)
// - An ordered validator chain (wildcard and per-key) applied after type
//   validation
// - A stable error model via ValidationError/SchemaError (code, key, message)
//
// Design policy:
// - Keep only public APIs in the root package; schemas are declared through
//   the builder under dsl/.
// - Place codecs under codec/, reusable chain validators under rules/, and
//   the CLI under cmd/modelv.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := dsl.NewSchema().
//	    Field("name", dsl.String()).
//	    Field("age", dsl.Optional(dsl.Int())).
//	    MustBuild()
//
//	m := modelv.New(schema, map[string]any{"name": "ada"})
//	out, err := m.Validate(ctx)
