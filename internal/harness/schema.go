package harness

// schemaKey identifies a (algorithm, format, operation) combination with a
// well-known fixture schema.
type schemaKey struct {
	algorithm string
	format    Format
	op        Operation
}

// expectedSchemas records the schema name each well-known test setup should
// declare. The check is a sanity test for the setup, not for the vectors:
// a mismatch usually means the wrong file was paired with the wrong
// algorithm or format.
var expectedSchemas = map[schemaKey]string{
	{"ECDSA", FormatASN1, OpVerify}:  "ecdsa_verify_schema.json",
	{"ECDSA", FormatP1363, OpVerify}: "ecdsa_p1363_verify_schema.json",
	{"DSA", FormatASN1, OpVerify}:    "dsa_verify_schema.json",
	{"DSA", FormatP1363, OpVerify}:   "dsa_p1363_verify_schema.json",
	{"RSA", FormatRaw, OpVerify}:     "rsassa_pkcs1_verify_schema.json",
	{"RSA", FormatRaw, OpSign}:       "rsassa_pkcs1_generate_schema.json",
}

// ExpectedSchema returns the schema a document for this setup should
// declare, or "" if no schema is defined. An undefined schema skips the
// check; execution proceeds either way.
func ExpectedSchema(algorithm string, format Format, op Operation) string {
	return expectedSchemas[schemaKey{algorithm, format, op}]
}
