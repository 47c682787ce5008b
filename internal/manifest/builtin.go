package manifest

// Builtin returns the default suite: the well-known signature vector files
// with the algorithm, format and skip policy each one is meant to run with.
// Files for curves that platforms commonly lack (secp256k1, the brainpool
// family) allow skipping; files every implementation must support do not.
func Builtin() *Manifest {
	verify := func(file, algorithm, format string, allowSkips bool) Entry {
		return Entry{File: file, Algorithm: algorithm, Format: format, AllowSkippingKeys: allowSkips}
	}
	return &Manifest{Entries: []Entry{
		// ECDSA, ASN.1 signatures.
		verify("ecdsa_test.json", "ECDSA", "ASN1", true),
		verify("ecdsa_secp224r1_sha224_test.json", "ECDSA", "ASN1", false),
		verify("ecdsa_secp224r1_sha256_test.json", "ECDSA", "ASN1", false),
		verify("ecdsa_secp224r1_sha512_test.json", "ECDSA", "ASN1", false),
		verify("ecdsa_secp256r1_sha256_test.json", "ECDSA", "ASN1", false),
		verify("ecdsa_secp256r1_sha512_test.json", "ECDSA", "ASN1", false),
		verify("ecdsa_secp384r1_sha384_test.json", "ECDSA", "ASN1", false),
		verify("ecdsa_secp384r1_sha512_test.json", "ECDSA", "ASN1", false),
		verify("ecdsa_secp521r1_sha512_test.json", "ECDSA", "ASN1", false),
		verify("ecdsa_secp256k1_sha256_test.json", "ECDSA", "ASN1", true),
		verify("ecdsa_secp256k1_sha512_test.json", "ECDSA", "ASN1", true),
		verify("ecdsa_brainpoolP224r1_sha224_test.json", "ECDSA", "ASN1", true),
		verify("ecdsa_brainpoolP256r1_sha256_test.json", "ECDSA", "ASN1", true),
		verify("ecdsa_brainpoolP320r1_sha384_test.json", "ECDSA", "ASN1", true),
		verify("ecdsa_brainpoolP384r1_sha384_test.json", "ECDSA", "ASN1", true),
		verify("ecdsa_brainpoolP512r1_sha512_test.json", "ECDSA", "ASN1", true),

		// ECDSA, P1363 signatures.
		verify("ecdsa_secp224r1_sha224_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_secp224r1_sha256_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_secp224r1_sha512_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_secp256r1_sha256_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_secp256r1_sha512_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_secp384r1_sha384_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_secp384r1_sha512_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_secp521r1_sha512_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_secp256k1_sha256_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_secp256k1_sha512_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_brainpoolP224r1_sha224_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_brainpoolP256r1_sha256_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_brainpoolP320r1_sha384_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_brainpoolP384r1_sha384_p1363_test.json", "ECDSA", "P1363", true),
		verify("ecdsa_brainpoolP512r1_sha512_p1363_test.json", "ECDSA", "P1363", true),

		// RSA PKCS#1 v1.5 verification.
		verify("rsa_signature_test.json", "RSA", "RAW", false),
		verify("rsa_signature_2048_sha224_test.json", "RSA", "RAW", false),
		verify("rsa_signature_2048_sha256_test.json", "RSA", "RAW", false),
		verify("rsa_signature_2048_sha512_test.json", "RSA", "RAW", false),
		verify("rsa_signature_3072_sha256_test.json", "RSA", "RAW", false),
		verify("rsa_signature_3072_sha384_test.json", "RSA", "RAW", false),
		verify("rsa_signature_3072_sha512_test.json", "RSA", "RAW", false),
		verify("rsa_signature_4096_sha384_test.json", "RSA", "RAW", false),
		verify("rsa_signature_4096_sha512_test.json", "RSA", "RAW", false),

		// RSA PKCS#1 v1.5 generation (deterministic, byte-exact).
		{File: "rsa_sig_gen_misc_test.json", Algorithm: "RSA", Format: "RAW", Operation: "sign"},

		// DSA.
		verify("dsa_test.json", "DSA", "ASN1", false),

		// EdDSA.
		verify("eddsa_test.json", "EDDSA", "RAW", false),
		verify("ed448_test.json", "EDDSA", "RAW", true),
	}}
}
