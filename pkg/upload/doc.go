// Package upload validates file-upload metadata: transport error codes,
// extension/content-type consistency (spoofing detection), and optional
// relocation of the temporary file under a content-hash name.
//
// The package works on already-materialized upload records (File) rather
// than HTTP requests, so it can be driven from any transport. Content type
// is sniffed from the first bytes of the temporary file and compared with
// the family implied by the claimed extension; a mismatch is treated as a
// spoofing attempt. Files without an extension adopt the canonical
// extension of their sniffed type.
//
// Relocation goes through the Storage interface; LocalStorage keeps files
// on the local filesystem, S3Storage ships them to an S3 bucket. The stored
// name is the SHA-256 hex digest of the file content plus the original
// extension, which makes stored files content-addressed and deduplicated.
package upload
