// Package storage provides an abstraction layer for object storage services
// and a spool backed by it.
//
// It wraps the MinIO Go client behind a small Client interface (bucket
// checks, stat, get and list), which keeps tests free of a live endpoint
// (see core/storage/mocks). This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Mirrored spools
//
// Spool implements uucp.Spool over a bucket. A spool path maps to the object
// key Prefix + path; directories are key prefixes, optionally with a zero
// byte "dir/" marker object so empty directories exist:
//
//	uucp/var/spool/uucp/remote/C./          (marker)
//	uucp/var/spool/uucp/remote/C./C.aaa
//	uucp/var/spool/uucp/remote/D./D.aaa
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	spool := storage.NewSpool(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
//	site, err := uucp.NewSite(ctx, "/var/spool/uucp", "remote", spool)
package storage
